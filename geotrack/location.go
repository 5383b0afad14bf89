package geotrack

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/bgraf/exifview/data"
	"github.com/bgraf/exifview/option"
)

const (
	TagLatitude  = "GPSLatitude"
	TagLongitude = "GPSLongitude"
)

var ErrNoLocation = errors.New("no location")

// Resolve derives the capture location from the GPSLatitude and GPSLongitude
// descriptions. A missing tag or a description that is not a number within
// range yields no location.
func Resolve(snapshot *data.Snapshot) option.Option[Point] {
	lat, ok := parseDegrees(snapshot, TagLatitude)
	if !ok {
		return option.None[Point]()
	}

	lon, ok := parseDegrees(snapshot, TagLongitude)
	if !ok {
		return option.None[Point]()
	}

	p := Point{Lat: lat, Lon: lon}
	if !p.IsValid() {
		return option.None[Point]()
	}

	return option.Some(p)
}

func parseDegrees(snapshot *data.Snapshot, name string) (float64, bool) {
	tag, ok := snapshot.Get(name)
	if !ok || !tag.HasDescription() {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(tag.Description), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func validDegrees(v float64, limit float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}

	return v >= -limit && v <= limit
}
