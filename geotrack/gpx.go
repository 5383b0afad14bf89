package geotrack

import (
	"fmt"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Waypoint describes a single GPX waypoint.
type Waypoint struct {
	Point
	Name      string
	Timestamp time.Time
}

// WaypointGPX renders the waypoint as a GPX 1.1 document.
func WaypointGPX(wpt Waypoint) ([]byte, error) {
	g := gpx.GPX{
		Version: "1.1",
		Creator: "exifview",
	}

	point := gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  wpt.Lat,
			Longitude: wpt.Lon,
		},
		Name:      wpt.Name,
		Timestamp: wpt.Timestamp,
	}

	g.Waypoints = append(g.Waypoints, point)

	xml, err := g.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, fmt.Errorf("serialize GPX: %w", err)
	}

	return xml, nil
}
