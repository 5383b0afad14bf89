package render

import (
	"html/template"
	"time"

	"github.com/bgraf/exifview/data"
	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/option"
	"github.com/bgraf/exifview/util/dates"
)

const MapElementID = "location-map"

// PageData is the viewer state a page is rendered from.
type PageData struct {
	FileName string
	Preview  string
	Snapshot *data.Snapshot
	MapView  *MapView
	Home     option.Option[geotrack.Point]
}

// Page is the payload of the viewer template.
type Page struct {
	FileName    string
	Preview     template.URL
	HasPreview  bool
	HasSnapshot bool
	Groups      []Group
	Full        []Item
	Captured    option.Option[time.Time]
	Location    option.Option[geotrack.Point]
	DistanceKm  option.Option[float64]
	Map         template.HTML
}

func BuildPage(d PageData, settings MapSettings) (Page, error) {
	page := Page{
		FileName:    d.FileName,
		Preview:     template.URL(d.Preview),
		HasPreview:  len(d.Preview) > 0,
		HasSnapshot: d.Snapshot != nil,
	}

	if d.Snapshot != nil {
		page.Groups = GroupSnapshot(d.Snapshot)
		page.Full = FullView(d.Snapshot)
		page.Captured = CaptureTime(d.Snapshot)
	}

	if d.MapView != nil {
		page.Location = option.Some(d.MapView.Marker)

		marker := d.MapView.Marker
		page.DistanceKm = option.Map(d.Home, func(home geotrack.Point) float64 {
			return geotrack.DistanceKm(home, marker)
		})

		var err error
		page.Map, err = MapHTML(MapElementID, d.MapView, settings)
		if err != nil {
			return page, err
		}
	}

	return page, nil
}

// CaptureTime reads DateTimeOriginal, falling back to DateTime.
func CaptureTime(snapshot *data.Snapshot) option.Option[time.Time] {
	for _, name := range []string{"DateTimeOriginal", "DateTime"} {
		tag, ok := snapshot.Get(name)
		if !ok || !tag.HasDescription() {
			continue
		}

		if t, err := dates.ParseEXIF(tag.Description); err == nil {
			return option.Some(t)
		}
	}

	return option.None[time.Time]()
}
