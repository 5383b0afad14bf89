package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/bgraf/exifview/geotrack"
)

// MapView is the viewport of the location map. The original center and zoom
// are fixed at creation; the current ones follow pans.
type MapView struct {
	Marker       geotrack.Point `json:"marker"`
	Center       geotrack.Point `json:"center"`
	Zoom         int            `json:"zoom"`
	Original     geotrack.Point `json:"original"`
	OriginalZoom int            `json:"originalZoom"`
}

func NewMapView(p geotrack.Point, zoom int) *MapView {
	return &MapView{
		Marker:       p,
		Center:       p,
		Zoom:         zoom,
		Original:     p,
		OriginalZoom: zoom,
	}
}

// Pan records a viewport change made by the user.
func (v *MapView) Pan(center geotrack.Point, zoom int) {
	v.Center = center
	v.Zoom = zoom
}

// Reset moves the viewport back to the original center and zoom.
func (v *MapView) Reset() {
	v.Center = v.Original
	v.Zoom = v.OriginalZoom
}

func PopupText(p geotrack.Point) string {
	return fmt.Sprintf("Latitude: %.6f<br>Longitude: %.6f", p.Lat, p.Lon)
}

// MapSettings holds the tile source of the map.
type MapSettings struct {
	TileURL     string
	Attribution string
}

type mapPayload struct {
	View        *MapView   `json:"view"`
	Popup       string     `json:"popup"`
	TileURL     string     `json:"tileURL"`
	Attribution string     `json:"attribution"`
	Icon        MarkerIcon `json:"icon"`
}

// MapHTML renders a container for a Leaflet map showing the view's marker.
// The embedded script hands the payload to `mountMap` once the page is loaded.
func MapHTML(elementID string, view *MapView, settings MapSettings) (template.HTML, error) {
	if view == nil {
		return "", nil
	}

	icon, err := markerIcon()
	if err != nil {
		return "", err
	}

	payloadBytes, err := json.Marshal(mapPayload{
		View:        view,
		Popup:       PopupText(view.Marker),
		TileURL:     settings.TileURL,
		Attribution: settings.Attribution,
		Icon:        icon,
	})
	if err != nil {
		return "", fmt.Errorf("serialize map payload: %w", err)
	}

	var buf bytes.Buffer

	_, _ = buf.WriteString(fmt.Sprintf(`<div class="exif-map" id="%s">`, template.HTMLEscapeString(elementID)))
	_, _ = buf.WriteString(fmt.Sprintf(`
		<script>
		(function () {
			const mapData = %s;
			let mapContainer = document.currentScript.parentElement;
			window.addEventListener('DOMContentLoaded', function() {
				mountMap(mapContainer, mapData);
			});
		})();
		</script>`,
		string(payloadBytes),
	))
	_, _ = buf.WriteString("</div>")

	return template.HTML(buf.String()), nil
}
