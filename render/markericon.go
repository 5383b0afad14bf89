package render

import (
	"errors"
	"sync"
)

var ErrMarkerIconUnset = errors.New("marker icon not initialized, call render.InitMarkerIcon")

// MarkerIcon points Leaflet's default marker at icon files served by us.
type MarkerIcon struct {
	IconURL       string `json:"iconUrl"`
	IconRetinaURL string `json:"iconRetinaUrl"`
	ShadowURL     string `json:"shadowUrl"`
}

var (
	iconMu  sync.RWMutex
	iconSet bool
	icon    MarkerIcon
)

// InitMarkerIcon configures the marker icon for all maps. Call it once during
// startup, before the first map is rendered.
func InitMarkerIcon(i MarkerIcon) {
	iconMu.Lock()
	defer iconMu.Unlock()

	icon = i
	iconSet = true
}

func markerIcon() (MarkerIcon, error) {
	iconMu.RLock()
	defer iconMu.RUnlock()

	if !iconSet {
		return MarkerIcon{}, ErrMarkerIconUnset
	}

	return icon, nil
}
