package config

import (
	"github.com/goodsign/monday"
	"github.com/spf13/viper"
)

var (
	KeyServerAddress   = "server.address"
	KeyResourceDir     = "server.resource_dir"
	KeyMapZoom         = "map.zoom"
	KeyMapTileURL      = "map.tile_url"
	KeyMapAttribution  = "map.attribution"
	KeyMapIconURL      = "map.icon_url"
	KeyMapIconRetina   = "map.icon_retina_url"
	KeyMapShadowURL    = "map.shadow_url"
	KeyPreviewMaxWidth = "preview.max_width"
	KeyDisplayLocale   = "display.locale"
	KeyHomeLat         = "home.lat"
	KeyHomeLon         = "home.lon"
	KeyLogLevel        = "log.level"
	KeyLogConsole      = "log.console"
	KeyImageExtensions = "images.extensions"
)

const leafletImages = "https://unpkg.com/leaflet@1.9.4/dist/images/"

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyServerAddress, DefaultServerAddress())
	viper.SetDefault(KeyMapZoom, DefaultMapZoom())
	viper.SetDefault(KeyMapTileURL, DefaultMapTileURL())
	viper.SetDefault(KeyMapAttribution, DefaultMapAttribution())
	viper.SetDefault(KeyMapIconURL, leafletImages + "marker-icon.png")
	viper.SetDefault(KeyMapIconRetina, leafletImages + "marker-icon-2x.png")
	viper.SetDefault(KeyMapShadowURL, leafletImages + "marker-shadow.png")
	viper.SetDefault(KeyPreviewMaxWidth, DefaultPreviewMaxWidth())
	viper.SetDefault(KeyDisplayLocale, string(monday.LocaleEnUS))
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogConsole, true)
	viper.SetDefault(KeyImageExtensions, DefaultImageExtensions())
}

func ServerAddress() string {
	return viper.GetString(KeyServerAddress)
}

func HasResourceDir() bool {
	return len(viper.GetString(KeyResourceDir)) > 0
}

func ResourceDir() string {
	return viper.GetString(KeyResourceDir)
}

func MapZoom() int {
	return viper.GetInt(KeyMapZoom)
}

func MapTileURL() string {
	return viper.GetString(KeyMapTileURL)
}

func MapAttribution() string {
	return viper.GetString(KeyMapAttribution)
}

func MapIconURL() string {
	return viper.GetString(KeyMapIconURL)
}

func MapIconRetinaURL() string {
	return viper.GetString(KeyMapIconRetina)
}

func MapShadowURL() string {
	return viper.GetString(KeyMapShadowURL)
}

// PreviewMaxWidth is the width previews are scaled down to. Zero keeps the
// original bytes.
func PreviewMaxWidth() int {
	return viper.GetInt(KeyPreviewMaxWidth)
}

func DisplayLocale() monday.Locale {
	return monday.Locale(viper.GetString(KeyDisplayLocale))
}

type Coords struct {
	Lat, Lon float64
}

func HasHomeCoords() bool {
	return viper.IsSet(KeyHomeLat) && viper.IsSet(KeyHomeLon)
}

func HomeCoords() Coords {
	return Coords{
		Lat: viper.GetFloat64(KeyHomeLat),
		Lon: viper.GetFloat64(KeyHomeLon),
	}
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

func LogConsole() bool {
	return viper.GetBool(KeyLogConsole)
}

func ImageExtensions() []string {
	return viper.GetStringSlice(KeyImageExtensions)
}

func DefaultServerAddress() string {
	return ":8000"
}

func DefaultMapZoom() int {
	return 13
}

func DefaultMapTileURL() string {
	return "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
}

func DefaultMapAttribution() string {
	return `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
}

func DefaultPreviewMaxWidth() int {
	return 0
}

func DefaultImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".tif", ".tiff", ".png", ".heic", ".webp"}
}
