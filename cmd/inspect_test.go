package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bgraf/exifview/data"
	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/option"
	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func sampleSnapshot() *data.Snapshot {
	return data.NewSnapshot([]data.Tag{
		data.NewTag("Make", "Canon", "Canon"),
		data.NewTag("FNumber", "f/2.8", nil),
		data.NewTag("DateTimeOriginal", "2024:05:01 13:45:00", nil),
		data.NewTag("Software", "", "fw 1.0"),
		data.NewTag(geotrack.TagLatitude, "37.7749", nil),
		data.NewTag(geotrack.TagLongitude, "-122.4194", nil),
	})
}

func TestBuildReportGrouped(t *testing.T) {
	report := buildReport("a.jpg", sampleSnapshot(), false, option.None[geotrack.Point](), monday.LocaleEnUS)

	assert.Equal(t, "a.jpg", report.File)
	assert.Equal(t, "Wednesday, 1 May 2024 13:45", report.Captured)
	assert.Empty(t, report.Tags)
	require.Len(t, report.Groups, 5)

	assert.Equal(t, "Location", report.Groups[0].Label)
	assert.Len(t, report.Groups[0].Items, 2)
	assert.Equal(t, "Image Properties", report.Groups[4].Label)
	assert.Empty(t, report.Groups[4].Items)

	require.NotNil(t, report.Location)
	assert.Equal(t, 37.7749, report.Location.Lat)
	assert.Nil(t, report.Location.DistanceKm)
}

func TestBuildReportAll(t *testing.T) {
	home := option.Some(geotrack.Point{Lat: 34.0522, Lon: -118.2437})
	report := buildReport("a.jpg", sampleSnapshot(), true, home, monday.LocaleEnUS)

	assert.Empty(t, report.Groups)
	require.Len(t, report.Tags, 6)
	assert.Equal(t, "Software", report.Tags[3].Name)
	assert.Equal(t, "fw 1.0", report.Tags[3].Text)

	require.NotNil(t, report.Location)
	require.NotNil(t, report.Location.DistanceKm)
	assert.InDelta(t, 559, *report.Location.DistanceKm, 5)
}

func TestBuildReportWithoutLocation(t *testing.T) {
	snapshot := data.NewSnapshot([]data.Tag{
		data.NewTag(geotrack.TagLatitude, "37.7749", nil),
	})

	report := buildReport("a.jpg", snapshot, false, option.None[geotrack.Point](), monday.LocaleEnUS)
	assert.Nil(t, report.Location)
	assert.Empty(t, report.Captured)
}

func TestWriteReportText(t *testing.T) {
	report := buildReport("a.jpg", sampleSnapshot(), false, option.None[geotrack.Point](), monday.LocaleEnUS)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, report, "text"))

	out := buf.String()
	assert.Contains(t, out, "Camera Info\n  Make: Canon\n")
	assert.Contains(t, out, "Shooting Settings\n  FNumber: f/2.8\n")
	assert.Contains(t, out, "Location: 37.774900, -122.419400\n")
}

func TestWriteReportJSON(t *testing.T) {
	report := buildReport("a.jpg", sampleSnapshot(), true, option.None[geotrack.Point](), monday.LocaleEnUS)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, report, "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "a.jpg", decoded["file"])
	assert.Len(t, decoded["tags"], 6)
	assert.NotContains(t, decoded, "groups")
}

func TestWriteReportYAML(t *testing.T) {
	report := buildReport("a.jpg", sampleSnapshot(), false, option.None[geotrack.Point](), monday.LocaleEnUS)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, report, "yaml"))

	var decoded inspectReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.File, decoded.File)
	assert.Equal(t, report.Groups[1].Items, decoded.Groups[1].Items)
	require.NotNil(t, decoded.Location)
	assert.Equal(t, -122.4194, decoded.Location.Lon)
}

func TestWriteReportUnknownFormat(t *testing.T) {
	assert.Error(t, writeReport(&bytes.Buffer{}, inspectReport{}, "xml"))
}
