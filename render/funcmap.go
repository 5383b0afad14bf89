package render

import (
	"fmt"
	"html/template"
	"time"

	"github.com/goodsign/monday"
)

// CaptureLayout formats capture dates for display.
const CaptureLayout = "Monday, 2 January 2006 15:04"

func MakeTemplateFuncmap(locale monday.Locale) template.FuncMap {
	colors := NewColorSet()

	return template.FuncMap{
		"categoryColor": func(c Category) string {
			return colors.HexColor(c.Label)
		},
		"captureDisplay": func(t time.Time) string {
			return monday.Format(t, CaptureLayout, locale)
		},
		"distanceDisplay": FormatDistance,
		"coordinate": func(v float64) string {
			return fmt.Sprintf("%.6f", v)
		},
	}
}

func FormatDistance(km float64) string {
	if km < 10 {
		return fmt.Sprintf("%.2f km", km)
	}
	return fmt.Sprintf("%.0f km", km)
}
