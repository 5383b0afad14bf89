package images

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/tiff"
)

var orientationNames = map[int64]string{
	1: "top-left",
	2: "top-right",
	3: "bottom-right",
	4: "bottom-left",
	5: "left-top",
	6: "right-top",
	7: "right-bottom",
	8: "left-bottom",
}

// describe renders the human readable form of a tag. refs holds all tags of
// the image, so GPS coordinates can take their hemisphere into account.
func describe(name string, tag *tiff.Tag, refs map[string]*tiff.Tag) string {
	switch name {
	case "GPSLatitude":
		return describeDegrees(tag, refs["GPSLatitudeRef"], "S")
	case "GPSLongitude":
		return describeDegrees(tag, refs["GPSLongitudeRef"], "W")
	case "GPSAltitude":
		return describeAltitude(tag, refs["GPSAltitudeRef"])
	case "ExposureTime":
		return describeExposure(tag)
	case "FNumber":
		if v, ok := ratFloat(tag, 0); ok {
			return "f/" + formatFloat(v)
		}
	case "FocalLength":
		if v, ok := ratFloat(tag, 0); ok {
			return formatFloat(v) + " mm"
		}
	case "Orientation":
		if v, err := tag.Int64(0); err == nil {
			if s, ok := orientationNames[v]; ok {
				return s
			}
		}
	case "ImageWidth", "ImageLength", "PixelXDimension", "PixelYDimension":
		return describePixels(tag)
	}

	return describeGeneric(tag)
}

func describeGeneric(tag *tiff.Tag) string {
	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case tiff.IntVal:
		if tag.Count == 1 {
			if v, err := tag.Int64(0); err == nil {
				return strconv.FormatInt(v, 10)
			}
		}
	case tiff.RatVal:
		if tag.Count == 1 {
			if v, ok := ratFloat(tag, 0); ok {
				return formatFloat(v)
			}
		}
	case tiff.FloatVal:
		if tag.Count == 1 {
			if v, err := tag.Float(0); err == nil {
				return formatFloat(v)
			}
		}
	}

	return ""
}

func describePixels(tag *tiff.Tag) string {
	v, err := tag.Int64(0)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%dpx", v)
}

// describeDegrees converts a degrees/minutes/seconds triple to signed decimal
// degrees.
func describeDegrees(tag *tiff.Tag, ref *tiff.Tag, negativeRef string) string {
	if tag.Format() != tiff.RatVal || tag.Count == 0 {
		return ""
	}

	var parts [3]float64
	for i := 0; i < 3 && i < int(tag.Count); i++ {
		v, ok := ratFloat(tag, i)
		if !ok {
			return ""
		}
		parts[i] = v
	}

	degrees := parts[0] + parts[1]/60 + parts[2]/3600

	if ref != nil {
		if s, err := ref.StringVal(); err == nil && strings.EqualFold(strings.TrimSpace(s), negativeRef) {
			degrees = -degrees
		}
	}

	return formatFloat(degrees)
}

func describeAltitude(tag *tiff.Tag, ref *tiff.Tag) string {
	v, ok := ratFloat(tag, 0)
	if !ok {
		return ""
	}

	if ref != nil {
		if below, err := ref.Int64(0); err == nil && below == 1 {
			v = -v
		}
	}

	return formatFloat(v) + " m"
}

func describeExposure(tag *tiff.Tag) string {
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return ""
	}

	if num == 0 {
		return "0"
	}

	v := float64(num) / float64(den)
	if v >= 1 {
		return formatFloat(v)
	}

	return fmt.Sprintf("1/%d", int64(math.Round(1/v)))
}

// rawValue returns the typed value of a tag. Single values are unwrapped.
func rawValue(tag *tiff.Tag) any {
	n := int(tag.Count)

	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return nil
		}
		return s
	case tiff.IntVal:
		values := make([]int64, 0, n)
		for i := 0; i < n; i++ {
			v, err := tag.Int64(i)
			if err != nil {
				return nil
			}
			values = append(values, v)
		}
		if len(values) == 1 {
			return values[0]
		}
		return values
	case tiff.RatVal:
		values := make([]*big.Rat, 0, n)
		for i := 0; i < n; i++ {
			num, den, err := tag.Rat2(i)
			if err != nil || den == 0 {
				return nil
			}
			values = append(values, big.NewRat(num, den))
		}
		if len(values) == 1 {
			return values[0]
		}
		return values
	case tiff.FloatVal:
		values := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			v, err := tag.Float(i)
			if err != nil {
				return nil
			}
			values = append(values, v)
		}
		if len(values) == 1 {
			return values[0]
		}
		return values
	}

	if len(tag.Val) == 0 {
		return nil
	}

	raw := make([]byte, len(tag.Val))
	copy(raw, tag.Val)

	return raw
}

func ratFloat(tag *tiff.Tag, i int) (float64, bool) {
	num, den, err := tag.Rat2(i)
	if err != nil || den == 0 {
		return 0, false
	}

	return float64(num) / float64(den), true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
