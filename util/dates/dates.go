package dates

import (
	"strings"
	"time"
)

// EXIFLayout is the date/time layout used by EXIF date tags.
const EXIFLayout = "2006:01:02 15:04:05"

// ParseEXIF parses an EXIF date/time. EXIF stores no zone, so the result is in
// local time.
func ParseEXIF(s string) (time.Time, error) {
	t, err := time.Parse(EXIFLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		t.Hour(),
		t.Minute(),
		t.Second(),
		t.Nanosecond(),
		time.Local,
	), nil
}
