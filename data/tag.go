package data

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

type DisplayKind int

const (
	DisplayAbsent DisplayKind = iota
	DisplayDescribed
	DisplayRawOnly
)

// Display is the text shown for a tag, decided once when the tag is created.
type Display struct {
	Kind DisplayKind
	Text string
}

func (d Display) IsAbsent() bool {
	return d.Kind == DisplayAbsent
}

func (d Display) String() string {
	return d.Text
}

// Tag is one decoded EXIF field. Description and Value are both optional.
type Tag struct {
	Name        string
	Description string
	Value       any
	Display     Display
}

func NewTag(name string, description string, value any) Tag {
	return Tag{
		Name:        name,
		Description: description,
		Value:       value,
		Display:     makeDisplay(description, value),
	}
}

func (t Tag) HasDescription() bool {
	return len(t.Description) > 0
}

func (t Tag) HasValue() bool {
	return t.Value != nil
}

func (t Tag) String() string {
	return t.Display.Text
}

func makeDisplay(description string, value any) Display {
	if len(description) > 0 {
		return Display{Kind: DisplayDescribed, Text: description}
	}

	if text := FormatValue(value); len(text) > 0 {
		return Display{Kind: DisplayRawOnly, Text: text}
	}

	return Display{Kind: DisplayAbsent}
}

// FormatValue converts a raw tag value to text. Lists are joined by commas.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return joinValues(v, func(b byte) string { return strconv.Itoa(int(b)) })
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *big.Rat:
		return formatRat(v)
	case []int64:
		return joinValues(v, func(i int64) string { return strconv.FormatInt(i, 10) })
	case []float64:
		return joinValues(v, func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) })
	case []*big.Rat:
		return joinValues(v, formatRat)
	case []string:
		return strings.Join(v, ",")
	case fmt.Stringer:
		return v.String()
	}

	return fmt.Sprint(value)
}

func formatRat(r *big.Rat) string {
	if r == nil {
		return ""
	}

	if r.IsInt() {
		return r.Num().String()
	}

	return r.String()
}

func joinValues[T any](values []T, format func(T) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = format(v)
	}

	return strings.Join(parts, ",")
}
