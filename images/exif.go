package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/bgraf/exifview/data"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

var ErrNoExif = errors.New("no EXIF data")

var ErrNotInitialized = errors.New("EXIF decoder not initialized, call images.Init")

// Decoder turns raw image bytes into a metadata snapshot.
type Decoder interface {
	Decode(ctx context.Context, r io.Reader) (*data.Snapshot, error)
}

var (
	initOnce    sync.Once
	initialized atomic.Bool
)

// Init registers the maker note parsers with goexif. It must run once before
// the first call to Decode.
func Init() {
	initOnce.Do(func() {
		exif.RegisterParsers(mknote.All...)
		initialized.Store(true)
	})
}

// EXIFDecoder decodes EXIF metadata from JPEG, TIFF or raw EXIF blocks.
type EXIFDecoder struct{}

func NewEXIFDecoder() *EXIFDecoder {
	return &EXIFDecoder{}
}

func (d *EXIFDecoder) Decode(ctx context.Context, r io.Reader) (*data.Snapshot, error) {
	if !initialized.Load() {
		return nil, ErrNotInitialized
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x, err := exif.Decode(r)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return nil, fmt.Errorf("decode EXIF: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := newTagCollector()
	if err := x.Walk(c); err != nil {
		return nil, fmt.Errorf("walk EXIF tags: %w", err)
	}

	if len(c.entries) == 0 {
		return nil, ErrNoExif
	}

	return c.snapshot(), nil
}

type tagEntry struct {
	name string
	tag  *tiff.Tag
}

type tagCollector struct {
	entries []tagEntry
	byName  map[string]*tiff.Tag
}

func newTagCollector() *tagCollector {
	return &tagCollector{byName: make(map[string]*tiff.Tag)}
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	c.entries = append(c.entries, tagEntry{name: string(name), tag: tag})
	c.byName[string(name)] = tag
	return nil
}

// snapshot orders the walked tags by tag id and name; goexif walks a map.
func (c *tagCollector) snapshot() *data.Snapshot {
	sort.SliceStable(c.entries, func(i, j int) bool {
		if c.entries[i].tag.Id != c.entries[j].tag.Id {
			return c.entries[i].tag.Id < c.entries[j].tag.Id
		}
		return c.entries[i].name < c.entries[j].name
	})

	tags := make([]data.Tag, 0, len(c.entries)+2)
	for _, e := range c.entries {
		tags = append(tags, data.NewTag(e.name, describe(e.name, e.tag, c.byName), rawValue(e.tag)))
	}

	tags = append(tags, dimensionAliases(c.byName)...)

	return data.NewSnapshot(tags)
}

// dimensionAliases exposes the pixel dimensions of the EXIF sub-IFD under the
// ImageWidth/ImageHeight names when IFD0 does not carry them.
func dimensionAliases(byName map[string]*tiff.Tag) []data.Tag {
	var aliases []data.Tag

	alias := func(name string, sources ...string) {
		if _, ok := byName[name]; ok {
			return
		}
		for _, src := range sources {
			if tag, ok := byName[src]; ok {
				aliases = append(aliases, data.NewTag(name, describePixels(tag), rawValue(tag)))
				return
			}
		}
	}

	alias("ImageWidth", "PixelXDimension")
	alias("ImageHeight", "ImageLength", "PixelYDimension")

	return aliases
}
