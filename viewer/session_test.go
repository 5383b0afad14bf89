package viewer

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/bgraf/exifview/data"
	"github.com/bgraf/exifview/geotrack"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder maps file content to snapshots. Content listed in block waits
// until its channel is closed.
type fakeDecoder struct {
	mu        sync.Mutex
	snapshots map[string]*data.Snapshot
	block     map[string]chan struct{}
	entered   map[string]chan struct{}
}

func newFakeDecoder() *fakeDecoder {
	return &fakeDecoder{
		snapshots: make(map[string]*data.Snapshot),
		block:     make(map[string]chan struct{}),
		entered:   make(map[string]chan struct{}),
	}
}

func (d *fakeDecoder) blockOn(content string) (entered, release chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entered = make(chan struct{})
	release = make(chan struct{})
	d.entered[content] = entered
	d.block[content] = release

	return entered, release
}

func (d *fakeDecoder) Decode(ctx context.Context, r io.Reader) (*data.Snapshot, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	content := string(b)

	d.mu.Lock()
	release, blocked := d.block[content]
	entered := d.entered[content]
	snapshot, ok := d.snapshots[content]
	d.mu.Unlock()

	if blocked {
		close(entered)
		<-release
	}

	if !ok {
		return nil, errors.New("unsupported format")
	}

	return snapshot, nil
}

type fakePreviewer struct{}

func (fakePreviewer) Preview(_ context.Context, _ string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", errors.New("empty file")
	}
	return "preview:" + string(content), nil
}

func locatedSnapshot(lat, lon string) *data.Snapshot {
	return data.NewSnapshot([]data.Tag{
		data.NewTag("Make", "Canon", nil),
		data.NewTag(geotrack.TagLatitude, lat, nil),
		data.NewTag(geotrack.TagLongitude, lon, nil),
	})
}

func newTestSession(decoder *fakeDecoder) *Session {
	return NewSession(Options{
		Decoder:   decoder,
		Previewer: fakePreviewer{},
		MapZoom:   13,
		Logger:    zerolog.Nop(),
	})
}

func TestLoadWithLocation(t *testing.T) {
	decoder := newFakeDecoder()
	decoder.snapshots["a"] = locatedSnapshot("37.7749", "-122.4194")

	s := newTestSession(decoder)
	gen := s.Load(context.Background(), Upload{Name: "a.jpg", Content: []byte("a")})

	state := s.State()
	assert.Equal(t, gen, state.Generation)
	assert.Equal(t, "a.jpg", state.FileName)
	assert.Equal(t, "preview:a", state.Preview)
	require.True(t, state.HasSnapshot())
	require.True(t, state.Location.IsSome())
	assert.Equal(t, geotrack.Point{Lat: 37.7749, Lon: -122.4194}, state.Location.Get())
	require.NotNil(t, state.MapView)
	assert.Equal(t, 13, state.MapView.Zoom)
}

func TestLoadDecodeFailure(t *testing.T) {
	decoder := newFakeDecoder()
	decoder.snapshots["a"] = locatedSnapshot("37.7749", "-122.4194")

	s := newTestSession(decoder)
	s.Load(context.Background(), Upload{Name: "a.jpg", Content: []byte("a")})
	s.Load(context.Background(), Upload{Name: "broken.jpg", Content: []byte("broken")})

	state := s.State()
	assert.Equal(t, "broken.jpg", state.FileName)
	assert.Equal(t, "preview:broken", state.Preview)
	assert.False(t, state.HasSnapshot())
	assert.True(t, state.Location.IsNone())
	assert.Nil(t, state.MapView)
}

func TestLoadWithoutLongitude(t *testing.T) {
	decoder := newFakeDecoder()
	decoder.snapshots["a"] = data.NewSnapshot([]data.Tag{
		data.NewTag(geotrack.TagLatitude, "37.7749", nil),
		data.NewTag("Make", "Canon", nil),
	})

	s := newTestSession(decoder)
	s.Load(context.Background(), Upload{Name: "a.jpg", Content: []byte("a")})

	state := s.State()
	assert.True(t, state.HasSnapshot())
	assert.True(t, state.Location.IsNone())
	assert.Nil(t, state.MapView)

	_, err := s.ResetMap()
	assert.ErrorIs(t, err, geotrack.ErrNoLocation)
}

func TestLoadDiscardsStaleCompletion(t *testing.T) {
	decoder := newFakeDecoder()
	decoder.snapshots["a"] = locatedSnapshot("1", "2")
	decoder.snapshots["b"] = locatedSnapshot("37.7749", "-122.4194")
	entered, release := decoder.blockOn("a")

	s := newTestSession(decoder)

	done := make(chan uint64)
	go func() {
		done <- s.Load(context.Background(), Upload{Name: "a.jpg", Content: []byte("a")})
	}()

	<-entered
	genB := s.Load(context.Background(), Upload{Name: "b.jpg", Content: []byte("b")})

	close(release)
	genA := <-done
	assert.Less(t, genA, genB)

	state := s.State()
	assert.Equal(t, genB, state.Generation)
	assert.Equal(t, "b.jpg", state.FileName)
	assert.Equal(t, "preview:b", state.Preview)
	require.True(t, state.Location.IsSome())
	assert.Equal(t, geotrack.Point{Lat: 37.7749, Lon: -122.4194}, state.Location.Get())

	tag, ok := state.Snapshot.Get(geotrack.TagLatitude)
	require.True(t, ok)
	assert.Equal(t, "37.7749", tag.Description)
}

func TestResetMapAfterPan(t *testing.T) {
	decoder := newFakeDecoder()
	decoder.snapshots["a"] = locatedSnapshot("37.7749", "-122.4194")

	s := newTestSession(decoder)
	s.Load(context.Background(), Upload{Name: "a.jpg", Content: []byte("a")})

	panned, err := s.PanMap(geotrack.Point{Lat: 51.5072, Lon: -0.1276}, 6)
	require.NoError(t, err)
	assert.Equal(t, geotrack.Point{Lat: 51.5072, Lon: -0.1276}, panned.Center)

	view, err := s.ResetMap()
	require.NoError(t, err)
	assert.Equal(t, geotrack.Point{Lat: 37.7749, Lon: -122.4194}, view.Center)
	assert.Equal(t, 13, view.Zoom)
	assert.Equal(t, geotrack.Point{Lat: 37.7749, Lon: -122.4194}, view.Marker)

	tag, _ := s.State().Snapshot.Get(geotrack.TagLatitude)
	assert.Equal(t, "37.7749", tag.Description)
}

func TestPanMapRejectsInvalidCenter(t *testing.T) {
	decoder := newFakeDecoder()
	decoder.snapshots["a"] = locatedSnapshot("37.7749", "-122.4194")

	s := newTestSession(decoder)
	s.Load(context.Background(), Upload{Name: "a.jpg", Content: []byte("a")})

	_, err := s.PanMap(geotrack.Point{Lat: 100, Lon: 0}, 3)
	assert.Error(t, err)
}

func TestStateIsCopy(t *testing.T) {
	decoder := newFakeDecoder()
	decoder.snapshots["a"] = locatedSnapshot("37.7749", "-122.4194")

	s := newTestSession(decoder)
	s.Load(context.Background(), Upload{Name: "a.jpg", Content: []byte("a")})

	state := s.State()
	state.MapView.Pan(geotrack.Point{Lat: 0, Lon: 0}, 1)

	view, err := s.MapView()
	require.NoError(t, err)
	assert.Equal(t, geotrack.Point{Lat: 37.7749, Lon: -122.4194}, view.Center)
}
