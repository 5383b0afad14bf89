package viewer

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/bgraf/exifview/data"
	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/images"
	"github.com/bgraf/exifview/option"
	"github.com/bgraf/exifview/render"
	"github.com/rs/zerolog"
)

// Upload is a file picked by the user.
type Upload struct {
	Name        string
	ContentType string
	Content     []byte
}

type Previewer interface {
	Preview(ctx context.Context, contentType string, content []byte) (string, error)
}

// State is what the viewer currently shows. All fields belong to the load
// identified by Generation.
type State struct {
	Generation uint64
	FileName   string
	Preview    string
	Snapshot   *data.Snapshot
	Location   option.Option[geotrack.Point]
	MapView    *render.MapView
}

func (s State) HasSnapshot() bool {
	return s.Snapshot != nil
}

type Options struct {
	Decoder   images.Decoder
	Previewer Previewer
	MapZoom   int
	Logger    zerolog.Logger
}

// Session holds the state of one viewer. Loading a file replaces the state;
// results of a load that has been superseded by a newer one are dropped.
type Session struct {
	decoder   images.Decoder
	previewer Previewer
	mapZoom   int
	logger    zerolog.Logger

	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc
	state  State
}

func NewSession(opts Options) *Session {
	return &Session{
		decoder:   opts.Decoder,
		previewer: opts.Previewer,
		mapZoom:   opts.MapZoom,
		logger:    opts.Logger,
	}
}

// Load replaces the session state with the given file. Preview and metadata
// are produced concurrently; Load returns once both have settled and yields
// the generation of this load.
func (s *Session) Load(ctx context.Context, upload Upload) uint64 {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.latest++
	generation := s.latest
	s.cancel = cancel
	s.state = State{Generation: generation, FileName: upload.Name}
	s.mu.Unlock()

	logger := s.logger.With().
		Str("file", upload.Name).
		Uint64("generation", generation).
		Logger()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.loadPreview(ctx, generation, upload, logger)
	}()

	go func() {
		defer wg.Done()
		s.loadMetadata(ctx, generation, upload, logger)
	}()

	wg.Wait()

	return generation
}

func (s *Session) loadPreview(ctx context.Context, generation uint64, upload Upload, logger zerolog.Logger) {
	preview, err := s.previewer.Preview(ctx, upload.ContentType, upload.Content)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.latest {
		logger.Debug().Msg("discarding stale preview")
		return
	}

	if err != nil {
		logger.Debug().Err(err).Msg("no preview")
		return
	}

	s.state.Preview = preview
}

func (s *Session) loadMetadata(ctx context.Context, generation uint64, upload Upload, logger zerolog.Logger) {
	snapshot, err := s.decoder.Decode(ctx, bytes.NewReader(upload.Content))

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.latest {
		logger.Debug().Msg("discarding stale metadata")
		return
	}

	if err != nil {
		logger.Warn().Err(err).Msg("error processing EXIF data")
		return
	}

	logger.Debug().Int("tags", snapshot.Len()).Msg("EXIF metadata loaded")

	s.state.Snapshot = snapshot
	s.state.Location = geotrack.Resolve(snapshot)

	if p, ok := s.state.Location.Lookup(); ok {
		s.state.MapView = render.NewMapView(p, s.mapZoom)
	}
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if state.MapView != nil {
		view := *state.MapView
		state.MapView = &view
	}

	return state
}

// PanMap records a viewport change on the location map.
func (s *Session) PanMap(center geotrack.Point, zoom int) (render.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.MapView == nil {
		return render.MapView{}, geotrack.ErrNoLocation
	}

	if !center.IsValid() {
		return render.MapView{}, errors.New("invalid map center")
	}

	s.state.MapView.Pan(center, zoom)

	return *s.state.MapView, nil
}

// ResetMap moves the location map back to the original center and zoom.
func (s *Session) ResetMap() (render.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.MapView == nil {
		return render.MapView{}, geotrack.ErrNoLocation
	}

	s.state.MapView.Reset()

	return *s.state.MapView, nil
}

// MapView returns the current viewport of the location map.
func (s *Session) MapView() (render.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.MapView == nil {
		return render.MapView{}, geotrack.ErrNoLocation
	}

	return *s.state.MapView, nil
}
