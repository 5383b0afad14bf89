package serve

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bgraf/exifview/config"
	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/images"
	"github.com/bgraf/exifview/logging"
	"github.com/bgraf/exifview/option"
	"github.com/bgraf/exifview/render"
	"github.com/bgraf/exifview/res"
	"github.com/bgraf/exifview/viewer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Options configure the HTTP handler of the viewer.
type Options struct {
	Decoder     images.Decoder
	Previewer   viewer.Previewer
	MapZoom     int
	MapSettings render.MapSettings
	Home        option.Option[geotrack.Point]
	Templates   *template.Template
	Static      http.FileSystem
	Logger      zerolog.Logger
}

func RunServeCmd(cmd *cobra.Command, args []string) error {
	logger := logging.Component("serve")

	templates, static, err := loadResources()
	if err != nil {
		return err
	}

	home := option.None[geotrack.Point]()
	if config.HasHomeCoords() {
		c := config.HomeCoords()
		home = option.Some(geotrack.Point{Lat: c.Lat, Lon: c.Lon})
	}

	gin.SetMode(gin.ReleaseMode)

	r := NewRouter(Options{
		Decoder:   images.NewEXIFDecoder(),
		Previewer: images.NewPreviewer(config.PreviewMaxWidth()),
		MapZoom:   config.MapZoom(),
		MapSettings: render.MapSettings{
			TileURL:     config.MapTileURL(),
			Attribution: config.MapAttribution(),
		},
		Home:      home,
		Templates: templates,
		Static:    static,
		Logger:    logger,
	})

	addr := config.ServerAddress()
	logger.Info().Str("address", addr).Msg("serving viewer")

	if err := r.Run(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// loadResources reads templates and static files from the configured
// resource directory or falls back to the embedded ones.
func loadResources() (*template.Template, http.FileSystem, error) {
	locale := config.DisplayLocale()

	if config.HasResourceDir() {
		dir := config.ResourceDir()
		templates, err := render.ReadTemplatesFS(os.DirFS(dir), "templates", locale)
		if err != nil {
			return nil, nil, err
		}

		return templates, gin.Dir(filepath.Join(dir, "static"), false), nil
	}

	templates, err := render.ReadTemplates(locale)
	if err != nil {
		return nil, nil, err
	}

	static, err := fs.Sub(res.Static, "static")
	if err != nil {
		return nil, nil, fmt.Errorf("embedded static files: %w", err)
	}

	return templates, http.FS(static), nil
}

// NewRouter wires the viewer routes.
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(opts.Logger))

	api := newServeAPI(opts)

	r.GET("/", api.ServeIndex)
	r.POST("/upload", api.ServeUpload)
	r.GET("/metadata", api.ServeMetadata)
	r.GET("/location.gpx", api.ServeGPX)
	r.GET("/map", api.ServeMap)
	r.POST("/map/view", api.ServePanMap)
	r.POST("/map/reset", api.ServeResetMap)

	r.SetHTMLTemplate(opts.Templates)
	if opts.Static != nil {
		r.StaticFS("/static", opts.Static)
	}

	return r
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

type serveAPI struct {
	sessions *sessionMap
	settings render.MapSettings
	home     option.Option[geotrack.Point]
	logger   zerolog.Logger
}

func newServeAPI(opts Options) *serveAPI {
	factory := func() *viewer.Session {
		return viewer.NewSession(viewer.Options{
			Decoder:   opts.Decoder,
			Previewer: opts.Previewer,
			MapZoom:   opts.MapZoom,
			Logger:    opts.Logger,
		})
	}

	return &serveAPI{
		sessions: newSessionMap(factory),
		settings: opts.MapSettings,
		home:     opts.Home,
		logger:   opts.Logger,
	}
}

// session returns the session of the requesting browser, if any.
func (api *serveAPI) session(c *gin.Context) (*viewer.Session, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}

	guid, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	return api.sessions.Lookup(guid)
}

// sessionOrCreate returns the browser's session, starting a new one and
// setting its cookie when none exists.
func (api *serveAPI) sessionOrCreate(c *gin.Context) (*viewer.Session, error) {
	if session, ok := api.session(c); ok {
		return session, nil
	}

	guid, session, err := api.sessions.Create()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, guid.String(), 0, "/", "", false, true)

	return session, nil
}
