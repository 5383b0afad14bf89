package serve

import (
	"io"
	"net/http"

	"github.com/bgraf/exifview/render"
	"github.com/bgraf/exifview/viewer"
	"github.com/gin-gonic/gin"
)

func (api *serveAPI) ServeIndex(c *gin.Context) {
	var state viewer.State
	if session, ok := api.session(c); ok {
		state = session.State()
	}

	page, err := render.BuildPage(
		render.PageData{
			FileName: state.FileName,
			Preview:  state.Preview,
			Snapshot: state.Snapshot,
			MapView:  state.MapView,
			Home:     api.home,
		},
		api.settings,
	)
	if err != nil {
		api.logger.Error().Err(err).Msg("rendering page failed")
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.HTML(http.StatusOK, "index.html", page)
}

func (api *serveAPI) ServeUpload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.String(http.StatusBadRequest, "no image selected")
		return
	}

	f, err := header.Open()
	if err != nil {
		api.logger.Debug().Err(err).Str("file", header.Filename).Msg("cannot open upload")
		c.String(http.StatusBadRequest, "cannot read image")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		api.logger.Debug().Err(err).Str("file", header.Filename).Msg("cannot read upload")
		c.String(http.StatusBadRequest, "cannot read image")
		return
	}

	session, err := api.sessionOrCreate(c)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	session.Load(c.Request.Context(), viewer.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	})

	c.Redirect(http.StatusSeeOther, "/")
}

// ServeMetadata returns every tag of the current snapshot in snapshot order.
func (api *serveAPI) ServeMetadata(c *gin.Context) {
	session, ok := api.session(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no metadata"})
		return
	}

	state := session.State()
	if !state.HasSnapshot() {
		c.JSON(http.StatusNotFound, gin.H{"error": "no metadata"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file": state.FileName,
		"tags": render.FullView(state.Snapshot),
	})
}
