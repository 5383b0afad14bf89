package serve

import (
	"errors"
	"net/http"

	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/render"
	"github.com/gin-gonic/gin"
)

type panRequest struct {
	Center geotrack.Point `json:"center"`
	Zoom   int            `json:"zoom"`
}

func (api *serveAPI) ServeMap(c *gin.Context) {
	api.respondMapView(c, func() (render.MapView, error) {
		session, ok := api.session(c)
		if !ok {
			return render.MapView{}, geotrack.ErrNoLocation
		}
		return session.MapView()
	})
}

// ServePanMap records the viewport after the user moved the map.
func (api *serveAPI) ServePanMap(c *gin.Context) {
	var req panRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	api.respondMapView(c, func() (render.MapView, error) {
		session, ok := api.session(c)
		if !ok {
			return render.MapView{}, geotrack.ErrNoLocation
		}
		return session.PanMap(req.Center, req.Zoom)
	})
}

// ServeResetMap moves the map back to the capture location and returns the
// view the client should fly to.
func (api *serveAPI) ServeResetMap(c *gin.Context) {
	api.respondMapView(c, func() (render.MapView, error) {
		session, ok := api.session(c)
		if !ok {
			return render.MapView{}, geotrack.ErrNoLocation
		}
		return session.ResetMap()
	})
}

func (api *serveAPI) respondMapView(c *gin.Context, fn func() (render.MapView, error)) {
	view, err := fn()
	switch {
	case errors.Is(err, geotrack.ErrNoLocation):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, view)
	}
}
