package serve

import (
	"net/http"
	"time"

	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/render"
	"github.com/gin-gonic/gin"
)

// ServeGPX offers the capture location as a GPX waypoint.
func (api *serveAPI) ServeGPX(c *gin.Context) {
	session, ok := api.session(c)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	state := session.State()
	p, ok := state.Location.Lookup()
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	timestamp := render.CaptureTime(state.Snapshot).Or(time.Time{})

	xml, err := geotrack.WaypointGPX(geotrack.Waypoint{
		Point:     p,
		Name:      state.FileName,
		Timestamp: timestamp,
	})
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during GPX writing")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="location.gpx"`)
	c.Data(http.StatusOK, "application/gpx+xml", xml)
}
