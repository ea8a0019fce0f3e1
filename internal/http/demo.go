package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/demo"
)

// DemoController reports whether read-only mode is on.
type DemoController struct {
	middleware *demo.Middleware
}

// NewDemoController creates a new read-only status controller.
func NewDemoController(middleware *demo.Middleware) *DemoController {
	return &DemoController{
		middleware: middleware,
	}
}

// DemoStatusResponse contains read-only mode status information.
type DemoStatusResponse struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// GetStatus returns the current read-only mode status.
// GET /api/read-only/status
func (dc *DemoController) GetStatus(c *gin.Context) {
	if !dc.middleware.IsEnabled() {
		c.JSON(http.StatusOK, DemoStatusResponse{
			Enabled: false,
			Message: "Read-only mode is not active",
		})
		return
	}

	c.JSON(http.StatusOK, DemoStatusResponse{
		Enabled: true,
		Message: "Read-only mode is active - adding books is disabled",
	})
}
