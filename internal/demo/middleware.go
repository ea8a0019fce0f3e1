// Package demo implements read-only mode: the list can be browsed, searched
// and exported, but not changed.
package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware blocks write operations when read-only mode is on.
// GET, HEAD and OPTIONS requests always pass.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m != nil && m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.IsEnabled() {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		m.respondBlocked(c)
	}
}

// respondBlocked sends a 403 response, as JSON when the client asks for it.
func (m *Middleware) respondBlocked(c *gin.Context) {
	message := "This action is disabled in read-only mode"

	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     message,
			"read_only": true,
		})
		c.Abort()
		return
	}

	c.String(http.StatusForbidden, message)
	c.Abort()
}

// ContextKeyReadOnly stores the read-only flag in the request context.
const ContextKeyReadOnly = "read_only"

// InjectContext adds the read-only flag to the request context.
func (m *Middleware) InjectContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyReadOnly, m.IsEnabled())
		c.Next()
	}
}
