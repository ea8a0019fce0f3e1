package http

import (
	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/demo"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Books    BookService
	Database DatabasePinger
	Auditor  *audit.Auditor

	// Read-only mode
	DemoMiddleware *demo.Middleware

	// Application info
	Version string
}
