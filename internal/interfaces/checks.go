package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/http"
	"github.com/mrlokans/booklist/internal/scheduler"
	"github.com/mrlokans/booklist/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookStore implementations
var _ services.BookStore = (*books.Repository)(nil)

// DatabasePinger implementations
var _ http.DatabasePinger = (*database.Database)(nil)

// =============================================================================
// Service Boundary
// =============================================================================

// BookService implementations
var _ http.BookService = (*services.BookService)(nil)

// BookSearcher implementations
var _ services.BookSearcher = (*services.BookService)(nil)

// =============================================================================
// Background Jobs
// =============================================================================

// BookLister implementations
var _ scheduler.BookLister = (*services.BookService)(nil)
