package http

import (
	"context"

	"github.com/mrlokans/booklist/internal/entities"
)

// BookService is the book list boundary used by the controllers.
// Implemented by services.BookService.
type BookService interface {
	ListAll(ctx context.Context) ([]entities.RankedBook, error)
	Add(ctx context.Context, title string) (*entities.Book, error)
	Search(ctx context.Context, query string) ([]entities.RankedBook, error)
}

// DatabasePinger reports whether the store is reachable.
// Implemented by database.Database.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}
