package services

import (
	"context"

	"github.com/mrlokans/booklist/internal/entities"
)

// BookStore is the storage contract the book service runs on.
// Implemented by books.Repository.
type BookStore interface {
	ListAll(ctx context.Context) ([]entities.Book, error)
	Insert(ctx context.Context, title string) (*entities.Book, error)
	Search(ctx context.Context, query string) ([]entities.Book, error)
}

// BookSearcher runs a single title search.
// Implemented by BookService.
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]entities.RankedBook, error)
}
