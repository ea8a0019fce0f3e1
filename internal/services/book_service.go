package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrlokans/booklist/internal/entities"
)

// BookService is the boundary the HTTP API and CLI call into. It owns input
// validation and computes ranks; storage order and matching are left to the
// store.
type BookService struct {
	store BookStore
}

func NewBookService(store BookStore) *BookService {
	return &BookService{store: store}
}

// ListAll returns a snapshot of every book, ranked from 1 in insertion order.
func (s *BookService) ListAll(ctx context.Context) ([]entities.RankedBook, error) {
	books, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return entities.Rank(books), nil
}

// Add stores a trimmed title. Blank titles fail with *ValidationError and
// leave storage untouched.
func (s *BookService) Add(ctx context.Context, title string) (*entities.Book, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, &ValidationError{Field: "title", Message: EmptyTitleMessage}
	}

	book, err := s.store.Insert(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("add book %q: %w", trimmed, err)
	}
	return book, nil
}

// Search returns ranked books whose title contains query. An empty query
// yields an empty result without a storage round trip.
func (s *BookService) Search(ctx context.Context, query string) ([]entities.RankedBook, error) {
	if query == "" {
		return []entities.RankedBook{}, nil
	}

	books, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search books %q: %w", query, err)
	}
	return entities.Rank(books), nil
}
