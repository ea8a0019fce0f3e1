// Package books provides database operations for the book list.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	all, err := repo.ListAll(ctx)
package books

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/entities"
)

// likeEscaper makes LIKE wildcards in a query match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every book in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	return books, err
}

// Insert stores a new book and returns it with its assigned ID.
// Callers are expected to validate the title.
func (r *Repository) Insert(ctx context.Context, title string) (*entities.Book, error) {
	book := &entities.Book{Title: title}
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// Search returns books whose title contains query, in insertion order.
// Matching follows SQLite LIKE semantics (ASCII case-insensitive).
func (r *Repository) Search(ctx context.Context, query string) ([]entities.Book, error) {
	books := []entities.Book{}
	pattern := "%" + likeEscaper.Replace(query) + "%"
	err := r.db.WithContext(ctx).
		Where(`title LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&books).Error
	return books, err
}

// Count returns the number of stored books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, err
}
