package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/entities"
	"github.com/mrlokans/booklist/internal/services"
)

func setupBooksTestDB(t *testing.T) (*database.Database, *services.BookService, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_books_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath, database.Options{})
	require.NoError(t, err)

	service := services.NewBookService(books.NewRepository(db.DB))

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, service, cleanup
}

func newBooksRouter(service BookService, auditor *audit.Auditor) *gin.Engine {
	return NewRouter(RouterConfig{Books: service, Auditor: auditor})
}

type listResponse struct {
	Books []entities.RankedBook `json:"books"`
	Count int                   `json:"count"`
	Query string                `json:"query"`
	Seq   uint64                `json:"seq"`
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestBooksController_GetAllBooks(t *testing.T) {
	t.Run("returns seeded books ranked from one", func(t *testing.T) {
		_, service, cleanup := setupBooksTestDB(t)
		defer cleanup()

		router := newBooksRouter(service, nil)
		w := doRequest(router, "GET", "/api/books", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var response listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Books, len(database.DefaultTitles))
		assert.Equal(t, len(database.DefaultTitles), response.Count)
		for i, book := range response.Books {
			assert.Equal(t, i+1, book.Index)
			assert.Equal(t, database.DefaultTitles[i], book.Title)
		}
	})

	t.Run("returns 500 when storage fails", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := newBooksRouter(&failingBookService{err: errors.New("disk gone")}, nil)

		w := doRequest(router, "GET", "/api/books", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
		assert.NotContains(t, w.Body.String(), "disk gone")
	})
}

func TestBooksController_AddBook(t *testing.T) {
	t.Run("creates book and appends it to the list", func(t *testing.T) {
		_, service, cleanup := setupBooksTestDB(t)
		defer cleanup()

		router := newBooksRouter(service, nil)
		w := doRequest(router, "POST", "/api/books", `{"title": "  Dune  "}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "Dune", created.Title)
		assert.NotZero(t, created.ID)

		list, err := service.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 11)
		assert.Equal(t, "Dune", list[10].Title)
		assert.Equal(t, 11, list[10].Index)
	})

	t.Run("accepts form encoded body", func(t *testing.T) {
		_, service, cleanup := setupBooksTestDB(t)
		defer cleanup()

		router := newBooksRouter(service, nil)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", strings.NewReader("title=Emma"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Emma")
	})

	t.Run("rejects blank title without changing storage", func(t *testing.T) {
		_, service, cleanup := setupBooksTestDB(t)
		defer cleanup()

		router := newBooksRouter(service, nil)

		for _, title := range []string{"", "   ", "\t\n"} {
			body, _ := json.Marshal(AddBookRequest{Title: title})
			w := doRequest(router, "POST", "/api/books", string(body))

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, CodeValidation, response.Code)
			assert.Equal(t, services.EmptyTitleMessage, response.Error)
		}

		list, err := service.ListAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, len(database.DefaultTitles))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, service, cleanup := setupBooksTestDB(t)
		defer cleanup()

		router := newBooksRouter(service, nil)
		w := doRequest(router, "POST", "/api/books", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), CodeBadRequest)
	})

	t.Run("writes audit record when enabled", func(t *testing.T) {
		_, service, cleanup := setupBooksTestDB(t)
		defer cleanup()

		auditDir := t.TempDir()
		router := newBooksRouter(service, audit.NewAuditor(auditDir))
		w := doRequest(router, "POST", "/api/books", `{"title": "Ulysses"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		files, err := filepath.Glob(filepath.Join(auditDir, "*.json"))
		require.NoError(t, err)
		require.Len(t, files, 1)

		content, err := os.ReadFile(files[0])
		require.NoError(t, err)
		assert.Contains(t, string(content), "Ulysses")
		assert.Contains(t, string(content), "add_book")
	})

	t.Run("does not audit rejected requests", func(t *testing.T) {
		_, service, cleanup := setupBooksTestDB(t)
		defer cleanup()

		auditDir := t.TempDir()
		router := newBooksRouter(service, audit.NewAuditor(auditDir))
		w := doRequest(router, "POST", "/api/books", `{"title": " "}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		files, err := filepath.Glob(filepath.Join(auditDir, "*.json"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestBooksController_SearchBooks(t *testing.T) {
	_, service, cleanup := setupBooksTestDB(t)
	defer cleanup()

	router := newBooksRouter(service, nil)

	tests := []struct {
		name   string
		path   string
		titles []string
	}{
		{"substring match", "/api/books/search?q=The", []string{
			"The Great Gatsby", "The Catcher in the Rye", "The Lord of the Rings", "The Hobbit",
			"Harry Potter and the Sorcerer's Stone", "The Da Vinci Code",
		}},
		{"case insensitive", "/api/books/search?q=hobbit", []string{"The Hobbit"}},
		{"no match", "/api/books/search?q=Zzz", []string{}},
		{"empty query", "/api/books/search?q=", []string{}},
		{"missing query", "/api/books/search", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "GET", tt.path, "")
			require.Equal(t, http.StatusOK, w.Code)

			var response listResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			require.NotNil(t, response.Books)

			titles := make([]string, 0, len(response.Books))
			for i, book := range response.Books {
				assert.Equal(t, i+1, book.Index)
				titles = append(titles, book.Title)
			}
			assert.Equal(t, tt.titles, titles)
			assert.Equal(t, len(tt.titles), response.Count)
		})
	}

	t.Run("echoes query and seq", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/books/search?q=1984&seq=42", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "1984", response.Query)
		assert.Equal(t, uint64(42), response.Seq)
		assert.Equal(t, 1, response.Count)
	})

	t.Run("rejects invalid seq", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/books/search?q=1984&seq=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid seq")
	})
}

func TestBooksController_ExportBooks(t *testing.T) {
	_, service, cleanup := setupBooksTestDB(t)
	defer cleanup()

	fixed := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	controller := NewBooksController(service, nil)
	controller.now = func() time.Time { return fixed }

	router := gin.New()
	router.GET("/api/books/export", controller.ExportBooks)

	t.Run("markdown by default", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/books/export", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="books-2024-06-15.md"`, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Body.String(), "1. To Kill a Mockingbird\n")
		assert.Contains(t, w.Body.String(), "10. The Da Vinci Code\n")
	})

	t.Run("yaml", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/books/export?format=yaml", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="books-2024-06-15.yaml"`, w.Header().Get("Content-Disposition"))

		var document struct {
			Count int                   `yaml:"count"`
			Books []entities.RankedBook `yaml:"books"`
		}
		require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &document))
		assert.Equal(t, 10, document.Count)
		assert.Equal(t, "1984", document.Books[1].Title)
	})

	t.Run("unknown format", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/books/export?format=pdf", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type failingBookService struct {
	err error
}

func (f *failingBookService) ListAll(ctx context.Context) ([]entities.RankedBook, error) {
	return nil, f.err
}

func (f *failingBookService) Add(ctx context.Context, title string) (*entities.Book, error) {
	return nil, f.err
}

func (f *failingBookService) Search(ctx context.Context, query string) ([]entities.RankedBook, error) {
	return nil, f.err
}
