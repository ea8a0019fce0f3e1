package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/exporters"
)

// AddBookRequest is the body of POST /api/books.
type AddBookRequest struct {
	Title string `json:"title" form:"title"`
}

type BooksController struct {
	books   BookService
	auditor *audit.Auditor
	now     func() time.Time
}

func NewBooksController(books BookService, auditor *audit.Auditor) *BooksController {
	return &BooksController{
		books:   books,
		auditor: auditor,
		now:     time.Now,
	}
}

// GetAllBooks returns the whole list with 1-based ranks.
// GET /api/books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.books.ListAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// AddBook stores a new title.
// POST /api/books
func (controller *BooksController) AddBook(c *gin.Context) {
	var request AddBookRequest
	if err := c.ShouldBind(&request); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := controller.books.Add(c.Request.Context(), request.Title)
	if err != nil {
		respondServiceError(c, err, "add book")
		return
	}

	controller.auditor.RecordAdd(request, book)
	respondCreated(c, book)
}

// SearchBooks returns books whose title contains q. The optional seq
// parameter is echoed back so clients can drop out-of-order responses.
// GET /api/books/search?q=...&seq=...
func (controller *BooksController) SearchBooks(c *gin.Context) {
	query := c.Query("q")

	var seq uint64
	if raw := c.Query("seq"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "invalid seq")
			return
		}
		seq = parsed
	}

	books, err := controller.books.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err, "search books")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"books": books,
		"count": len(books),
		"query": query,
		"seq":   seq,
	})
}

// ExportBooks downloads the list as Markdown or YAML.
// GET /api/books/export?format=markdown|yaml
func (controller *BooksController) ExportBooks(c *gin.Context) {
	format, err := exporters.ParseFormat(c.Query("format"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	books, err := controller.books.ListAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "export books")
		return
	}

	generatedAt := controller.now()
	var buf bytes.Buffer
	if err := exporters.Export(&buf, format, books, generatedAt); err != nil {
		respondInternalError(c, err, "render export")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", format.FileName(generatedAt)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
