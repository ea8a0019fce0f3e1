package exporters

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/mrlokans/booklist/internal/entities"
)

// Format selects how a book list snapshot is rendered.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ParseFormat accepts the format names used in config, flags and query
// strings. Empty input selects Markdown.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", name)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "md"
}

// ContentType returns the HTTP content type for the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}

// FileName builds a dated download name such as books-2024-06-15.md.
func (f Format) FileName(generatedAt time.Time) string {
	return fmt.Sprintf("books-%s.%s", generatedAt.Format("2006-01-02"), f.Extension())
}

// Export renders books in the given format to w.
func Export(w io.Writer, format Format, books []entities.RankedBook, generatedAt time.Time) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, GenerateMarkdown(books, generatedAt))
		return err
	case FormatYAML:
		data, err := GenerateYAML(books, generatedAt)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile renders books and replaces path with the result in one rename,
// so readers never observe a partially written export.
func WriteFile(path string, format Format, books []entities.RankedBook, generatedAt time.Time) error {
	var buf bytes.Buffer
	if err := Export(&buf, format, books, generatedAt); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
