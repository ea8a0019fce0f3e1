package exporters

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrlokans/booklist/internal/entities"
)

// GenerateMarkdown renders the list as a front-matter header followed by a
// numbered list that keeps each book's rank.
func GenerateMarkdown(books []entities.RankedBook, generatedAt time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: book_list\n")
	fmt.Fprintf(&builder, "created_at: %s\n", generatedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "count: %d\n", len(books))
	fmt.Fprintf(&builder, "tags: books\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# Book List\n\n")

	if len(books) == 0 {
		fmt.Fprintf(&builder, "_No books yet._\n")
		return builder.String()
	}

	for _, book := range books {
		title := strings.ReplaceAll(book.Title, "\n", " ")
		fmt.Fprintf(&builder, "%d. %s\n", book.Index, title)
	}

	return builder.String()
}
