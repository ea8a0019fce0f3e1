package entities

// Book is a single entry of the book list. Rows are only ever inserted.
type Book struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"type:text" json:"title"`
}

func (Book) TableName() string {
	return "books"
}

// RankedBook is a read-time view of a Book with its 1-based position in a
// result set. The index is never stored.
type RankedBook struct {
	Index int    `json:"index" yaml:"index"`
	ID    uint   `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Rank numbers books in the order given, starting at 1.
func Rank(books []Book) []RankedBook {
	ranked := make([]RankedBook, 0, len(books))
	for i, book := range books {
		ranked = append(ranked, RankedBook{
			Index: i + 1,
			ID:    book.ID,
			Title: book.Title,
		})
	}
	return ranked
}
