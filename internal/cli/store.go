package cli

import (
	"fmt"
	"io"

	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/entities"
	"github.com/mrlokans/booklist/internal/services"
)

// defaultDatabasePath honours DATABASE_PATH so commands and the server
// share a store without extra flags.
func defaultDatabasePath() string {
	return config.NewConfig().Database.Path
}

// openBookService opens the store through the initializer, seeding it on
// first use. The returned closer releases the handle.
func openBookService(dbPath string) (*services.BookService, func(), error) {
	db, err := database.NewDatabase(dbPath, database.Options{})
	if err != nil {
		return nil, nil, err
	}

	service := services.NewBookService(books.NewRepository(db.DB))
	closer := func() {
		db.Close()
	}
	return service, closer, nil
}

func printRanked(w io.Writer, list []entities.RankedBook) {
	for _, book := range list {
		fmt.Fprintf(w, "%d. %s\n", book.Index, book.Title)
	}
}
