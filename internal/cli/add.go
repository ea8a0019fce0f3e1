package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

type AddCommand struct {
	DatabasePath string
	Title        string
	Out          io.Writer
}

func NewAddCommand() *AddCommand {
	return &AddCommand{Out: os.Stdout}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", defaultDatabasePath(), "Path to the database file")
	fs.StringVarP(&cmd.Title, "title", "t", "", "Title of the book to add (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add --title TITLE [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Append a book to the list.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add --title \"Dune\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s add -t \"Emma\" --db ./my-books.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	// A positional title is accepted as well: booklist add Dune
	if cmd.Title == "" && fs.NArg() > 0 {
		cmd.Title = fs.Arg(0)
	}

	return nil
}

// Run validates through the book service, so blank titles fail with the
// same error the HTTP API reports.
func (cmd *AddCommand) Run() error {
	service, closeStore, err := openBookService(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeStore()

	book, err := service.Add(context.Background(), cmd.Title)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "Added book #%d: %s\n", book.ID, book.Title)
	return nil
}
