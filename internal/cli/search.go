package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/mrlokans/booklist/internal/services"
)

type SearchCommand struct {
	DatabasePath string
	Query        string
	Interactive  bool
	In           io.Reader
	Out          io.Writer
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{In: os.Stdin, Out: os.Stdout}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", defaultDatabasePath(), "Path to the database file")
	fs.StringVarP(&cmd.Query, "query", "q", "", "Substring to look for in titles")
	fs.BoolVarP(&cmd.Interactive, "interactive", "i", false, "Read queries from stdin, one per line")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search --query TEXT [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print books whose title contains TEXT. An empty query prints nothing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -q hobbit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search --interactive\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Query == "" && fs.NArg() > 0 {
		cmd.Query = fs.Arg(0)
	}

	return nil
}

func (cmd *SearchCommand) Run() error {
	service, closeStore, err := openBookService(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeStore()

	session := services.NewSearchSession(service)
	ctx := context.Background()

	if !cmd.Interactive {
		return cmd.search(ctx, session, cmd.Query)
	}

	scanner := bufio.NewScanner(cmd.In)
	for scanner.Scan() {
		if err := cmd.search(ctx, session, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (cmd *SearchCommand) search(ctx context.Context, session *services.SearchSession, query string) error {
	result, err := session.Search(ctx, query)
	if err != nil {
		return err
	}
	if !result.Fresh {
		return nil
	}

	if cmd.Interactive {
		fmt.Fprintf(cmd.Out, "> %s (%d)\n", query, len(result.Books))
	}
	printRanked(cmd.Out, result.Books)
	return nil
}
