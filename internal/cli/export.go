package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/mrlokans/booklist/internal/exporters"
)

type ExportCommand struct {
	DatabasePath string
	Format       string
	OutputPath   string
	Out          io.Writer
	now          func() time.Time
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{Out: os.Stdout, now: time.Now}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", defaultDatabasePath(), "Path to the database file")
	fs.StringVarP(&cmd.Format, "format", "f", string(exporters.FormatMarkdown), "Export format: markdown or yaml")
	fs.StringVarP(&cmd.OutputPath, "out", "o", "", "Write to this file instead of stdout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the book list as Markdown or YAML.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export --format yaml --out ./books.yaml\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	format, err := exporters.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}

	service, closeStore, err := openBookService(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeStore()

	list, err := service.ListAll(context.Background())
	if err != nil {
		return err
	}

	generatedAt := cmd.now()
	if cmd.OutputPath == "" {
		return exporters.Export(cmd.Out, format, list, generatedAt)
	}

	if err := exporters.WriteFile(cmd.OutputPath, format, list, generatedAt); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Exported %d books to %s\n", len(list), cmd.OutputPath)
	return nil
}
