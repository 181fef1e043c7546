// Command cetd extracts main content from HTML pages using text density
// analysis.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cetd"
	cetdhttp "github.com/fwojciec/cetd/http"
	"github.com/fwojciec/cetd/htmltomarkdown"
	cetdslog "github.com/fwojciec/cetd/slog"
	"github.com/fwojciec/cetd/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the document store.
	DB *sqlite.DB

	// Document service for end-to-end testing.
	DocumentService cetd.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cetd"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cetd --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	deps.Logger = logger
	deps.Sitemaps = cetdslog.NewLoggingSitemapService(cetdhttp.NewSitemapService(nil), logger)
	deps.Fetcher = cetdslog.NewLoggingFetcher(cetdhttp.NewFetcher(), logger)
	deps.Converter = htmltomarkdown.NewConverter()

	// The document store is only opened for commands that touch it.
	needsDB := cmd == "docs" || cmd == "delete" ||
		(cmd == "extract" && cli.Extract.Save) ||
		(cmd == "batch" && cli.Batch.Store)
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CETD_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.DocumentService = sqlite.NewDocumentService(m.DB)
		deps.Documents = m.DocumentService
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CETD_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cetd.db"
	}
	dir := filepath.Join(home, ".cetd")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cetd.db")
}
