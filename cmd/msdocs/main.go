package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/bloom"
	"github.com/fwojciec/msdocs/htmltomarkdown"
	"github.com/fwojciec/msdocs/ingest"
	"github.com/fwojciec/msdocs/levenshtein"
	"github.com/fwojciec/msdocs/markdown"
	"github.com/fwojciec/msdocs/memory"
	msdocsslog "github.com/fwojciec/msdocs/slog"
	"github.com/fwojciec/msdocs/sqlite"
	"github.com/fwojciec/msdocs/zstd"
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
	// SQLite database holding the documentation artifact.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("msdocs"),
		kong.Description("Offline Microsoft Win32/WDK API documentation database."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'msdocs --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	codec, err := zstd.NewCodec()
	if err != nil {
		return fmt.Errorf("failed to create codec: %w", err)
	}

	// Command name without positional placeholders, e.g. "show <symbol>".
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	switch cmd {
	case "build":
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		svc := sqlite.NewEntryService(m.DB, codec)
		deps.Entries = svc
		deps.BuildInfo = sqlite.NewBuildInfoService(m.DB)

		var pageParser msdocs.Parser = markdown.NewParser(htmltomarkdown.NewConverter())
		if cli.Verbose {
			pageParser = msdocsslog.NewLoggingParser(pageParser, deps.Logger)
		}
		deps.Builder = &ingest.Builder{
			Parser:      pageParser,
			Entries:     svc,
			Concurrency: cli.Build.Concurrency,
		}

	default: // show, list, info: read-only access to an existing artifact
		m.DB = sqlite.NewReadOnlyDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: run 'msdocs build' first, or point --db / MSDOCS_DB at the database file\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		var store msdocs.EntryStore = sqlite.NewEntryService(m.DB, codec)
		deps.BuildInfo = sqlite.NewBuildInfoService(m.DB)

		if cmd == "show" {
			if cli.Show.Cache {
				store, err = memory.NewEntryStore(ctx, store)
			} else {
				store, err = bloom.NewEntryStore(ctx, store)
			}
			if err != nil {
				return fmt.Errorf("failed to load database: %w", err)
			}
		}
		if cli.Verbose {
			store = msdocsslog.NewLoggingEntryStore(store, deps.Logger)
		}
		deps.Entries = store

		var resolver msdocs.Resolver = levenshtein.NewResolver(store)
		if cli.Verbose {
			resolver = msdocsslog.NewLoggingResolver(resolver, deps.Logger)
		}
		deps.Resolver = resolver
	}

	return kongCtx.Run(deps)
}
