package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/readaloudhq/readaloud"
	"github.com/readaloudhq/readaloud/bloom"
	"github.com/readaloudhq/readaloud/fs"
	"github.com/readaloudhq/readaloud/goquery"
	"github.com/readaloudhq/readaloud/htmltomarkdown"
	rahttp "github.com/readaloudhq/readaloud/http"
	"github.com/readaloudhq/readaloud/readability"
	"github.com/readaloudhq/readaloud/rod"
	raslog "github.com/readaloudhq/readaloud/slog"
	"github.com/readaloudhq/readaloud/sqlite"
	"github.com/readaloudhq/readaloud/trafilatura"
	"github.com/readaloudhq/readaloud/watch"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	VisitService readaloud.VisitService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readaloud"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readaloud --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set READALOUD_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.VisitService = sqlite.NewVisitService(m.DB)
	deps.DB = m.DB
	deps.Visits = m.VisitService

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire the extraction engine
	detector := goquery.NewDetector()
	registry := goquery.NewDefaultRegistry()
	deps.Detector = detector
	deps.Locator = goquery.NewLocator(readaloud.DefaultThresholds())
	deps.Fingerprinter = goquery.NewFingerprinter(readaloud.DefaultThresholds())
	deps.Formatter = htmltomarkdown.NewFormatter()
	deps.Extractor = goquery.NewExtractor(
		goquery.WithRegistry(raslog.NewLoggingRegistry(registry, detector, logger)),
	)
	if fallback, ok := fallbackFlag(cmd, cli); ok && fallback {
		deps.Extractor = readaloud.FallbackChain{
			deps.Extractor,
			readability.NewExtractor(),
			trafilatura.NewExtractor(),
		}
	}
	if cli.Verbose {
		deps.Extractor = raslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	// Wire the page source for commands that observe a live page
	if pageURL, browser, ok := sourceFlags(cmd, cli); ok {
		var source readaloud.PageSource
		if browser {
			src, err := rod.NewSource(pageURL)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			source = src
		} else {
			source = rahttp.NewSource(pageURL)
		}
		if cli.Verbose {
			source = rod.NewLoggingSource(source, logger)
		}
		defer source.Close()
		deps.Source = source
	}

	if cmd == "export" {
		deps.Transcripts = fs.NewWriter(cli.Export.Dir)
	}

	if cmd == "watch" {
		deps.Watcher = &watch.Watcher{
			Source:        deps.Source,
			Extractor:     deps.Extractor,
			Fingerprinter: deps.Fingerprinter,
			Locator:       deps.Locator,
			Detector:      deps.Detector,
			Visits:        deps.Visits,
			Revisits:      bloom.NewTracker(10000, 0.01),
		}
	}

	return kongCtx.Run(deps)
}

// sourceFlags returns the page URL and browser flag for commands that need
// a page source.
func sourceFlags(cmd string, cli *CLI) (pageURL string, browser bool, ok bool) {
	switch cmd {
	case "extract":
		return cli.Extract.URL, cli.Extract.Browser, true
	case "detect":
		return cli.Detect.URL, cli.Detect.Browser, true
	case "watch":
		return cli.Watch.URL, cli.Watch.Browser, true
	case "export":
		return cli.Export.URL, cli.Export.Browser, true
	}
	return "", false, false
}

// fallbackFlag returns the fallback-chain flag for commands that extract.
func fallbackFlag(cmd string, cli *CLI) (fallback bool, ok bool) {
	switch cmd {
	case "extract":
		return cli.Extract.Fallback, true
	case "export":
		return cli.Export.Fallback, true
	}
	return false, false
}

func defaultDBPath() string {
	if path := os.Getenv("READALOUD_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "readaloud.db"
	}
	dir := filepath.Join(home, ".readaloud")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "readaloud.db")
}
