package main

import (
	"context"
	"io"
	"time"

	"github.com/readaloudhq/readaloud"
	"github.com/readaloudhq/readaloud/sqlite"
	"github.com/readaloudhq/readaloud/watch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	DB            *sqlite.DB
	Visits        readaloud.VisitService
	Source        readaloud.PageSource
	Extractor     readaloud.Extractor
	Locator       readaloud.ContainerLocator
	Detector      readaloud.FrameworkDetector
	Fingerprinter readaloud.Fingerprinter
	Formatter     readaloud.Formatter
	Transcripts   readaloud.TranscriptWriter
	Watcher       *watch.Watcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log framework detection and extraction to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract readable content units from a page"`
	Detect  DetectCmd  `cmd:"" help:"Detect the documentation framework and main container of a page"`
	Watch   WatchCmd   `cmd:"" help:"Watch a page for content changes"`
	History HistoryCmd `cmd:"" help:"List recorded visits or change events"`
	Export  ExportCmd  `cmd:"" help:"Export a page transcript to disk"`
	Prune   PruneCmd   `cmd:"" help:"Remove history older than a cutoff"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Browser  bool   `short:"b" help:"Render the page in a headless browser"`
	Fallback bool   `help:"Consult readability and trafilatura when selector extraction finds nothing"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	URL     string `arg:"" help:"Page URL"`
	Browser bool   `short:"b" help:"Render the page in a headless browser"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	URL      string        `arg:"" help:"Page URL"`
	Browser  bool          `short:"b" help:"Render the page in a headless browser"`
	Duration time.Duration `short:"d" help:"Stop after this duration (default: until interrupted)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL         string `help:"Filter by page URL"`
	Changes     bool   `help:"List change events instead of visits"`
	Significant bool   `help:"Only significant changes (implies --changes)"`
	Limit       int    `default:"20" help:"Maximum rows to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Dir      string `short:"o" default:"." help:"Output directory"`
	Markdown bool   `short:"m" help:"Export the page as markdown instead of plain unit text"`
	Browser  bool   `short:"b" help:"Render the page in a headless browser"`
	Fallback bool   `help:"Consult readability and trafilatura when selector extraction finds nothing"`
}

// PruneCmd is the "prune" subcommand.
type PruneCmd struct {
	OlderThan time.Duration `arg:"" help:"Remove visits and changes older than this duration (e.g. 720h)"`
}
