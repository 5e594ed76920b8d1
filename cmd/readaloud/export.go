package main

import (
	"fmt"
	"time"

	"github.com/readaloudhq/readaloud"
	"github.com/readaloudhq/readaloud/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	page, err := deps.Source.State(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
		return err
	}

	units := deps.Extractor.Extract(page.HTML)

	title := ""
	if snapshot, err := deps.Fingerprinter.Snapshot(page.URL, page.HTML); err == nil {
		title = snapshot.Context.Title
	}

	transcript := &readaloud.Transcript{
		URL:        page.URL,
		Title:      title,
		Units:      units,
		ExportedAt: time.Now(),
	}

	if c.Markdown {
		markdown, err := deps.Formatter.Format(page.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
			return err
		}
		transcript.Markdown = markdown
	}

	if err := deps.Transcripts.WriteTranscript(deps.Ctx, transcript); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
		return err
	}

	path, err := fs.URLToPath(page.URL)
	if err != nil {
		path = page.URL
	}
	fmt.Fprintf(deps.Stdout, "Exported %d units to %s\n", len(units), path)

	return nil
}
