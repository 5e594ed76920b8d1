package main

import (
	"fmt"

	"github.com/readaloudhq/readaloud"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	page, err := deps.Source.State(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
		return err
	}

	units := deps.Extractor.Extract(page.HTML)

	if readaloud.IsFallback(units) {
		fmt.Fprintln(deps.Stderr, "No readable content found.")
	}
	fmt.Fprintf(deps.Stdout, "%d units from %s\n\n", len(units), page.URL)
	fmt.Fprintln(deps.Stdout, readaloud.FormatUnits(units))

	return nil
}
