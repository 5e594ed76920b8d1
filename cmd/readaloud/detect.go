package main

import (
	"fmt"

	"github.com/readaloudhq/readaloud"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	page, err := deps.Source.State(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
		return err
	}

	framework := deps.Detector.Detect(page.HTML)
	name := string(framework)
	if framework == readaloud.FrameworkUnknown {
		name = "(unknown)"
	}

	info := deps.Locator.Locate(page.HTML)
	container := info.Tag
	if info.ID != "" {
		container += "#" + info.ID
	} else if info.Class != "" {
		container += "." + info.Class
	}

	fmt.Fprintf(deps.Stdout, "framework: %s\n", name)
	fmt.Fprintf(deps.Stdout, "container: %s (%d chars, %d paragraphs, %d headings)\n",
		container, info.TextLength, info.Paragraphs, info.Headings)

	return nil
}
