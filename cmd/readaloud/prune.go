package main

import (
	"fmt"
	"time"

	"github.com/readaloudhq/readaloud"
)

// Run executes the prune command.
func (c *PruneCmd) Run(deps *Dependencies) error {
	cutoff := time.Now().Add(-c.OlderThan)

	removed, err := deps.Visits.PruneBefore(deps.Ctx, cutoff)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d rows older than %s\n", removed, cutoff.Format(time.RFC3339))
	return nil
}
