package main

import (
	"fmt"
	"time"

	"github.com/readaloudhq/readaloud"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	var url *string
	if c.URL != "" {
		url = &c.URL
	}

	if c.Changes || c.Significant {
		changes, err := deps.Visits.FindChanges(deps.Ctx, readaloud.ChangeFilter{
			URL:             url,
			SignificantOnly: c.Significant,
			Limit:           c.Limit,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
			return err
		}

		if len(changes) == 0 {
			fmt.Fprintln(deps.Stdout, "No changes recorded.")
			return nil
		}

		for _, ch := range changes {
			flags := ""
			if ch.Significant {
				flags += " significant"
			}
			if ch.Revisit {
				flags += " revisit"
			}
			fmt.Fprintf(deps.Stdout, "%s  %-10s  %+d units%s  %s\n",
				ch.DetectedAt.Format(time.RFC3339), ch.Kind, ch.UnitDelta, flags, ch.URL)
		}
		return nil
	}

	visits, err := deps.Visits.FindVisits(deps.Ctx, readaloud.VisitFilter{
		URL:   url,
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
		return err
	}

	if len(visits) == 0 {
		fmt.Fprintln(deps.Stdout, "No visits recorded. Use 'readaloud watch' to record some.")
		return nil
	}

	for _, v := range visits {
		framework := string(v.Framework)
		if v.Framework == readaloud.FrameworkUnknown {
			framework = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %3d units  %s\n",
			v.VisitedAt.Format(time.RFC3339), framework, v.UnitCount, v.URL)
	}

	return nil
}
