package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/readaloudhq/readaloud"
	"github.com/readaloudhq/readaloud/watch"
	"golang.org/x/sync/errgroup"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	var cancel context.CancelFunc
	if c.Duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.Duration)
	} else {
		ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	}
	defer cancel()

	events := make(chan watch.PendingChange, 16)
	deps.Watcher.OnChangeDetected(func(pc watch.PendingChange) {
		select {
		case events <- pc:
		default:
			// Drop events the printer cannot keep up with.
		}
	})

	fmt.Fprintf(deps.Stdout, "Watching %s\n", c.URL)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := deps.Watcher.Run(gctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readaloud.ErrorMessage(err))
		}
		return err
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case pc := <-events:
				fmt.Fprintf(deps.Stdout, "change (%s) %s %q %+d units\n",
					pc.Kind, pc.URL, pc.Title, pc.UnitDelta)
			}
		}
	})

	return g.Wait()
}
