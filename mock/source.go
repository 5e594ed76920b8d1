package mock

import (
	"context"
	"time"

	"github.com/readaloudhq/readaloud"
)

var _ readaloud.PageSource = (*Source)(nil)

// Source is a mock implementation of readaloud.PageSource.
type Source struct {
	StateFn func(ctx context.Context) (*readaloud.PageState, error)
	CloseFn func() error
}

func (s *Source) State(ctx context.Context) (*readaloud.PageState, error) {
	return s.StateFn(ctx)
}

func (s *Source) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ readaloud.ActivitySource = (*Activity)(nil)

// Activity is a mock implementation of readaloud.ActivitySource.
type Activity struct {
	LastInputFn func() time.Time
}

func (a *Activity) LastInput() time.Time {
	return a.LastInputFn()
}
