package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/readaloudhq/readaloud"
)

// Ensure LoggingSource implements readaloud.PageSource.
var _ readaloud.PageSource = (*LoggingSource)(nil)

// LoggingSource wraps a PageSource with debug logging.
type LoggingSource struct {
	next   readaloud.PageSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next readaloud.PageSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// State logs the observed page and delegates to the wrapped source.
func (s *LoggingSource) State(ctx context.Context) (state *readaloud.PageState, err error) {
	defer func(begin time.Time) {
		url := ""
		bytes := 0
		if state != nil {
			url = state.URL
			bytes = len(state.HTML)
		}
		s.logger.Info("page state",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.State(ctx)
}

// Close delegates to the wrapped source.
func (s *LoggingSource) Close() error {
	return s.next.Close()
}
