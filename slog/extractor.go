package slog

import (
	"log/slog"
	"time"

	"github.com/readaloudhq/readaloud"
)

// Ensure LoggingExtractor implements readaloud.Extractor.
var _ readaloud.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   readaloud.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next readaloud.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (units []readaloud.ContentUnit) {
	defer func(begin time.Time) {
		e.logger.Info("extraction",
			"units", len(units),
			"fallback", readaloud.IsFallback(units),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
