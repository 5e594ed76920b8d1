package mock

import (
	"context"

	"github.com/readaloudhq/readaloud"
)

var _ readaloud.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of readaloud.Formatter.
type Formatter struct {
	FormatFn func(html string) (string, error)
}

func (f *Formatter) Format(html string) (string, error) {
	return f.FormatFn(html)
}

var _ readaloud.TranscriptWriter = (*TranscriptWriter)(nil)

// TranscriptWriter is a mock implementation of readaloud.TranscriptWriter.
type TranscriptWriter struct {
	WriteTranscriptFn func(ctx context.Context, t *readaloud.Transcript) error
}

func (w *TranscriptWriter) WriteTranscript(ctx context.Context, t *readaloud.Transcript) error {
	return w.WriteTranscriptFn(ctx, t)
}
