package readaloud

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Formatter converts HTML to Markdown for transcript export.
type Formatter interface {
	// Format transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a located main container).
	Format(html string) (string, error)
}

// Transcript is an exportable record of a page's readable content.
type Transcript struct {
	URL        string        `json:"url"`
	Title      string        `json:"title"`
	Units      []ContentUnit `json:"units"`
	Markdown   string        `json:"markdown,omitempty"`
	ExportedAt time.Time     `json:"exportedAt"`
}

// Validate returns an error if the transcript contains invalid fields.
func (t *Transcript) Validate() error {
	if t.URL == "" {
		return Errorf(EINVALID, "transcript URL required")
	}
	if len(t.Units) == 0 {
		return Errorf(EINVALID, "transcript requires at least one unit")
	}
	return nil
}

// TranscriptWriter persists transcripts.
type TranscriptWriter interface {
	// WriteTranscript persists one transcript.
	WriteTranscript(ctx context.Context, t *Transcript) error
}

// FormatUnits formats a unit list for display. Headings are rendered as
// markdown headings; other units as numbered lines.
func FormatUnits(units []ContentUnit) string {
	if len(units) == 0 {
		return ""
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.IsHeading {
			parts = append(parts, "## "+u.Text)
			continue
		}
		parts = append(parts, fmt.Sprintf("%d. %s", u.Index, u.Text))
	}

	return strings.Join(parts, "\n")
}
