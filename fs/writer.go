// Package fs provides file-based storage for reading transcripts.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/readaloudhq/readaloud"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}

// FormatTranscript formats a transcript with YAML frontmatter. The body is
// the pre-rendered Markdown when present, otherwise the formatted unit
// list.
func FormatTranscript(t *readaloud.Transcript) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(t.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(t.Title)
	b.WriteString("\nexported: ")
	b.WriteString(t.ExportedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	if t.Markdown != "" {
		b.WriteString(t.Markdown)
	} else {
		b.WriteString(readaloud.FormatUnits(t.Units))
	}
	return b.String()
}

// Ensure Writer implements readaloud.TranscriptWriter at compile time.
var _ readaloud.TranscriptWriter = (*Writer)(nil)

// Writer writes transcripts as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteTranscript writes a transcript to disk as a markdown file.
func (w *Writer) WriteTranscript(ctx context.Context, t *readaloud.Transcript) error {
	if err := t.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(t.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatTranscript(t)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
