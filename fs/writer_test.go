package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/readaloudhq/readaloud"
	"github.com/readaloudhq/readaloud/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "simple path",
			url:  "https://example.com/docs/api/users",
			want: "docs/api/users.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/docs/",
			want: "docs/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "index.md",
		},
		{
			name: "no trailing slash",
			url:  "https://example.com/docs",
			want: "docs.md",
		},
		{
			name: "ignores query string",
			url:  "https://example.com/docs/api?version=2",
			want: "docs/api.md",
		},
		{
			name: "ignores fragment",
			url:  "https://example.com/docs/api#section",
			want: "docs/api.md",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "index.md",
		},
		{
			name: "deep nesting",
			url:  "https://example.com/a/b/c/d/e/f",
			want: "a/b/c/d/e/f.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func testTranscript() *readaloud.Transcript {
	return &readaloud.Transcript{
		URL:   "https://example.com/docs/install",
		Title: "Install Guide",
		Units: []readaloud.ContentUnit{
			{Index: 0, Text: "Install Guide", IsHeading: true},
			{Index: 1, Text: "Download the binary and place it on your path."},
		},
		ExportedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatTranscript(t *testing.T) {
	t.Parallel()

	t.Run("renders frontmatter and unit list", func(t *testing.T) {
		t.Parallel()

		out := fs.FormatTranscript(testTranscript())

		assert.True(t, strings.HasPrefix(out, "---\n"))
		assert.Contains(t, out, "source: https://example.com/docs/install")
		assert.Contains(t, out, "title: Install Guide")
		assert.Contains(t, out, "exported: 2026-08-30")
		assert.Contains(t, out, "## Install Guide")
		assert.Contains(t, out, "1. Download the binary and place it on your path.")
	})

	t.Run("prefers pre-rendered markdown body", func(t *testing.T) {
		t.Parallel()

		tr := testTranscript()
		tr.Markdown = "# Install Guide\n\nDownload the binary."

		out := fs.FormatTranscript(tr)
		assert.Contains(t, out, "# Install Guide\n\nDownload the binary.")
		assert.NotContains(t, out, "1. Download the binary and place it on your path.")
	})
}

func TestWriter_WriteTranscript(t *testing.T) {
	t.Parallel()

	t.Run("writes a markdown file under the URL path", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		w := fs.NewWriter(base)

		require.NoError(t, w.WriteTranscript(context.Background(), testTranscript()))

		data, err := os.ReadFile(filepath.Join(base, "docs", "install.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Install Guide")
	})

	t.Run("rejects an invalid transcript", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		err := w.WriteTranscript(context.Background(), &readaloud.Transcript{URL: ""})

		require.Error(t, err)
		assert.Equal(t, readaloud.EINVALID, readaloud.ErrorCode(err))
	})
}
