package htmltomarkdown_test

import (
	"testing"

	"github.com/readaloudhq/readaloud"
	"github.com/readaloudhq/readaloud/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Formatter implements readaloud.Formatter at compile time.
var _ readaloud.Formatter = (*htmltomarkdown.Formatter)(nil)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("formats basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello, world!</p>`

		f := htmltomarkdown.NewFormatter()
		md, err := f.Format(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("formats headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`

		f := htmltomarkdown.NewFormatter()
		md, err := f.Format(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("formats links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		f := htmltomarkdown.NewFormatter()
		md, err := f.Format(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("formats unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li><li>Third</li></ul>`

		f := htmltomarkdown.NewFormatter()
		md, err := f.Format(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "- Third")
	})

	t.Run("formats tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Name</th><th>Value</th></tr><tr><td>Foo</td><td>123</td></tr></table>`

		f := htmltomarkdown.NewFormatter()
		md, err := f.Format(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Name | Value |")
		assert.Contains(t, md, "| Foo | 123 |")
	})

	t.Run("strips the player UI from the transcript", func(t *testing.T) {
		t.Parallel()

		html := `<div class="readaloud-player"><span>3 / 12</span><button>Pause</button></div>` +
			`<h1>Guide</h1><p>Actual page content.</p>`

		f := htmltomarkdown.NewFormatter()
		md, err := f.Format(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Guide")
		assert.Contains(t, md, "Actual page content.")
		assert.NotContains(t, md, "3 / 12")
		assert.NotContains(t, md, "Pause")
	})

	t.Run("strips scripts and navigation chrome", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="/docs">Docs home</a></nav>` +
			`<p>Body text worth keeping.</p>` +
			`<script>console.log("tracking")</script>`

		f := htmltomarkdown.NewFormatter()
		md, err := f.Format(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Body text worth keeping.")
		assert.NotContains(t, md, "Docs home")
		assert.NotContains(t, md, "tracking")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		f := htmltomarkdown.NewFormatter()
		_, err := f.Format("   ")

		require.Error(t, err)
		assert.Equal(t, readaloud.EINVALID, readaloud.ErrorCode(err))
	})
}
