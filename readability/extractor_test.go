package readability_test

import (
	"testing"

	"github.com/readaloudhq/readaloud"
	"github.com/readaloudhq/readaloud/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_EmptyInputFallsBack(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	units := ext.Extract("")

	require.Len(t, units, 1)
	assert.True(t, readaloud.IsFallback(units))
}

func TestExtractor_SegmentsArticleContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Main Heading</h1>
<p>First paragraph with a reasonable amount of introductory text in it.</p>
<p>Second paragraph carrying the body of the article onward with detail.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	units := ext.Extract(html)

	require.GreaterOrEqual(t, len(units), 3)

	var headings, paragraphs int
	for i, u := range units {
		assert.Equal(t, i, u.Index)
		if u.IsHeading {
			headings++
		} else {
			paragraphs++
		}
	}
	assert.GreaterOrEqual(t, headings, 1)
	assert.GreaterOrEqual(t, paragraphs, 2)
}

func TestExtractor_ExcludesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	units := ext.Extract(html)

	for _, u := range units {
		assert.NotContains(t, u.Text, "Home Nav Link")
		assert.NotContains(t, u.Text, "About Nav Link")
	}
}

func TestExtractor_ExcludesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	units := ext.Extract(html)

	for _, u := range units {
		assert.NotContains(t, u.Text, "Footer copyright text")
	}
}

func TestExtractor_KeepsMainArticleContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<article><p>This is the important article paragraph text that must be kept.</p></article>
<footer><p>Footer</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	units := ext.Extract(html)

	var found bool
	for _, u := range units {
		if u.Text == "This is the important article paragraph text that must be kept." {
			found = true
		}
	}
	assert.True(t, found, "expected the article paragraph among units: %v", units)
}

func TestExtractor_SegmentsLists(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Prerequisites for the installation are listed below:</p>
<ul>
<li>A recent operating system release</li>
<li>Administrator privileges on the machine</li>
</ul>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	units := ext.Extract(html)

	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.Text
	}
	assert.Contains(t, texts, "A recent operating system release")
	assert.Contains(t, texts, "Administrator privileges on the machine")
}

func TestExtractor_UnitsCarryNoElementReference(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>Readability rebuilds the article so original nodes are gone.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	units := ext.Extract(html)

	require.NotEmpty(t, units)
	for _, u := range units {
		assert.Nil(t, u.Element)
	}
}
