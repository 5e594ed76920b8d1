// Package trafilatura provides a last-resort readaloud.Extractor built on
// go-trafilatura. It sits behind readability in the fallback chain:
// trafilatura's own fallback heuristics recover content from pages where
// both selector-based extraction and readability fail.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
	"github.com/readaloudhq/readaloud"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readaloud.Extractor at compile time.
var _ readaloud.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to segment main content into units.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements readaloud.Extractor.
func (e *Extractor) Extract(rawHTML string) []readaloud.ContentUnit {
	if rawHTML == "" {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result.ContentNode == nil {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}

	units := segment(contentHTML)
	if len(units) == 0 {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}
	return units
}

// segment splits extracted content HTML into ordered content units.
func segment(contentHTML string) []readaloud.ContentUnit {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil
	}

	var units []readaloud.ContentUnit
	doc.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre").Each(func(_ int, s *goquery.Selection) {
		text := readaloud.CollapseWhitespace(s.Text())
		name := goquery.NodeName(s)
		heading := len(name) == 2 && name[0] == 'h'
		if text == "" || (len([]rune(text)) <= readaloud.MinUnitTextLength && !heading) {
			return
		}
		units = append(units, readaloud.ContentUnit{
			Index:     len(units),
			Text:      text,
			IsHeading: heading,
		})
	})
	return units
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
