// Package readability provides a fallback readaloud.Extractor built on
// go-readability. It is used when selector-based extraction finds no real
// content: readability's scoring handles unusual page structures at the
// cost of element back-references.
package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/readaloudhq/readaloud"
)

// Ensure Extractor implements readaloud.Extractor at compile time.
var _ readaloud.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to segment main content into units.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements readaloud.Extractor. Readability prunes boilerplate
// itself, so the cleaned article is segmented without further
// classification. Units carry no element back-reference since the cleaned
// article's nodes no longer exist in the live page.
func (e *Extractor) Extract(rawHTML string) []readaloud.ContentUnit {
	if rawHTML == "" {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}

	units := segment(article.Content)
	if len(units) == 0 {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}
	return units
}

// segment splits cleaned article HTML into ordered content units.
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
