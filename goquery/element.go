// Package goquery provides the CSS-selector-based implementations of
// content extraction: framework detection, container location, candidate
// classification, unit extraction, and snapshot fingerprinting.
package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/readaloudhq/readaloud"
	"golang.org/x/net/html"
)

// headingSelector matches heading-level elements.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// runeLen counts runes. All text-length thresholds are rune counts so
// non-ASCII pages hit the same cutoffs as ASCII ones.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// textLength returns the collapsed-whitespace text length of the selection.
func textLength(s *goquery.Selection) int {
	return runeLen(readaloud.CollapseWhitespace(s.Text()))
}

// directTextLength returns the length of text carried by the element's own
// text nodes, excluding text aggregated from descendants.
func directTextLength(s *goquery.Selection) int {
	total := 0
	for _, node := range s.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				total += runeLen(strings.TrimSpace(c.Data))
			}
		}
	}
	return total
}

// isHeading reports whether the selection is a heading-level element.
func isHeading(s *goquery.Selection) bool {
	return s.Is(headingSelector)
}

// elementRef builds a weak back-reference to the selection's first node.
// Returns nil for empty selections.
func elementRef(s *goquery.Selection) *readaloud.ElementRef {
	if len(s.Nodes) == 0 {
		return nil
	}
	node := s.Nodes[0]
	return &readaloud.ElementRef{
		Tag:  node.Data,
		Path: nodePath(node),
	}
}

// nodePath returns a CSS-style location path from the body down to the node,
// usable for scroll/highlight targeting.
func nodePath(node *html.Node) string {
	var parts []string
	for n := node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		idx := 1
		for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
			if sib.Type == html.ElementNode && sib.Data == n.Data {
				idx++
			}
		}
		part := n.Data
		if n.Data != "body" && n.Data != "html" {
			part = fmt.Sprintf("%s:nth-of-type(%d)", n.Data, idx)
		}
		parts = append([]string{part}, parts...)
		if n.Data == "body" {
			break
		}
	}
	return strings.Join(parts, " > ")
}

// parseDocument parses HTML into a goquery document.
func parseDocument(rawHTML string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
}
