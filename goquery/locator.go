package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/readaloudhq/readaloud"
)

// Ensure Locator implements readaloud.ContainerLocator at compile time.
var _ readaloud.ContainerLocator = (*Locator)(nil)

// frameworkContainerSelectors are content containers of known documentation
// frameworks, in priority order. First qualifying match wins.
var frameworkContainerSelectors = []string{
	".theme-doc-markdown",         // Docusaurus
	"article .markdown",           // Docusaurus variants
	".md-content__inner",          // MkDocs Material
	".md-content",                 // MkDocs
	"div[itemprop='articleBody']", // Sphinx / ReadTheDocs
	".rst-content .document",      // Sphinx RTD theme
	".VPDoc .vp-doc",              // VitePress
	".theme-default-content",      // VuePress
	".nextra-content",             // Nextra
}

// genericContainerSelectors are semantic and conventional main-content
// containers, in priority order. Candidates qualify via
// isValidContentContainer.
var genericContainerSelectors = []string{
	"main",
	"[role='main']",
	"article",
	".content",
	".main-content",
	".post-content",
	".article-content",
	".docs-content",
	".documentation",
	"#content",
	".markdown-body",
	"#app main", // SPA router outlets
	"#root main",
}

// Locator finds the single best main-content container for a page using a
// prioritized cascade: known-framework selectors, then generic semantic
// selectors, then a density-scored scan. It never fails; the document body
// is the absolute fallback.
type Locator struct {
	thresholds readaloud.Thresholds
}

// NewLocator creates a Locator with the given thresholds.
func NewLocator(thresholds readaloud.Thresholds) *Locator {
	return &Locator{thresholds: thresholds}
}

// Locate implements readaloud.ContainerLocator.
func (l *Locator) Locate(rawHTML string) readaloud.ContainerInfo {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return readaloud.ContainerInfo{Tag: "body"}
	}
	return containerInfo(l.locate(doc))
}

// locate returns the best container selection within the parsed document.
func (l *Locator) locate(doc *goquery.Document) *goquery.Selection {
	// Tier 1: known-framework containers.
	for _, selector := range frameworkContainerSelectors {
		candidate := doc.Find(selector).First()
		if candidate.Length() == 0 {
			continue
		}
		if textLength(candidate) > l.thresholds.FrameworkContainerMinText &&
			candidate.Find("p, h1, h2, h3, h4, h5, h6").Length() > 0 {
			return candidate
		}
	}

	// Tier 2: generic semantic containers.
	for _, selector := range genericContainerSelectors {
		candidate := doc.Find(selector).First()
		if candidate.Length() == 0 {
			continue
		}
		if l.isValidContentContainer(candidate) {
			return candidate
		}
	}

	// Tier 3: density-scored scan over structural elements.
	if best := l.bestScoring(doc); best != nil {
		return best
	}

	return doc.Find("body").First()
}

// isValidContentContainer applies signature-dependent thresholds: containers
// that advertise themselves as content need less evidence than anonymous ones.
func (l *Locator) isValidContentContainer(s *goquery.Selection) bool {
	text := textLength(s)
	paragraphs := s.Find("p").Length()
	headings := s.Find(headingSelector).Length()
	class := strings.ToLower(s.AttrOr("class", ""))

	switch {
	case strings.Contains(class, "content"):
		code := s.Find("pre, code").Length()
		return text > l.thresholds.FrameworkContainerMinText && (paragraphs > 1 || headings > 0 || code > 0)
	case strings.Contains(class, "docs"):
		return text > l.thresholds.DocsContainerMinText && (paragraphs > 1 || headings > 0)
	default:
		return text > l.thresholds.GenericContainerMinText && (paragraphs > 2 || headings > 1)
	}
}

// bestScoring scans div/section/article/main elements and returns the one
// with the highest structural density score, or nil if none qualifies.
func (l *Locator) bestScoring(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestScore := 0

	doc.Find("div, section, article, main").Each(func(_ int, s *goquery.Selection) {
		text := textLength(s)
		if text <= l.thresholds.ScoreMinText {
			return
		}

		score := 2*s.Find("p").Length() + 3*s.Find(headingSelector).Length()
		if text > l.thresholds.ScoreTextBonusLength {
			score += 10
		}

		if score > bestScore {
			bestScore = score
			best = s
		}
	})

	return best
}

// containerInfo summarizes a located container selection.
func containerInfo(s *goquery.Selection) readaloud.ContainerInfo {
	if s == nil || s.Length() == 0 {
		return readaloud.ContainerInfo{Tag: "body"}
	}
	return readaloud.ContainerInfo{
		Tag:        goquery.NodeName(s),
		ID:         s.AttrOr("id", ""),
		Class:      s.AttrOr("class", ""),
		TextLength: textLength(s),
		Paragraphs: s.Find("p").Length(),
		Headings:   s.Find(headingSelector).Length(),
	}
}
