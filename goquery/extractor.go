package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/readaloudhq/readaloud"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readaloud.Extractor at compile time.
var _ readaloud.Extractor = (*Extractor)(nil)

// Extractor produces the ordered content-unit sequence for a page. It
// selects a selector profile for the page (framework-specific or generic),
// gathers candidates group by group, and filters each candidate through the
// classifier. Extraction never returns an empty sequence.
type Extractor struct {
	registry   readaloud.ProfileRegistry
	locator    *Locator
	classifier *Classifier
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithRegistry sets the profile registry.
// Defaults to NewDefaultRegistry.
func WithRegistry(r readaloud.ProfileRegistry) ExtractorOption {
	return func(e *Extractor) {
		e.registry = r
	}
}

// WithThresholds sets the classification thresholds.
// Defaults to readaloud.DefaultThresholds.
func WithThresholds(t readaloud.Thresholds) ExtractorOption {
	return func(e *Extractor) {
		e.locator = NewLocator(t)
		e.classifier = NewClassifier(t)
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		registry:   NewDefaultRegistry(),
		locator:    NewLocator(readaloud.DefaultThresholds()),
		classifier: NewClassifier(readaloud.DefaultThresholds()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements readaloud.Extractor. Candidate groups are concatenated
// in profile order, so relative order across groups follows group order
// rather than strict visual order; within a group, candidates appear in
// document order.
func (e *Extractor) Extract(rawHTML string) []readaloud.ContentUnit {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}

	profile := e.registry.GetForHTML(rawHTML)
	selectors := profile.Selectors()
	scope := e.scope(doc, selectors)

	var units []readaloud.ContentUnit
	seen := make(map[*html.Node]bool)

	for _, group := range selectors.Units {
		scope.Find(group).Each(func(_ int, s *goquery.Selection) {
			if len(s.Nodes) == 0 || seen[s.Nodes[0]] {
				return
			}
			seen[s.Nodes[0]] = true

			text := readaloud.CollapseWhitespace(s.Text())
			if !e.classifier.Accept(s, text, units) {
				return
			}

			units = append(units, readaloud.ContentUnit{
				Index:     len(units),
				Text:      text,
				IsHeading: isHeading(s),
				Element:   elementRef(s),
			})
		})
	}

	if len(units) == 0 {
		return []readaloud.ContentUnit{readaloud.FallbackUnit()}
	}

	return units
}

// scope returns the selection unit queries run against: the profile's own
// container when one matches with content, the located main container
// otherwise, and the whole document for container-less (generic) profiles.
func (e *Extractor) scope(doc *goquery.Document, selectors readaloud.ProfileSelectors) *goquery.Selection {
	if len(selectors.Container) == 0 {
		return doc.Selection
	}

	for _, selector := range selectors.Container {
		candidate := doc.Find(selector).First()
		if candidate.Length() > 0 && textLength(candidate) > 0 {
			return candidate
		}
	}

	return e.locator.locate(doc)
}
