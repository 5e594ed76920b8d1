package readaloud

// Extractor produces the ordered unit sequence for a page.
type Extractor interface {
	// Extract segments the page's HTML into content units.
	// The result is never empty: if no real content is found (or the HTML
	// cannot be parsed), it contains exactly the synthetic fallback unit.
	Extract(html string) []ContentUnit
}

// FallbackChain tries each extractor in order and returns the first result
// that contains real content. If every extractor degrades to the synthetic
// placeholder, the placeholder is returned.
type FallbackChain []Extractor

var _ Extractor = (FallbackChain)(nil)

// Extract implements Extractor.
func (c FallbackChain) Extract(html string) []ContentUnit {
	for _, e := range c {
		units := e.Extract(html)
		if !IsFallback(units) {
			return units
		}
	}
	return []ContentUnit{FallbackUnit()}
}

// ContainerInfo summarizes the main content container located for a page.
type ContainerInfo struct {
	Tag        string `json:"tag"`
	ID         string `json:"id,omitempty"`
	Class      string `json:"class,omitempty"`
	TextLength int    `json:"textLength"`
	Paragraphs int    `json:"paragraphs"`
	Headings   int    `json:"headings"`
}

// ContainerLocator finds the single best main-content container of a page.
type ContainerLocator interface {
	// Locate returns a summary of the best container. It never fails: when
	// all heuristics are exhausted it describes the document body.
	Locate(html string) ContainerInfo
}
