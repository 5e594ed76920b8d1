package readaloud

// MinUnitTextLength is the minimum text length (exclusive) for a unit to
// survive extraction. Candidates with shorter text are dropped at the source.
const MinUnitTextLength = 5

// FallbackUnitText is the placeholder text of the synthetic unit inserted
// when extraction yields nothing. Extraction never returns an empty sequence.
const FallbackUnitText = "Ready to read this page aloud."

// ElementRef points back to the source node of a unit. It is a weak
// reference used only for scrolling and highlighting: a tag name plus a
// CSS-style location path within the parsed document.
type ElementRef struct {
	Tag  string `json:"tag"`
	Path string `json:"path"`
}

// ContentUnit is one extracted, orderable piece of readable text.
type ContentUnit struct {
	// Index is the unit's position in the sequence at extraction time.
	// It is not stable across re-extractions.
	Index int `json:"index"`

	// Text is the normalized, trimmed text content.
	Text string `json:"text"`

	// IsHeading is true if the unit was sourced from an h1-h6 element.
	// Headings are exempt from duplicate detection.
	IsHeading bool `json:"isHeading"`

	// Element locates the source node for highlighting.
	// Nil for the synthetic fallback unit.
	Element *ElementRef `json:"element,omitempty"`
}

// FallbackUnit returns the synthetic placeholder unit.
func FallbackUnit() ContentUnit {
	return ContentUnit{Index: 0, Text: FallbackUnitText}
}

// IsFallback reports whether units consists solely of the synthetic
// placeholder, i.e. extraction found no real content.
func IsFallback(units []ContentUnit) bool {
	return len(units) == 1 && units[0].Element == nil && units[0].Text == FallbackUnitText
}
