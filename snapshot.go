package readaloud

import (
	"fmt"
	"strings"
)

// SnapshotSampleElements is the number of representative elements whose
// truncated text makes up a snapshot's text sample.
const SnapshotSampleElements = 8

// SnapshotSampleLength is the per-element truncation length for text samples.
const SnapshotSampleLength = 50

// StructureCounts counts content-bearing structure within the main container.
type StructureCounts struct {
	Headings   int `json:"headings"`
	Paragraphs int `json:"paragraphs"`
	Sections   int `json:"sections"`
	CodeBlocks int `json:"codeBlocks"`
	Lists      int `json:"lists"`
	Links      int `json:"links"`
}

// SnapshotContext identifies where a snapshot was taken.
type SnapshotContext struct {
	URLPath      string `json:"urlPath"`
	Title        string `json:"title"`
	ContainerTag string `json:"containerTag"`
}

// ContentSnapshot is a cheap fingerprint of current page state, used to
// decide whether full re-extraction is warranted. It is immutable once
// constructed; snapshots compare by value equality of the serialized form.
type ContentSnapshot struct {
	TextSample string          `json:"textSample"`
	Structure  StructureCounts `json:"structure"`
	Context    SnapshotContext `json:"context"`
}

// Key returns the canonical serialized form used for comparison.
func (s *ContentSnapshot) Key() string {
	var b strings.Builder
	b.WriteString(s.Context.URLPath)
	b.WriteByte('|')
	b.WriteString(s.Context.Title)
	b.WriteByte('|')
	b.WriteString(s.Context.ContainerTag)
	b.WriteByte('|')
	fmt.Fprintf(&b, "h%d.p%d.s%d.c%d.l%d.a%d|",
		s.Structure.Headings, s.Structure.Paragraphs, s.Structure.Sections,
		s.Structure.CodeBlocks, s.Structure.Lists, s.Structure.Links)
	b.WriteString(s.TextSample)
	return b.String()
}

// Equal reports whether two snapshots serialize identically.
// A nil snapshot only equals another nil snapshot.
func (s *ContentSnapshot) Equal(other *ContentSnapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Key() == other.Key()
}

// Fingerprinter builds content snapshots from page HTML.
type Fingerprinter interface {
	// Snapshot computes a fingerprint of the page's main container.
	// The url is recorded as the snapshot's context path.
	Snapshot(url string, html string) (*ContentSnapshot, error)
}
