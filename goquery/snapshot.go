package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/readaloudhq/readaloud"
)

// snapshotTitleLength is the truncation length for snapshot titles.
const snapshotTitleLength = 80

// snapshotSampleSelector picks the representative elements whose text makes
// up a snapshot's sample: titles, paragraphs, and code blocks.
const snapshotSampleSelector = "h1, h2, h3, p, pre, code"

// Ensure Fingerprinter implements readaloud.Fingerprinter at compile time.
var _ readaloud.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter builds cheap content snapshots of a page's main container,
// used by change detection to decide whether re-extraction is warranted.
type Fingerprinter struct {
	locator *Locator
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter(thresholds readaloud.Thresholds) *Fingerprinter {
	return &Fingerprinter{locator: NewLocator(thresholds)}
}

// Snapshot implements readaloud.Fingerprinter.
func (f *Fingerprinter) Snapshot(pageURL string, rawHTML string) (*readaloud.ContentSnapshot, error) {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return nil, readaloud.Errorf(readaloud.EINVALID, "failed to parse HTML: %v", err)
	}

	container := f.locator.locate(doc)

	return &readaloud.ContentSnapshot{
		TextSample: textSample(container),
		Structure: readaloud.StructureCounts{
			Headings:   container.Find(headingSelector).Length(),
			Paragraphs: container.Find("p").Length(),
			Sections:   container.Find("section, article").Length(),
			CodeBlocks: container.Find("pre, code").Length(),
			Lists:      container.Find("ul, ol").Length(),
			Links:      container.Find("a").Length(),
		},
		Context: readaloud.SnapshotContext{
			URLPath:      urlPath(pageURL),
			Title:        readaloud.Truncate(readaloud.CollapseWhitespace(doc.Find("title").First().Text()), snapshotTitleLength),
			ContainerTag: goquery.NodeName(container),
		},
	}, nil
}

// textSample concatenates truncated text from up to SnapshotSampleElements
// representative elements in the container.
func textSample(container *goquery.Selection) string {
	var parts []string
	container.Find(snapshotSampleSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := readaloud.CollapseWhitespace(s.Text())
		if text == "" {
			return true
		}
		parts = append(parts, readaloud.Truncate(text, readaloud.SnapshotSampleLength))
		return len(parts) < readaloud.SnapshotSampleElements
	})
	return strings.Join(parts, "|")
}

// urlPath extracts the path component of a URL, falling back to the raw
// string when it cannot be parsed.
func urlPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
