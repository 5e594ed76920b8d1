// Package htmltomarkdown provides a readaloud.Formatter backed by
// html-to-markdown, used to export a page's readable content as a
// Markdown transcript.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/readaloudhq/readaloud"
)

// chromeSelector matches everything a transcript should not carry: scripts,
// styles, navigation and sidebar chrome, and the extension's own player UI.
// The readaloud class/id markers are reserved, matching the classifier's
// noise filter.
const chromeSelector = "script, style, noscript, iframe, nav, " +
	"#readaloud-root, .readaloud-player, .readaloud-dock, .readaloud-panel, " +
	".readaloud-settings, [data-readaloud]"

// Ensure Formatter implements readaloud.Formatter at compile time.
var _ readaloud.Formatter = (*Formatter)(nil)

// Formatter renders a page's main container as a Markdown transcript. The
// input is stripped of page and player chrome before conversion so the
// exported file holds only readable content.
type Formatter struct {
	conv *converter.Converter
}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Formatter{conv: conv}
}

// Format transforms HTML content into Markdown.
func (f *Formatter) Format(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", readaloud.Errorf(readaloud.EINVALID, "empty HTML input")
	}

	result, err := f.conv.ConvertString(stripChrome(html))
	if err != nil {
		return "", err
	}

	return result, nil
}

// stripChrome removes non-content elements from the HTML. Unparseable input
// is passed through unchanged and left to the converter.
func stripChrome(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find(chromeSelector).Remove()

	cleaned, err := doc.Find("body").First().Html()
	if err != nil {
		return html
	}
	return cleaned
}
