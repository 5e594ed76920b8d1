package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
	"github.com/readaloudhq/readaloud"
)

// stickyAncestorSelector matches ancestors whose descendants are usually
// chrome rather than content: navigation bars, sticky headers, toolbars.
const stickyAncestorSelector = "nav, header, [class*='sticky'], [class*='fixed'], [class*='navbar'], [class*='toolbar'], [class*='topbar'], [role='navigation'], [style*='sticky'], [style*='fixed']"

// playerUISelector matches the extension's own UI so the player never reads
// itself. The markers are fixed: these class/id names are reserved.
const playerUISelector = "#readaloud-root, .readaloud-player, .readaloud-dock, .readaloud-panel, .readaloud-settings, [data-readaloud]"

// wrapperClassRe matches the class vocabulary of layout wrappers.
var wrapperClassRe = regexp.MustCompile(`(?i)\b(wrapper|container|layout|page-?body|main-?area|grid|row|columns?)\b`)

// progressCounterRe matches player progress text like "3 / 12".
var progressCounterRe = regexp.MustCompile(`^\d+\s*/\s*\d+$`)

// playerChromeText is the set of literal control labels the player renders.
var playerChromeText = map[string]bool{
	"play":     true,
	"pause":    true,
	"stop":     true,
	"resume":   true,
	"settings": true,
	"▶":        true,
	"⏸":        true,
	"⏹":        true,
}

// navKeywords flags list items that belong to course/tutorial navigation.
var navKeywords = []string{
	"tutorial",
	"getting started",
	"table of contents",
	"previous",
	"next chapter",
	"documentation home",
}

// navPartRe matches "part 1", "part 2" style series labels.
var navPartRe = regexp.MustCompile(`(?i)\bpart\s+\d+\b`)

// Classifier decides whether a candidate element is noise, a wrapper to
// skip, a near-duplicate, or a valid content unit. Predicates are applied
// in a fixed short-circuit order to minimize tree work.
type Classifier struct {
	thresholds readaloud.Thresholds
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(thresholds readaloud.Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Accept reports whether the candidate survives all filters, consulting the
// units accumulated so far for duplicate detection. The text must already be
// whitespace-collapsed.
func (c *Classifier) Accept(s *goquery.Selection, text string, existing []readaloud.ContentUnit) bool {
	if text == "" {
		return false
	}
	// Headings are exempt from the length cutoff: "Intro" or "API" is a
	// meaningful unit even at five characters or fewer.
	if runeLen(text) <= readaloud.MinUnitTextLength && !isHeading(s) {
		return false
	}
	if c.IsNoise(s, text) {
		return false
	}
	if c.IsLargeContainer(s, text) {
		return false
	}
	if c.IsDuplicate(s, text, existing) {
		return false
	}
	if c.IsNavigationLike(s, text) {
		return false
	}
	return true
}

// IsNoise reports whether the element is page or player chrome: sticky or
// fixed positioning, short text under a navigation-like ancestor, the
// extension's own UI, or literal player control text.
func (c *Classifier) IsNoise(s *goquery.Selection, text string) bool {
	if hasStickyPosition(s) {
		return true
	}

	if s.ParentsFiltered(stickyAncestorSelector).Length() > 0 &&
		!isHeading(s) &&
		runeLen(text) < c.thresholds.NoiseMaxText {
		return true
	}

	if s.Is(playerUISelector) || s.ParentsFiltered(playerUISelector).Length() > 0 {
		return true
	}

	lower := strings.ToLower(text)
	if playerChromeText[lower] || progressCounterRe.MatchString(text) {
		return true
	}

	return false
}

// hasStickyPosition approximates a computed-style check on a static tree:
// an inline position:sticky/fixed declaration counts, as does a sticky/fixed
// marker in the element's own class list.
func hasStickyPosition(s *goquery.Selection) bool {
	style := strings.ToLower(s.AttrOr("style", ""))
	style = strings.ReplaceAll(style, " ", "")
	if strings.Contains(style, "position:sticky") || strings.Contains(style, "position:fixed") {
		return true
	}

	class := strings.ToLower(s.AttrOr("class", ""))
	return strings.Contains(class, "sticky") || strings.Contains(class, "position-fixed")
}

// IsLargeContainer reports whether a generic container element (div, span,
// section) is a wrapper aggregating other units rather than a unit itself.
func (c *Classifier) IsLargeContainer(s *goquery.Selection, text string) bool {
	if !s.Is("div, span, section") {
		return false
	}

	if runeLen(text) > c.thresholds.LargeContainerMaxText {
		return true
	}

	if s.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote").Length() > c.thresholds.LargeContainerMaxUnits {
		return true
	}

	if s.Find("article, section, div[class*='content']").Length() > c.thresholds.LargeContainerMaxBlocks {
		return true
	}

	if wrapperClassRe.MatchString(s.AttrOr("class", "")) && runeLen(text) > c.thresholds.WrapperClassMinText {
		return true
	}

	// Text mostly aggregated from children signals a wrapper, not a unit.
	if runeLen(text) > c.thresholds.DirectTextMinTotal {
		direct := directTextLength(s)
		if float64(direct) < c.thresholds.DirectTextMinRatio*float64(runeLen(text)) {
			return true
		}
	}

	return false
}

// IsDuplicate reports whether the candidate's text repeats an already
// extracted unit. Headings are exempt: the same heading legitimately appears
// in a TOC and in the body.
func (c *Classifier) IsDuplicate(s *goquery.Selection, text string, existing []readaloud.ContentUnit) bool {
	if isHeading(s) {
		return false
	}

	normalized := readaloud.NormalizeText(text)
	for _, unit := range existing {
		other := readaloud.NormalizeText(unit.Text)
		if normalized == other {
			return true
		}
		if runeLen(normalized) > c.thresholds.DuplicateMinLength && c.similarity(normalized, other) > c.thresholds.DuplicateSimilarity {
			return true
		}
	}

	return false
}

// similarity returns 1 - editDistance/longerLength.
func (c *Classifier) similarity(a, b string) float64 {
	longer := runeLen(a)
	if l := runeLen(b); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longer)
}

// IsNavigationLike reports whether a list item is link-dominated navigation
// rather than readable content. Only applies to li elements.
func (c *Classifier) IsNavigationLike(s *goquery.Selection, text string) bool {
	if !s.Is("li") {
		return false
	}

	links := s.Find("a").Length()

	if links > c.thresholds.NavMaxLinks {
		linkText := 0
		s.Find("a").Each(func(_ int, a *goquery.Selection) {
			linkText += runeLen(readaloud.CollapseWhitespace(a.Text()))
		})
		nonLink := runeLen(text) - linkText
		if float64(nonLink) < c.thresholds.NavMinTextRatio*float64(runeLen(text)) {
			return true
		}
	}

	if links > c.thresholds.NavKeywordMaxLinks {
		lower := strings.ToLower(text)
		if navPartRe.MatchString(lower) {
			return true
		}
		for _, kw := range navKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	return false
}
