package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/readaloudhq/readaloud"
)

// Ensure Detector implements readaloud.FrameworkDetector at compile time.
var _ readaloud.FrameworkDetector = (*Detector)(nil)

// frameworkMarker ties a framework to the DOM markers unique to it.
type frameworkMarker struct {
	framework readaloud.Framework
	selectors []string
}

// frameworkMarkers are checked in order. VitePress precedes VuePress since
// VitePress is a VuePress successor sharing some class conventions.
var frameworkMarkers = []frameworkMarker{
	{readaloud.FrameworkDocusaurus, []string{
		"#__docusaurus_skipToContent_fallback",
		".theme-doc-sidebar-container",
		".theme-doc-markdown",
	}},
	{readaloud.FrameworkMkDocs, []string{
		"[data-md-color-scheme]",
		"[data-md-component]",
		".md-nav--primary",
	}},
	{readaloud.FrameworkSphinx, []string{
		".toctree-wrapper",
		".wy-nav-side",
		".wy-menu-vertical",
		".sphinxsidebar",
	}},
	{readaloud.FrameworkVitePress, []string{
		"#VPContent",
		".VPDoc",
		".VPDocAsideOutline",
	}},
	{readaloud.FrameworkVuePress, []string{
		".theme-default-content",
		".sidebar-links",
		".vuepress-navbar",
	}},
	{readaloud.FrameworkGitBook, []string{
		"[data-testid='space.sidebar']",
		"[data-testid='page.desktopTableOfContents']",
	}},
	{readaloud.FrameworkNextra, []string{
		".nextra-navbar",
		".nextra-sidebar",
		".nextra-toc",
	}},
}

// generatorNames maps meta-generator substrings to frameworks.
var generatorNames = map[string]readaloud.Framework{
	"sphinx":     readaloud.FrameworkSphinx,
	"gitbook":    readaloud.FrameworkGitBook,
	"docusaurus": readaloud.FrameworkDocusaurus,
	"mkdocs":     readaloud.FrameworkMkDocs,
	"vitepress":  readaloud.FrameworkVitePress,
	"vuepress":   readaloud.FrameworkVuePress,
	"nextra":     readaloud.FrameworkNextra,
}

// docTitleKeywords are page-title words that signal a documentation page.
var docTitleKeywords = []string{"docs", "documentation", "guide", "manual", "reference", "tutorial"}

// Detector identifies documentation frameworks from HTML content.
// It checks meta generator tags first (most reliable when present), then
// framework-specific CSS classes and data attributes.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(rawHTML string) readaloud.Framework {
	doc, err := parseDocument(rawHTML)
	if err != nil {
		return readaloud.FrameworkUnknown
	}

	if framework := detectFromMetaGenerator(doc); framework != readaloud.FrameworkUnknown {
		return framework
	}

	for _, marker := range frameworkMarkers {
		for _, selector := range marker.selectors {
			if doc.Find(selector).Length() > 0 {
				return marker.framework
			}
		}
	}

	return readaloud.FrameworkUnknown
}

// LooksLikeDocumentation reports whether the page is documentation-shaped
// even when no specific framework is recognized: a known framework, a docs
// hostname, or a documentation keyword in the title.
func (d *Detector) LooksLikeDocumentation(url string, rawHTML string) bool {
	if d.Detect(rawHTML) != readaloud.FrameworkUnknown {
		return true
	}

	lowered := strings.ToLower(url)
	if strings.Contains(lowered, "://docs.") || strings.Contains(lowered, "/docs/") {
		return true
	}

	doc, err := parseDocument(rawHTML)
	if err != nil {
		return false
	}
	title := strings.ToLower(doc.Find("title").First().Text())
	for _, kw := range docTitleKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}

	return false
}

// detectFromMetaGenerator checks the meta generator tag.
func detectFromMetaGenerator(doc *goquery.Document) readaloud.Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return readaloud.FrameworkUnknown
	}

	for name, framework := range generatorNames {
		if strings.Contains(generator, name) {
			return framework
		}
	}

	return readaloud.FrameworkUnknown
}
