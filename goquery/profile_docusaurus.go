package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*DocusaurusProfile)(nil)

// DocusaurusProfile extracts content units from Docusaurus documentation
// sites. Validated against Docusaurus v2.x and v3.x.
//
// It scopes extraction to the rendered markdown container:
// - .theme-doc-markdown is the article body
// - article .markdown covers older themes
type DocusaurusProfile struct{}

// NewDocusaurusProfile creates a new DocusaurusProfile.
func NewDocusaurusProfile() *DocusaurusProfile {
	return &DocusaurusProfile{}
}

// Name returns the profile's identifier.
func (p *DocusaurusProfile) Name() string {
	return "docusaurus"
}

// Selectors returns the profile's selector strategy.
func (p *DocusaurusProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Container: []string{".theme-doc-markdown", "article .markdown", "main article"},
		Units:     frameworkUnitGroups,
	}
}
