package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*SphinxProfile)(nil)

// SphinxProfile extracts content units from Sphinx sites, including the
// ReadTheDocs theme. The article body carries itemprop="articleBody".
type SphinxProfile struct{}

// NewSphinxProfile creates a new SphinxProfile.
func NewSphinxProfile() *SphinxProfile {
	return &SphinxProfile{}
}

// Name returns the profile's identifier.
func (p *SphinxProfile) Name() string {
	return "sphinx"
}

// Selectors returns the profile's selector strategy.
func (p *SphinxProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Container: []string{"div[itemprop='articleBody']", ".rst-content .document", ".body", ".document"},
		Units:     frameworkUnitGroups,
	}
}
