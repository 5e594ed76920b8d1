package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*MkDocsProfile)(nil)

// MkDocsProfile extracts content units from MkDocs sites, including the
// Material theme. The article body lives in .md-content__inner.
type MkDocsProfile struct{}

// NewMkDocsProfile creates a new MkDocsProfile.
func NewMkDocsProfile() *MkDocsProfile {
	return &MkDocsProfile{}
}

// Name returns the profile's identifier.
func (p *MkDocsProfile) Name() string {
	return "mkdocs"
}

// Selectors returns the profile's selector strategy.
func (p *MkDocsProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Container: []string{".md-content__inner", ".md-content", "main .md-main"},
		Units:     frameworkUnitGroups,
	}
}
