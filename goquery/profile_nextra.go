package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*NextraProfile)(nil)

// NextraProfile extracts content units from Nextra documentation sites.
type NextraProfile struct{}

// NewNextraProfile creates a new NextraProfile.
func NewNextraProfile() *NextraProfile {
	return &NextraProfile{}
}

// Name returns the profile's identifier.
func (p *NextraProfile) Name() string {
	return "nextra"
}

// Selectors returns the profile's selector strategy.
func (p *NextraProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Container: []string{".nextra-content", "main.nextra-body", "article main"},
		Units:     frameworkUnitGroups,
	}
}
