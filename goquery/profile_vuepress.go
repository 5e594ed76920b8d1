package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*VuePressProfile)(nil)

// VuePressProfile extracts content units from VuePress sites.
// The default theme renders content into .theme-default-content.
type VuePressProfile struct{}

// NewVuePressProfile creates a new VuePressProfile.
func NewVuePressProfile() *VuePressProfile {
	return &VuePressProfile{}
}

// Name returns the profile's identifier.
func (p *VuePressProfile) Name() string {
	return "vuepress"
}

// Selectors returns the profile's selector strategy.
func (p *VuePressProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Container: []string{".theme-default-content", ".page .content__default", "main.page"},
		Units:     frameworkUnitGroups,
	}
}
