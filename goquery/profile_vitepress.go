package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*VitePressProfile)(nil)

// VitePressProfile extracts content units from VitePress sites.
// The rendered document lives in .vp-doc inside #VPContent.
type VitePressProfile struct{}

// NewVitePressProfile creates a new VitePressProfile.
func NewVitePressProfile() *VitePressProfile {
	return &VitePressProfile{}
}

// Name returns the profile's identifier.
func (p *VitePressProfile) Name() string {
	return "vitepress"
}

// Selectors returns the profile's selector strategy.
func (p *VitePressProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Container: []string{".VPDoc .vp-doc", ".vp-doc", "#VPContent main"},
		Units:     frameworkUnitGroups,
	}
}
