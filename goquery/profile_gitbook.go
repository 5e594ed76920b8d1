package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*GitBookProfile)(nil)

// GitBookProfile extracts content units from GitBook sites.
// GitBook marks its main content region with data-testid attributes.
type GitBookProfile struct{}

// NewGitBookProfile creates a new GitBookProfile.
func NewGitBookProfile() *GitBookProfile {
	return &GitBookProfile{}
}

// Name returns the profile's identifier.
func (p *GitBookProfile) Name() string {
	return "gitbook"
}

// Selectors returns the profile's selector strategy.
func (p *GitBookProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Container: []string{"[data-testid='page.contentEditor']", "main [data-testid]", "main"},
		Units:     frameworkUnitGroups,
	}
}
