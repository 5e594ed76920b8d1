package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*GenericProfile)(nil)

// frameworkUnitGroups are the container-scoped unit selectors shared by all
// framework profiles: paragraphs, headings, list items, quotes, and code.
var frameworkUnitGroups = []string{
	"p",
	"h1, h2, h3, h4, h5, h6",
	"li",
	"blockquote",
	"pre",
}

// GenericProfile extracts content units from arbitrary pages using broad
// document-wide selectors. It casts a wider net than the framework profiles
// and relies on the classifier to filter the extra noise it pulls in.
type GenericProfile struct{}

// NewGenericProfile creates a new GenericProfile.
func NewGenericProfile() *GenericProfile {
	return &GenericProfile{}
}

// Name returns the profile's identifier.
func (p *GenericProfile) Name() string {
	return "generic"
}

// Selectors returns the profile's selector strategy. The container list is
// empty: the generic profile queries the whole document and leans on the
// classifier (wrapper detection, duplicate suppression) instead of scoping.
func (p *GenericProfile) Selectors() readaloud.ProfileSelectors {
	return readaloud.ProfileSelectors{
		Units: []string{
			"p",
			"h1, h2, h3, h4, h5, h6",
			"li",
			"blockquote",
			"td",
			"div[class*='text'], div[class*='paragraph'], div[class*='description']",
			"span[class*='text']",
		},
	}
}
