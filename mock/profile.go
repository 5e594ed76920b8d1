package mock

import "github.com/readaloudhq/readaloud"

var _ readaloud.Profile = (*Profile)(nil)

// Profile is a mock implementation of readaloud.Profile.
type Profile struct {
	NameFn      func() string
	SelectorsFn func() readaloud.ProfileSelectors
}

func (p *Profile) Name() string {
	if p.NameFn == nil {
		return "mock"
	}
	return p.NameFn()
}

func (p *Profile) Selectors() readaloud.ProfileSelectors {
	if p.SelectorsFn == nil {
		return readaloud.ProfileSelectors{}
	}
	return p.SelectorsFn()
}

var _ readaloud.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of readaloud.ProfileRegistry.
type ProfileRegistry struct {
	GetFn        func(framework readaloud.Framework) readaloud.Profile
	GetForHTMLFn func(html string) readaloud.Profile
	RegisterFn   func(framework readaloud.Framework, profile readaloud.Profile)
	ListFn       func() []readaloud.Framework
}

func (r *ProfileRegistry) Get(framework readaloud.Framework) readaloud.Profile {
	return r.GetFn(framework)
}

func (r *ProfileRegistry) GetForHTML(html string) readaloud.Profile {
	return r.GetForHTMLFn(html)
}

func (r *ProfileRegistry) Register(framework readaloud.Framework, profile readaloud.Profile) {
	r.RegisterFn(framework, profile)
}

func (r *ProfileRegistry) List() []readaloud.Framework {
	return r.ListFn()
}
