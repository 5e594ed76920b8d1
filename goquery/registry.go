package goquery

import "github.com/readaloudhq/readaloud"

var _ readaloud.ProfileRegistry = (*Registry)(nil)

// Registry manages framework-specific extraction profiles and auto-detects
// frameworks from HTML content. It uses a FrameworkDetector to identify the
// documentation framework and returns the appropriate profile, falling back
// to a generic profile when the framework is unknown or no specific profile
// is registered.
type Registry struct {
	detector readaloud.FrameworkDetector
	fallback readaloud.Profile
	profiles map[readaloud.Framework]readaloud.Profile
}

// NewRegistry creates a new Registry with the given detector and fallback
// profile. The fallback is used when GetForHTML cannot find a specific
// profile for the detected framework.
func NewRegistry(detector readaloud.FrameworkDetector, fallback readaloud.Profile) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		profiles: make(map[readaloud.Framework]readaloud.Profile),
	}
}

// NewDefaultRegistry creates a Registry with all built-in framework profiles
// registered and the generic profile as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), NewGenericProfile())
	r.Register(readaloud.FrameworkDocusaurus, NewDocusaurusProfile())
	r.Register(readaloud.FrameworkMkDocs, NewMkDocsProfile())
	r.Register(readaloud.FrameworkSphinx, NewSphinxProfile())
	r.Register(readaloud.FrameworkVitePress, NewVitePressProfile())
	r.Register(readaloud.FrameworkVuePress, NewVuePressProfile())
	r.Register(readaloud.FrameworkGitBook, NewGitBookProfile())
	r.Register(readaloud.FrameworkNextra, NewNextraProfile())
	return r
}

// Get returns the profile for a specific framework.
// Returns nil if no profile is registered for the framework.
func (r *Registry) Get(framework readaloud.Framework) readaloud.Profile {
	return r.profiles[framework]
}

// GetForHTML detects the framework from HTML and returns the appropriate
// profile. Falls back to the fallback profile if the framework is unknown
// or no profile is registered for the detected framework.
func (r *Registry) GetForHTML(html string) readaloud.Profile {
	framework := r.detector.Detect(html)
	if profile, ok := r.profiles[framework]; ok {
		return profile
	}
	return r.fallback
}

// Register adds a profile for a framework.
// If a profile is already registered for the framework, it is replaced.
func (r *Registry) Register(framework readaloud.Framework, profile readaloud.Profile) {
	r.profiles[framework] = profile
}

// List returns all registered frameworks.
func (r *Registry) List() []readaloud.Framework {
	frameworks := make([]readaloud.Framework, 0, len(r.profiles))
	for f := range r.profiles {
		frameworks = append(frameworks, f)
	}
	return frameworks
}
