package readaloud

// Framework identifies a documentation framework.
type Framework string

// Supported documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// ProfileSelectors holds the CSS selector strategy of a profile.
type ProfileSelectors struct {
	// Container selectors locate the main content container, tried in order.
	Container []string

	// Units selectors gather unit candidates, scoped to the container for
	// framework profiles and document-wide for the generic profile.
	// Groups are concatenated: relative order across groups is group order,
	// not strict visual order.
	Units []string
}

// Profile is a site-profile-specific selector strategy for extraction.
type Profile interface {
	// Name returns the profile's identifier (e.g., "docusaurus", "generic").
	Name() string

	// Selectors returns the profile's selector strategy.
	Selectors() ProfileSelectors
}

// ProfileRegistry manages framework-specific extraction profiles.
type ProfileRegistry interface {
	// Get returns the profile for a specific framework.
	// Returns nil if no profile is registered for the framework.
	Get(framework Framework) Profile

	// GetForHTML detects the framework from HTML and returns the
	// appropriate profile. Falls back to a generic profile if the
	// framework is unknown.
	GetForHTML(html string) Profile

	// Register adds a profile for a framework.
	Register(framework Framework, profile Profile)

	// List returns all registered frameworks.
	List() []Framework
}
