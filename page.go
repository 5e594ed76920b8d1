package readaloud

import (
	"context"
	"time"
)

// PageState is a point-in-time capture of the observed page.
type PageState struct {
	URL       string
	HTML      string
	FetchedAt time.Time
}

// PageSource provides the current state of the page under observation.
// Implementations hide how the page is obtained (plain HTTP, a headless
// browser with JavaScript rendering, a test fixture).
type PageSource interface {
	// State returns the page's current URL and rendered HTML.
	State(ctx context.Context) (*PageState, error)

	// Close releases any resources held by the source.
	Close() error
}

// NavigationKind classifies how a page navigation happened.
type NavigationKind int

// Navigation kinds.
const (
	NavigatePush NavigationKind = iota
	NavigateReplace
	NavigatePop
	NavigateHash
)

// NavigationEvent reports a URL change observed on the page.
type NavigationEvent struct {
	Kind NavigationKind
	URL  string
}

// NavigationSource is an optional capability of a PageSource: it observes
// programmatic and history navigations without the page's cooperation.
type NavigationSource interface {
	// OnNavigate registers a callback invoked for each navigation.
	OnNavigate(fn func(NavigationEvent))
}

// MutationKind classifies a DOM mutation.
type MutationKind int

// Mutation kinds.
const (
	MutationChildList MutationKind = iota
	MutationCharacterData
)

// Mutation reports a DOM subtree change observed on the page.
type Mutation struct {
	Kind MutationKind

	// Tag is the element tag of an added or removed node (childList only).
	Tag string

	// Text is the trimmed text of the added/removed node or the changed
	// character data.
	Text string
}

// MutationSource is an optional capability of a PageSource: it observes
// childList and characterData mutations under the main container.
type MutationSource interface {
	// OnMutation registers a callback invoked for each observed mutation.
	OnMutation(fn func(Mutation))
}

// ActivitySource reports recent user input (click, scroll, keydown,
// mousemove). It is used only to bucket the adaptive poll interval.
type ActivitySource interface {
	// LastInput returns the time of the most recent user input event.
	LastInput() time.Time
}
