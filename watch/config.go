package watch

import (
	"strings"
	"time"

	"github.com/readaloudhq/readaloud"
)

// Config holds the timing and threshold knobs of the watcher. All values are
// empirical; DefaultConfig preserves the tuned defaults and callers should
// adjust individual fields rather than invent new baselines.
type Config struct {
	// Poll intervals by activity bucket. ActiveDocsInterval applies in the
	// active bucket when the page's framework is known, since documentation
	// SPAs swap content more aggressively.
	ActiveInterval     time.Duration
	ActiveDocsInterval time.Duration
	PassiveInterval    time.Duration
	BackgroundInterval time.Duration

	// ActivityWindow is how recent user input must be for the active bucket.
	ActivityWindow time.Duration

	// Check scheduling delays. Push/replace navigations settle faster than
	// pop/hash navigations, which may replay scroll restoration.
	PushNavigationDelay time.Duration
	PopNavigationDelay  time.Duration
	MutationDelay       time.Duration

	// ReconcileDebounce is the settle window between a detected change and
	// the reconciliation it schedules.
	ReconcileDebounce time.Duration

	// MutationMinText is the minimum trimmed text length for an added or
	// removed element node to count as a significant mutation.
	MutationMinText int

	// CharDataMinText is the minimum trimmed length of changed character
	// data to count as a significant mutation.
	CharDataMinText int

	// SnapshotMinLength is the minimum text-sample length for a snapshot
	// difference to signal a change. A blank or near-blank sample means the
	// page has not rendered its content yet; structure-only churn on such a
	// snapshot is not a change.
	SnapshotMinLength int

	// CountDeltaThreshold is the unit-count delta above which a change is
	// signaled even when the snapshot is stable.
	CountDeltaThreshold int

	// Significance thresholds: unit-count deltas above these are surfaced
	// to the user. Manual refresh tolerates larger fluctuation since the
	// user asked for it.
	SignificantAutoDelta   int
	SignificantManualDelta int
}

// DefaultConfig returns the tuned default configuration.
func DefaultConfig() Config {
	return Config{
		ActiveInterval:         4 * time.Second,
		ActiveDocsInterval:     2 * time.Second,
		PassiveInterval:        15 * time.Second,
		BackgroundInterval:     60 * time.Second,
		ActivityWindow:         10 * time.Second,
		PushNavigationDelay:    100 * time.Millisecond,
		PopNavigationDelay:     300 * time.Millisecond,
		MutationDelay:          400 * time.Millisecond,
		ReconcileDebounce:      800 * time.Millisecond,
		MutationMinText:        30,
		CharDataMinText:        20,
		SnapshotMinLength:      20,
		CountDeltaThreshold:    1,
		SignificantAutoDelta:   2,
		SignificantManualDelta: 5,
	}
}

// PollInterval selects the poll interval for the current activity bucket.
func (c Config) PollInterval(hidden bool, sinceInput time.Duration, knownFramework bool) time.Duration {
	if hidden {
		return c.BackgroundInterval
	}
	if sinceInput < c.ActivityWindow {
		if knownFramework {
			return c.ActiveDocsInterval
		}
		return c.ActiveInterval
	}
	return c.PassiveInterval
}

// NavigationDelay returns the check delay for a navigation kind.
func (c Config) NavigationDelay(kind readaloud.NavigationKind) time.Duration {
	switch kind {
	case readaloud.NavigatePop, readaloud.NavigateHash:
		return c.PopNavigationDelay
	default:
		return c.PushNavigationDelay
	}
}

// contentTags are the element tags whose addition or removal counts as a
// content-bearing childList mutation.
var contentTags = map[string]bool{
	"p":          true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"section":    true,
	"article":    true,
	"li":         true,
	"pre":        true,
	"code":       true,
	"blockquote": true,
}

// SignificantMutation reports whether a mutation is worth scheduling a
// check for: a content-bearing element with enough text, or a character
// data edit longer than the noise floor.
func (c Config) SignificantMutation(m readaloud.Mutation) bool {
	text := len([]rune(strings.TrimSpace(m.Text)))
	switch m.Kind {
	case readaloud.MutationChildList:
		return contentTags[m.Tag] && text > c.MutationMinText
	case readaloud.MutationCharacterData:
		return text > c.CharDataMinText
	default:
		return false
	}
}
