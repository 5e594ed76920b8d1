// Package bloom provides session revisit tracking using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/readaloudhq/readaloud"
)

var _ readaloud.RevisitTracker = (*Tracker)(nil)

// Tracker remembers content fingerprints in a Bloom filter so revisited
// pages can be tagged without storing every fingerprint seen during a
// long browsing session.
type Tracker struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewTracker creates a Tracker sized for n expected fingerprints with the
// given false positive rate.
func NewTracker(n uint, fpRate float64) *Tracker {
	return &Tracker{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen returns true if the fingerprint might have been marked before.
// False positives are possible; false negatives are not.
func (t *Tracker) Seen(fingerprint string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.f.TestString(fingerprint)
}

// Mark records the fingerprint.
func (t *Tracker) Mark(fingerprint string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.f.AddString(fingerprint)
}

// EstimatedCount returns the approximate number of marked fingerprints.
func (t *Tracker) EstimatedCount() uint {
	t.mu.Lock()
	defer t.mu.Unlock()
	return uint(t.f.ApproximatedSize())
}
