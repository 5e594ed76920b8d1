package bloom_test

import (
	"fmt"
	"testing"

	"github.com/readaloudhq/readaloud/bloom"
	"github.com/stretchr/testify/assert"
)

func TestTracker_MarkAndSeen(t *testing.T) {
	t.Parallel()

	tr := bloom.NewTracker(1000, 0.01)

	// Fingerprint not yet marked should return false
	assert.False(t, tr.Seen("a1b2c3d4"))

	tr.Mark("a1b2c3d4")

	assert.True(t, tr.Seen("a1b2c3d4"))

	// Different fingerprint should still return false
	assert.False(t, tr.Seen("ffffffff"))
}

func TestTracker_EstimatedCount(t *testing.T) {
	t.Parallel()

	tr := bloom.NewTracker(1000, 0.01)

	// Empty tracker should have count near 0
	assert.Equal(t, uint(0), tr.EstimatedCount())

	tr.Mark("fp-1")
	tr.Mark("fp-2")
	tr.Mark("fp-3")

	// Estimated count should be approximately 3
	count := tr.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestTracker_MarkIsIdempotent(t *testing.T) {
	t.Parallel()

	tr := bloom.NewTracker(1000, 0.01)

	fp := "a1b2c3d4"

	tr.Mark(fp)
	countAfterFirst := tr.EstimatedCount()

	// Marking the same fingerprint again should not change the filter
	tr.Mark(fp)
	tr.Mark(fp)
	tr.Mark(fp)

	assert.Equal(t, countAfterFirst, tr.EstimatedCount())
	assert.True(t, tr.Seen(fp))
}

func TestTracker_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	tr := bloom.NewTracker(numItems, fpRate)

	for i := range numItems {
		tr.Mark(fmt.Sprintf("marked-%d", i))
	}

	// Probe with fingerprints that were never marked
	falsePositives := 0
	for i := range testProbes {
		if tr.Seen(fmt.Sprintf("unmarked-%d", i)) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
