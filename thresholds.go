package readaloud

// Thresholds holds the empirical cutoffs used by container location and
// candidate classification. The defaults were tuned against real pages and
// should be preserved; they are exposed as a struct so individual values can
// be adjusted without hunting for literals.
type Thresholds struct {
	// Container location.
	FrameworkContainerMinText int // known-framework container qualifies above this text length
	DocsContainerMinText      int // class~="docs" container threshold
	GenericContainerMinText   int // any other container threshold
	ScoreMinText              int // density-scored fallback requires this much text
	ScoreTextBonusLength      int // text longer than this adds a flat scoring bonus

	// Noise filtering.
	NoiseMaxText int // elements under a sticky/fixed/nav ancestor are noise below this length

	// Large-container (wrapper) detection.
	LargeContainerMaxText   int // generic containers above this length are wrappers
	LargeContainerMaxUnits  int // more content-bearing descendants than this marks a wrapper
	LargeContainerMaxBlocks int // more structural descendants than this marks a wrapper
	WrapperClassMinText     int // "wrapper/container" class vocabulary applies above this length
	DirectTextMinRatio      float64 // below this direct-text share the text is aggregated from children
	DirectTextMinTotal      int     // direct-text ratio only applies above this total length

	// Duplicate detection.
	DuplicateSimilarity float64 // near-duplicate similarity cutoff
	DuplicateMinLength  int     // similarity comparison applies above this normalized length

	// Navigation-like list items.
	NavMaxLinks        int     // more links than this marks a nav list
	NavMinTextRatio    float64 // non-link text share below this marks a nav list
	NavKeywordMaxLinks int     // nav keywords plus more links than this marks a nav list
}

// DefaultThresholds returns the tuned default cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FrameworkContainerMinText: 100,
		DocsContainerMinText:      150,
		GenericContainerMinText:   200,
		ScoreMinText:              200,
		ScoreTextBonusLength:      1000,

		NoiseMaxText: 100,

		LargeContainerMaxText:   2000,
		LargeContainerMaxUnits:  5,
		LargeContainerMaxBlocks: 2,
		WrapperClassMinText:     500,
		DirectTextMinRatio:      0.3,
		DirectTextMinTotal:      300,

		DuplicateSimilarity: 0.9,
		DuplicateMinLength:  100,

		NavMaxLinks:        3,
		NavMinTextRatio:    0.3,
		NavKeywordMaxLinks: 2,
	}
}
