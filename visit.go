package readaloud

import (
	"context"
	"time"
)

// Visit records one observed page state: a successful extraction with its
// fingerprint. Visits form the reading history.
type Visit struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Framework    Framework `json:"framework"`
	ContainerTag string    `json:"containerTag"`
	UnitCount    int       `json:"unitCount"`
	Fingerprint  string    `json:"fingerprint"`
	VisitedAt    time.Time `json:"visitedAt"`
}

// Validate returns an error if the visit contains invalid fields.
func (v *Visit) Validate() error {
	if v.URL == "" {
		return Errorf(EINVALID, "visit URL required")
	}
	if v.UnitCount < 1 {
		return Errorf(EINVALID, "visit unit count must be at least 1")
	}
	return nil
}

// ChangeKind classifies what triggered a recorded change.
type ChangeKind string

// Change kinds.
const (
	ChangeAuto       ChangeKind = "auto"
	ChangeNavigation ChangeKind = "navigation"
	ChangeManual     ChangeKind = "manual"
)

// Change records one detected content change.
type Change struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Kind        ChangeKind `json:"kind"`
	UnitDelta   int        `json:"unitDelta"`
	Significant bool       `json:"significant"`
	Revisit     bool       `json:"revisit"`
	DetectedAt  time.Time  `json:"detectedAt"`
}

// Validate returns an error if the change contains invalid fields.
func (c *Change) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "change URL required")
	}
	switch c.Kind {
	case ChangeAuto, ChangeNavigation, ChangeManual:
	default:
		return Errorf(EINVALID, "unknown change kind %q", c.Kind)
	}
	return nil
}

// VisitFilter represents a filter for FindVisits.
type VisitFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ChangeFilter represents a filter for FindChanges.
type ChangeFilter struct {
	URL             *string `json:"url"`
	SignificantOnly bool    `json:"significantOnly"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RevisitTracker remembers content fingerprints seen during a session so
// changes can be tagged as revisits of previously read content. False
// positives are acceptable; false negatives are not.
type RevisitTracker interface {
	// Seen reports whether the fingerprint might have been marked before.
	Seen(fingerprint string) bool

	// Mark records the fingerprint.
	Mark(fingerprint string)
}

// VisitService stores and queries the reading history.
type VisitService interface {
	// CreateVisit records a visit.
	CreateVisit(ctx context.Context, visit *Visit) error

	// FindVisitByID retrieves a visit by ID.
	// Returns ENOTFOUND if the visit does not exist.
	FindVisitByID(ctx context.Context, id string) (*Visit, error)

	// FindVisits retrieves visits matching the filter, newest first.
	FindVisits(ctx context.Context, filter VisitFilter) ([]*Visit, error)

	// RecordChange records a detected change.
	RecordChange(ctx context.Context, change *Change) error

	// FindChanges retrieves changes matching the filter, newest first.
	FindChanges(ctx context.Context, filter ChangeFilter) ([]*Change, error)

	// PruneBefore removes visits and changes older than cutoff.
	// Returns the number of removed rows.
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)
}
