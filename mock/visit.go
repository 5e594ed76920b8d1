package mock

import (
	"context"
	"time"

	"github.com/readaloudhq/readaloud"
)

var _ readaloud.VisitService = (*VisitService)(nil)

// VisitService is a mock implementation of readaloud.VisitService.
type VisitService struct {
	CreateVisitFn   func(ctx context.Context, visit *readaloud.Visit) error
	FindVisitByIDFn func(ctx context.Context, id string) (*readaloud.Visit, error)
	FindVisitsFn    func(ctx context.Context, filter readaloud.VisitFilter) ([]*readaloud.Visit, error)
	RecordChangeFn  func(ctx context.Context, change *readaloud.Change) error
	FindChangesFn   func(ctx context.Context, filter readaloud.ChangeFilter) ([]*readaloud.Change, error)
	PruneBeforeFn   func(ctx context.Context, cutoff time.Time) (int, error)
}

func (s *VisitService) CreateVisit(ctx context.Context, visit *readaloud.Visit) error {
	return s.CreateVisitFn(ctx, visit)
}

func (s *VisitService) FindVisitByID(ctx context.Context, id string) (*readaloud.Visit, error) {
	return s.FindVisitByIDFn(ctx, id)
}

func (s *VisitService) FindVisits(ctx context.Context, filter readaloud.VisitFilter) ([]*readaloud.Visit, error) {
	return s.FindVisitsFn(ctx, filter)
}

func (s *VisitService) RecordChange(ctx context.Context, change *readaloud.Change) error {
	return s.RecordChangeFn(ctx, change)
}

func (s *VisitService) FindChanges(ctx context.Context, filter readaloud.ChangeFilter) ([]*readaloud.Change, error) {
	return s.FindChangesFn(ctx, filter)
}

func (s *VisitService) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return s.PruneBeforeFn(ctx, cutoff)
}

var _ readaloud.RevisitTracker = (*RevisitTracker)(nil)

// RevisitTracker is a mock implementation of readaloud.RevisitTracker.
type RevisitTracker struct {
	SeenFn func(fingerprint string) bool
	MarkFn func(fingerprint string)
}

func (t *RevisitTracker) Seen(fingerprint string) bool {
	return t.SeenFn(fingerprint)
}

func (t *RevisitTracker) Mark(fingerprint string) {
	t.MarkFn(fingerprint)
}
