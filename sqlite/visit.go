package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/readaloudhq/readaloud"
)

// Compile-time interface verification.
var _ readaloud.VisitService = (*VisitService)(nil)

// VisitService implements readaloud.VisitService using SQLite.
type VisitService struct {
	db *DB
}

// NewVisitService creates a new VisitService.
func NewVisitService(db *DB) *VisitService {
	return &VisitService{db: db}
}

// CreateVisit records a visit.
func (s *VisitService) CreateVisit(ctx context.Context, visit *readaloud.Visit) error {
	if err := visit.Validate(); err != nil {
		return err
	}

	visit.ID = uuid.New().String()
	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (id, url, title, framework, container_tag, unit_count, fingerprint, visited_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, visit.ID, visit.URL, visit.Title, string(visit.Framework), visit.ContainerTag,
		visit.UnitCount, visit.Fingerprint, visit.VisitedAt.Format(time.RFC3339))

	return err
}

// FindVisitByID retrieves a visit by ID.
func (s *VisitService) FindVisitByID(ctx context.Context, id string) (*readaloud.Visit, error) {
	var visit readaloud.Visit
	var framework, visitedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, framework, container_tag, unit_count, fingerprint, visited_at
		FROM visits
		WHERE id = ?
	`, id).Scan(&visit.ID, &visit.URL, &visit.Title, &framework, &visit.ContainerTag,
		&visit.UnitCount, &visit.Fingerprint, &visitedAt)

	if err == sql.ErrNoRows {
		return nil, readaloud.Errorf(readaloud.ENOTFOUND, "visit not found")
	}
	if err != nil {
		return nil, err
	}

	visit.Framework = readaloud.Framework(framework)
	visit.VisitedAt, err = parseRFC3339(visitedAt, "visited_at")
	if err != nil {
		return nil, err
	}

	return &visit, nil
}

// FindVisits retrieves visits matching the filter, newest first.
func (s *VisitService) FindVisits(ctx context.Context, filter readaloud.VisitFilter) ([]*readaloud.Visit, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, framework, container_tag, unit_count, fingerprint, visited_at FROM visits WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY visited_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*readaloud.Visit
	for rows.Next() {
		var visit readaloud.Visit
		var framework, visitedAt string

		if err := rows.Scan(&visit.ID, &visit.URL, &visit.Title, &framework, &visit.ContainerTag,
			&visit.UnitCount, &visit.Fingerprint, &visitedAt); err != nil {
			return nil, err
		}

		visit.Framework = readaloud.Framework(framework)
		visit.VisitedAt, err = parseRFC3339(visitedAt, "visited_at")
		if err != nil {
			return nil, err
		}

		visits = append(visits, &visit)
	}

	return visits, rows.Err()
}

// RecordChange records a detected change.
func (s *VisitService) RecordChange(ctx context.Context, change *readaloud.Change) error {
	if err := change.Validate(); err != nil {
		return err
	}

	change.ID = uuid.New().String()
	if change.DetectedAt.IsZero() {
		change.DetectedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO changes (id, url, kind, unit_delta, significant, revisit, detected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, change.ID, change.URL, string(change.Kind), change.UnitDelta,
		boolToInt(change.Significant), boolToInt(change.Revisit),
		change.DetectedAt.Format(time.RFC3339))

	return err
}

// FindChanges retrieves changes matching the filter, newest first.
func (s *VisitService) FindChanges(ctx context.Context, filter readaloud.ChangeFilter) ([]*readaloud.Change, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, kind, unit_delta, significant, revisit, detected_at FROM changes WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.SignificantOnly {
		query.WriteString(" AND significant = 1")
	}

	query.WriteString(" ORDER BY detected_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []*readaloud.Change
	for rows.Next() {
		var change readaloud.Change
		var kind, detectedAt string
		var significant, revisit int

		if err := rows.Scan(&change.ID, &change.URL, &kind, &change.UnitDelta,
			&significant, &revisit, &detectedAt); err != nil {
			return nil, err
		}

		change.Kind = readaloud.ChangeKind(kind)
		change.Significant = significant != 0
		change.Revisit = revisit != 0
		change.DetectedAt, err = parseRFC3339(detectedAt, "detected_at")
		if err != nil {
			return nil, err
		}

		changes = append(changes, &change)
	}

	return changes, rows.Err()
}

// PruneBefore removes visits and changes older than cutoff.
// Returns the number of removed rows.
func (s *VisitService) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	cut := cutoff.UTC().Format(time.RFC3339)

	var removed int64

	result, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE visited_at < ?", cut)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	removed += n

	result, err = s.db.ExecContext(ctx, "DELETE FROM changes WHERE detected_at < ?", cut)
	if err != nil {
		return int(removed), err
	}
	n, err = result.RowsAffected()
	if err != nil {
		return int(removed), err
	}
	removed += n

	return int(removed), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseRFC3339 parses a stored timestamp column, naming the column in the
// error when the stored value is malformed.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET clauses for positive filter values.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
