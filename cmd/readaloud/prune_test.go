package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	main "github.com/readaloudhq/readaloud/cmd/readaloud"
	"github.com/readaloudhq/readaloud/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prunes with cutoff derived from duration", func(t *testing.T) {
		t.Parallel()

		var gotCutoff time.Time
		visits := &mock.VisitService{
			PruneBeforeFn: func(_ context.Context, cutoff time.Time) (int, error) {
				gotCutoff = cutoff
				return 7, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Visits: visits,
		}

		cmd := &main.PruneCmd{OlderThan: 720 * time.Hour}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Removed 7 rows")
		assert.WithinDuration(t, time.Now().Add(-720*time.Hour), gotCutoff, time.Minute)
	})

	t.Run("returns error when pruning fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database is locked")
		visits := &mock.VisitService{
			PruneBeforeFn: func(_ context.Context, _ time.Time) (int, error) {
				return 0, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Visits: visits,
		}

		cmd := &main.PruneCmd{OlderThan: time.Hour}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
