package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/readaloudhq/readaloud/cmd/readaloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// --help should return nil (success) and show commands
	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	expectedCommands := []string{"extract", "detect", "watch", "history", "export", "prune"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_NoArgsShowsHelpAndErrors(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "extract")
}

func TestMain_Run_UnknownCommandErrors(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)
	require.Error(t, err)
}

func TestMain_Run_HistoryAgainstFreshDatabase(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"history"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No visits recorded")
}

func TestMain_Run_PruneAgainstFreshDatabase(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"prune", "720h"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Removed 0 rows")
}

func TestMain_Run_BadDatabasePathErrors(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = "/nonexistent/dir/test.db"

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"history"}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "READALOUD_DB")
}
