package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/readaloudhq/readaloud"
)

// Ensure SessionStore implements readaloud.TranscriptWriter at compile time.
var _ readaloud.TranscriptWriter = (*SessionStore)(nil)

// SessionStore exports a whole reading session's transcripts with atomic
// update semantics. Transcripts are saved to a temporary directory, then
// moved atomically on Commit, so a partially exported session never
// replaces a previous complete one.
type SessionStore struct {
	baseDir string
	name    string
}

// NewSessionStore creates a new SessionStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSessionStore(baseDir, name string) *SessionStore {
	return &SessionStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SessionStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SessionStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteTranscript saves a transcript into the pending session directory.
func (s *SessionStore) WriteTranscript(ctx context.Context, t *readaloud.Transcript) error {
	if err := t.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(t.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatTranscript(t)), 0644)
}

// Commit atomically replaces the final directory with the pending one.
func (s *SessionStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards the pending session directory.
func (s *SessionStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
