package readaloud

import "context"

// PlaybackStatus enumerates the player states this core reasons about.
type PlaybackStatus int

// Playback statuses.
const (
	StatusIdle PlaybackStatus = iota
	StatusPlaying
	StatusPaused
)

// String returns the lowercase status name.
func (s PlaybackStatus) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "idle"
	}
}

// PlaybackState is the player position to preserve across a re-extraction.
type PlaybackState struct {
	Status    PlaybackStatus `json:"status"`
	UnitIndex int            `json:"unitIndex"`
}

// ClampTo migrates the state onto a unit list of length n by positional
// index clamping. No content-based matching is attempted. Idle always maps
// to unit 0.
func (s PlaybackState) ClampTo(n int) PlaybackState {
	if s.Status == StatusIdle {
		return PlaybackState{Status: StatusIdle, UnitIndex: 0}
	}
	idx := s.UnitIndex
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return PlaybackState{Status: s.Status, UnitIndex: idx}
}

// Utterance is one piece of text handed to the speech engine, with optional
// callbacks carrying progress events back from the engine.
type Utterance struct {
	Text string

	// OnBoundary is called with a character index as speech progresses.
	OnBoundary func(charIndex int)

	// OnEnd is called when the utterance completes normally.
	OnEnd func()

	// OnError is called if synthesis fails mid-utterance.
	OnError func(err error)
}

// SpeechEngine is the opaque speech-synthesis capability this core consumes.
// It does not implement speech; it only reasons about whether speech is
// active to decide change-detection suppression.
type SpeechEngine interface {
	// Speak starts synthesis of the utterance. It returns once synthesis
	// has been accepted; completion is reported via the utterance callbacks.
	Speak(ctx context.Context, u Utterance) error

	// Cancel stops any active or pending utterance.
	Cancel()

	// Pause suspends the active utterance.
	Pause()

	// Resume continues a paused utterance.
	Resume()

	// Speaking reports whether an utterance is actively being spoken.
	Speaking() bool

	// Paused reports whether the engine is paused mid-utterance.
	Paused() bool
}
