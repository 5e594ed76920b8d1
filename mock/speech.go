package mock

import (
	"context"
	"sync/atomic"

	"github.com/readaloudhq/readaloud"
)

var _ readaloud.SpeechEngine = (*SpeechEngine)(nil)

// SpeechEngine is a mock implementation of readaloud.SpeechEngine. The
// boolean state fields back the default method behavior; assign the Fn
// fields to override it.
type SpeechEngine struct {
	SpeakFn  func(ctx context.Context, u readaloud.Utterance) error
	CancelFn func()

	SpeakingState atomic.Bool
	PausedState   atomic.Bool
	CancelCount   atomic.Int64
}

func (e *SpeechEngine) Speak(ctx context.Context, u readaloud.Utterance) error {
	if e.SpeakFn != nil {
		return e.SpeakFn(ctx, u)
	}
	e.SpeakingState.Store(true)
	return nil
}

func (e *SpeechEngine) Cancel() {
	e.CancelCount.Add(1)
	e.SpeakingState.Store(false)
	e.PausedState.Store(false)
	if e.CancelFn != nil {
		e.CancelFn()
	}
}

func (e *SpeechEngine) Pause() {
	e.SpeakingState.Store(false)
	e.PausedState.Store(true)
}

func (e *SpeechEngine) Resume() {
	e.PausedState.Store(false)
	e.SpeakingState.Store(true)
}

func (e *SpeechEngine) Speaking() bool {
	return e.SpeakingState.Load()
}

func (e *SpeechEngine) Paused() bool {
	return e.PausedState.Load()
}
