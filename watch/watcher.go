// Package watch provides content change detection and playback
// reconciliation for single-page applications. It coordinates a page
// source, extractor, and fingerprinter into a debounced check loop and
// migrates playback state across re-extractions.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/readaloudhq/readaloud"
)

// Phase is the watcher's lifecycle state. Modeling the cooperative guard
// flags as one state machine makes illegal combinations unrepresentable:
// a check cannot start while a reconciliation holds the phase, and a
// suppressed watcher cannot be mid-check.
type Phase int

// Watcher phases.
const (
	PhaseIdle Phase = iota
	PhaseChecking
	PhaseReconciling
	PhaseSuppressed
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseChecking:
		return "checking"
	case PhaseReconciling:
		return "reconciling"
	case PhaseSuppressed:
		return "suppressed"
	default:
		return "idle"
	}
}

// PendingChange is delivered to the change callback when a check detects a
// content change, before the debounced reconciliation runs.
type PendingChange struct {
	URL       string
	Title     string
	Kind      readaloud.ChangeKind
	UnitDelta int
}

// Result holds the outcome of a reconciliation.
type Result struct {
	Units       []readaloud.ContentUnit
	State       readaloud.PlaybackState
	Significant bool
	Revisit     bool
}

// Watcher orchestrates change detection and reconciliation for one page.
type Watcher struct {
	Source        readaloud.PageSource
	Extractor     readaloud.Extractor
	Fingerprinter readaloud.Fingerprinter
	Locator       readaloud.ContainerLocator
	Detector      readaloud.FrameworkDetector
	Speech        readaloud.SpeechEngine

	// Optional collaborators.
	Activity readaloud.ActivitySource
	Visits   readaloud.VisitService
	Revisits readaloud.RevisitTracker

	// Config falls back to DefaultConfig when zero.
	Config Config

	mu               sync.Mutex
	phase            Phase
	hidden           bool
	wake             chan struct{}
	pendingCheck     bool
	pendingReconcile bool
	pendingKind      readaloud.ChangeKind
	units            []readaloud.ContentUnit
	state            readaloud.PlaybackState
	snapshot         *readaloud.ContentSnapshot
	url              string
	title            string
	framework        readaloud.Framework
	onChange         func(PendingChange)
}

// config returns the effective configuration.
func (w *Watcher) config() Config {
	if w.Config == (Config{}) {
		return DefaultConfig()
	}
	return w.Config
}

// OnChangeDetected registers the callback fired when a check detects a
// change. The callback runs before the debounced reconciliation.
func (w *Watcher) OnChangeDetected(fn func(PendingChange)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// CurrentPhase returns the watcher's current phase.
func (w *Watcher) CurrentPhase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Units returns a copy of the current unit list.
func (w *Watcher) Units() []readaloud.ContentUnit {
	w.mu.Lock()
	defer w.mu.Unlock()
	units := make([]readaloud.ContentUnit, len(w.units))
	copy(units, w.units)
	return units
}

// State returns the playback state the watcher last observed.
func (w *Watcher) State() readaloud.PlaybackState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SetPlaybackState informs the watcher of the player's current state so
// scheduled reconciliations migrate the right position.
func (w *Watcher) SetPlaybackState(state readaloud.PlaybackState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = state
}

// SetHidden informs the watcher of page visibility, which selects the
// background poll bucket. A visibility change re-arms the poll timer so a
// page returning to the foreground does not wait out a stale background
// interval.
func (w *Watcher) SetHidden(hidden bool) {
	w.mu.Lock()
	changed := w.hidden != hidden
	w.hidden = hidden
	ch := w.wakeLocked()
	w.mu.Unlock()

	if changed {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// wakeLocked returns the poll-loop wake channel, creating it on first use.
// Callers hold the mutex.
func (w *Watcher) wakeLocked() chan struct{} {
	if w.wake == nil {
		w.wake = make(chan struct{}, 1)
	}
	return w.wake
}

// PauseDetection suppresses checks until ResumeDetection. An in-flight
// check or reconciliation completes first. Manual refresh stays available.
func (w *Watcher) PauseDetection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase == PhaseIdle {
		w.phase = PhaseSuppressed
	}
}

// ResumeDetection lifts the suppression set by PauseDetection.
func (w *Watcher) ResumeDetection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase == PhaseSuppressed {
		w.phase = PhaseIdle
	}
}

// Container locates the main content container of the current page.
func (w *Watcher) Container(ctx context.Context) (readaloud.ContainerInfo, error) {
	page, err := w.Source.State(ctx)
	if err != nil {
		return readaloud.ContainerInfo{}, err
	}
	return w.Locator.Locate(page.HTML), nil
}

// HandleNavigation schedules a check after the navigation settle delay.
func (w *Watcher) HandleNavigation(ev readaloud.NavigationEvent) {
	cfg := w.config()
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scheduleCheckLocked(cfg.NavigationDelay(ev.Kind), readaloud.ChangeNavigation)
}

// HandleMutation schedules a check for significant mutations. Mutations
// are dropped entirely while audio plays or detection is paused.
func (w *Watcher) HandleMutation(m readaloud.Mutation) {
	cfg := w.config()
	if !cfg.SignificantMutation(m) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase == PhaseSuppressed || (w.Speech != nil && w.Speech.Speaking()) {
		return
	}
	w.scheduleCheckLocked(cfg.MutationDelay, readaloud.ChangeAuto)
}

// scheduleCheckLocked arms the check timer unless one is already pending.
// First trigger wins for the duration of the delay window.
func (w *Watcher) scheduleCheckLocked(delay time.Duration, kind readaloud.ChangeKind) {
	if w.pendingCheck {
		return
	}
	w.pendingCheck = true
	time.AfterFunc(delay, func() {
		w.mu.Lock()
		w.pendingCheck = false
		w.mu.Unlock()
		_, _ = w.check(context.Background(), kind)
	})
}

// scheduleReconcileLocked arms the reconcile timer unless one is already
// pending. A second change within the debounce window is a no-op.
func (w *Watcher) scheduleReconcileLocked(delay time.Duration, kind readaloud.ChangeKind) {
	if w.pendingReconcile {
		return
	}
	w.pendingReconcile = true
	w.pendingKind = kind
	time.AfterFunc(delay, func() {
		w.mu.Lock()
		w.pendingReconcile = false
		state := w.state
		w.mu.Unlock()
		_, _ = w.reconcile(context.Background(), state, kind)
	})
}

// Run starts the watcher: it takes the initial baseline, wires the
// source's navigation and mutation capabilities when present, and polls
// at the adaptive interval until the context is canceled. The armed timer
// is discarded and re-armed whenever the poll bucket changes, so a
// visibility change takes effect immediately rather than after the stale
// interval elapses.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}

	if ns, ok := w.Source.(readaloud.NavigationSource); ok {
		ns.OnNavigate(w.HandleNavigation)
	}
	if ms, ok := w.Source.(readaloud.MutationSource); ok {
		ms.OnMutation(w.HandleMutation)
	}

	w.mu.Lock()
	wake := w.wakeLocked()
	w.mu.Unlock()

	cfg := w.config()
	for {
		timer := time.NewTimer(cfg.PollInterval(w.pollBucketInputs()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-wake:
			timer.Stop()
		case <-timer.C:
			_, _ = w.check(ctx, readaloud.ChangeAuto)
		}
	}
}

// pollBucketInputs gathers the adaptive-poll inputs.
func (w *Watcher) pollBucketInputs() (hidden bool, sinceInput time.Duration, knownFramework bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	sinceInput = time.Duration(1<<62 - 1)
	if w.Activity != nil {
		if last := w.Activity.LastInput(); !last.IsZero() {
			sinceInput = time.Since(last)
		}
	}
	return w.hidden, sinceInput, w.framework != readaloud.FrameworkUnknown
}

// Start takes the initial extraction baseline and records the first visit.
func (w *Watcher) Start(ctx context.Context) error {
	obs, err := w.observe(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.units = obs.units
	w.snapshot = obs.snapshot
	w.url = obs.url
	w.title = obs.title
	w.framework = obs.framework
	w.state = readaloud.PlaybackState{}
	w.mu.Unlock()

	w.recordVisit(ctx, obs)
	return nil
}
