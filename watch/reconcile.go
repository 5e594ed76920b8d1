package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/readaloudhq/readaloud"
)

// Reconcile re-extracts the page and migrates the given playback state
// onto the new unit list by positional index clamping. Active speech is
// never preempted; the list is swapped underneath the current utterance.
// Returns ECONFLICT when another check or reconciliation is in flight:
// the newer request is dropped, not queued.
func (w *Watcher) Reconcile(ctx context.Context, prev readaloud.PlaybackState) (*Result, error) {
	return w.reconcile(ctx, prev, readaloud.ChangeAuto)
}

func (w *Watcher) reconcile(ctx context.Context, prev readaloud.PlaybackState, kind readaloud.ChangeKind) (*Result, error) {
	cfg := w.config()

	w.mu.Lock()
	if w.phase != PhaseIdle {
		w.mu.Unlock()
		return nil, readaloud.Errorf(readaloud.ECONFLICT, "reconciliation already in flight")
	}
	w.phase = PhaseReconciling
	prevCount := len(w.units)
	w.mu.Unlock()

	obs, err := w.observe(ctx)

	w.mu.Lock()
	w.phase = PhaseIdle
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	result := w.applyLocked(obs, prev.ClampTo(len(obs.units)), prevCount, cfg.SignificantAutoDelta)
	w.mu.Unlock()

	w.record(ctx, obs, result, prevCount, kind)
	return result, nil
}

// ManualRefresh is the hard-reset path: it bypasses suppression, cancels
// any active utterance, relocates the container from scratch, and always
// restarts from unit 0 regardless of the previous index.
func (w *Watcher) ManualRefresh(ctx context.Context) (*Result, error) {
	cfg := w.config()

	w.mu.Lock()
	if w.phase == PhaseChecking || w.phase == PhaseReconciling {
		w.mu.Unlock()
		return nil, readaloud.Errorf(readaloud.ECONFLICT, "reconciliation already in flight")
	}
	restore := w.phase
	w.phase = PhaseReconciling
	prev := w.state
	prevCount := len(w.units)
	w.mu.Unlock()

	if w.Speech != nil {
		w.Speech.Cancel()
	}

	// The extractor locates the container from scratch on every call, so
	// no cached container survives a refresh.
	obs, err := w.observe(ctx)

	w.mu.Lock()
	w.phase = restore
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	next := readaloud.PlaybackState{Status: prev.Status, UnitIndex: 0}
	result := w.applyLocked(obs, next, prevCount, cfg.SignificantManualDelta)
	w.mu.Unlock()

	w.record(ctx, obs, result, prevCount, readaloud.ChangeManual)
	return result, nil
}

// applyLocked installs an observation as the new baseline and builds the
// reconciliation result. Callers hold the mutex.
func (w *Watcher) applyLocked(obs *observation, next readaloud.PlaybackState, prevCount int, significantDelta int) *Result {
	w.units = obs.units
	w.snapshot = obs.snapshot
	w.url = obs.url
	w.title = obs.title
	w.framework = obs.framework
	w.state = next

	result := &Result{
		Units:       obs.units,
		State:       next,
		Significant: obs.unitDelta(prevCount) > significantDelta,
	}
	if w.Revisits != nil {
		fp := Fingerprint(obs.snapshot)
		result.Revisit = w.Revisits.Seen(fp)
		w.Revisits.Mark(fp)
	}
	return result
}

// record writes the visit and change to the history service. History is
// best-effort bookkeeping; failures never surface to the caller.
func (w *Watcher) record(ctx context.Context, obs *observation, result *Result, prevCount int, kind readaloud.ChangeKind) {
	if w.Visits == nil {
		return
	}

	now := time.Now()
	_ = w.Visits.CreateVisit(ctx, &readaloud.Visit{
		URL:          obs.url,
		Title:        obs.title,
		Framework:    obs.framework,
		ContainerTag: obs.snapshot.Context.ContainerTag,
		UnitCount:    len(obs.units),
		Fingerprint:  Fingerprint(obs.snapshot),
		VisitedAt:    now,
	})
	_ = w.Visits.RecordChange(ctx, &readaloud.Change{
		URL:         obs.url,
		Kind:        kind,
		UnitDelta:   len(result.Units) - prevCount,
		Significant: result.Significant,
		Revisit:     result.Revisit,
		DetectedAt:  now,
	})
}

// recordVisit writes the initial visit taken by Start.
func (w *Watcher) recordVisit(ctx context.Context, obs *observation) {
	if w.Revisits != nil {
		w.Revisits.Mark(Fingerprint(obs.snapshot))
	}
	if w.Visits == nil {
		return
	}
	_ = w.Visits.CreateVisit(ctx, &readaloud.Visit{
		URL:          obs.url,
		Title:        obs.title,
		Framework:    obs.framework,
		ContainerTag: obs.snapshot.Context.ContainerTag,
		UnitCount:    len(obs.units),
		Fingerprint:  Fingerprint(obs.snapshot),
		VisitedAt:    time.Now(),
	})
}

// Fingerprint returns the stable hex fingerprint of a snapshot.
func Fingerprint(snapshot *readaloud.ContentSnapshot) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(snapshot.Key()))
}
