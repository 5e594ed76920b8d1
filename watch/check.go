package watch

import (
	"context"

	"github.com/readaloudhq/readaloud"
)

// observation is one full read of the page: state, fingerprint, units.
type observation struct {
	url       string
	title     string
	snapshot  *readaloud.ContentSnapshot
	units     []readaloud.ContentUnit
	framework readaloud.Framework
}

// observe reads the page and derives the snapshot, unit list, and
// framework. Extraction fully completes before any caller reads the
// result; there is no partial observation.
func (w *Watcher) observe(ctx context.Context) (*observation, error) {
	page, err := w.Source.State(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := w.Fingerprinter.Snapshot(page.URL, page.HTML)
	if err != nil {
		return nil, err
	}

	obs := &observation{
		url:      page.URL,
		title:    snapshot.Context.Title,
		snapshot: snapshot,
		units:    w.Extractor.Extract(page.HTML),
	}
	if w.Detector != nil {
		obs.framework = w.Detector.Detect(page.HTML)
	}
	return obs, nil
}

// Check recomputes the page's URL, title, snapshot, and unit count and
// reports whether the content changed. On change it raises the pending
// indicator and schedules a debounced reconciliation. Checks are
// suppressed while audio plays, while detection is paused, and while a
// check or reconciliation is already in flight.
func (w *Watcher) Check(ctx context.Context) (bool, error) {
	return w.check(ctx, readaloud.ChangeAuto)
}

func (w *Watcher) check(ctx context.Context, kind readaloud.ChangeKind) (bool, error) {
	cfg := w.config()

	w.mu.Lock()
	if w.phase != PhaseIdle || (w.Speech != nil && w.Speech.Speaking()) {
		w.mu.Unlock()
		return false, nil
	}
	w.phase = PhaseChecking
	prevURL := w.url
	prevTitle := w.title
	prevSnapshot := w.snapshot
	prevCount := len(w.units)
	w.mu.Unlock()

	obs, err := w.observe(ctx)

	w.mu.Lock()
	w.phase = PhaseIdle
	if err != nil {
		w.mu.Unlock()
		return false, err
	}

	delta := obs.unitDelta(prevCount)
	changed := obs.url != prevURL ||
		obs.title != prevTitle ||
		(!obs.snapshot.Equal(prevSnapshot) && len(obs.snapshot.TextSample) > cfg.SnapshotMinLength) ||
		delta > cfg.CountDeltaThreshold
	if !changed {
		// Fresh extraction is discarded when nothing changed.
		w.mu.Unlock()
		return false, nil
	}

	notify := w.onChange
	w.scheduleReconcileLocked(cfg.ReconcileDebounce, kind)
	w.mu.Unlock()

	// The callback runs outside the lock so it may call back into the
	// watcher.
	if notify != nil {
		notify(PendingChange{
			URL:       obs.url,
			Title:     obs.title,
			Kind:      kind,
			UnitDelta: len(obs.units) - prevCount,
		})
	}
	return true, nil
}

// unitDelta returns the absolute unit-count delta against a prior count.
func (o *observation) unitDelta(prevCount int) int {
	delta := len(o.units) - prevCount
	if delta < 0 {
		delta = -delta
	}
	return delta
}
