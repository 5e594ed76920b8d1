package mock

import "github.com/readaloudhq/readaloud"

var _ readaloud.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readaloud.Extractor.
type Extractor struct {
	ExtractFn func(html string) []readaloud.ContentUnit
}

func (e *Extractor) Extract(html string) []readaloud.ContentUnit {
	return e.ExtractFn(html)
}

var _ readaloud.ContainerLocator = (*Locator)(nil)

// Locator is a mock implementation of readaloud.ContainerLocator.
type Locator struct {
	LocateFn func(html string) readaloud.ContainerInfo
}

func (l *Locator) Locate(html string) readaloud.ContainerInfo {
	return l.LocateFn(html)
}

var _ readaloud.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter is a mock implementation of readaloud.Fingerprinter.
type Fingerprinter struct {
	SnapshotFn func(url string, html string) (*readaloud.ContentSnapshot, error)
}

func (f *Fingerprinter) Snapshot(url string, html string) (*readaloud.ContentSnapshot, error) {
	return f.SnapshotFn(url, html)
}

var _ readaloud.FrameworkDetector = (*Detector)(nil)

// Detector is a mock implementation of readaloud.FrameworkDetector.
type Detector struct {
	DetectFn func(html string) readaloud.Framework
}

func (d *Detector) Detect(html string) readaloud.Framework {
	return d.DetectFn(html)
}
