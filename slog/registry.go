package slog

import (
	"log/slog"
	"time"

	"github.com/readaloudhq/readaloud"
)

// Ensure LoggingRegistry implements readaloud.ProfileRegistry.
var _ readaloud.ProfileRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ProfileRegistry with debug logging for framework detection.
type LoggingRegistry struct {
	next     readaloud.ProfileRegistry
	detector readaloud.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next readaloud.ProfileRegistry, detector readaloud.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework readaloud.Framework) readaloud.Profile {
	return r.next.Get(framework)
}

// GetForHTML detects the framework, logs it, and returns the appropriate profile.
func (r *LoggingRegistry) GetForHTML(html string) readaloud.Profile {
	begin := time.Now()
	framework := r.detector.Detect(html)
	frameworkName := string(framework)
	if framework == readaloud.FrameworkUnknown {
		frameworkName = "(unknown)"
	}
	r.logger.Info("framework detection",
		"framework", frameworkName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework readaloud.Framework, profile readaloud.Profile) {
	r.next.Register(framework, profile)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []readaloud.Framework {
	return r.next.List()
}
