// Package readaloud provides the content core of a read-aloud agent: it
// locates the main readable container of a web page, segments it into an
// ordered list of speakable units, watches the page for single-page-app
// content changes, and reconciles in-flight playback state with the
// refreshed unit list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package readaloud
