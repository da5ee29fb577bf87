package domain

import "time"

// Run records one generation of a summary
type Run struct {
	ID          int64
	SourceDir   string
	Fingerprint string // Fingerprint of the rendered summary
	Changed     bool   // Whether SUMMARY.md was rewritten
	Documents   int
	Groups      int
	Duration    time.Duration
	CreatedAt   time.Time
}

// GenerateStats holds statistics from a generation
type GenerateStats struct {
	Groups    int
	Documents int
	Lines     int
	Duration  time.Duration
}
