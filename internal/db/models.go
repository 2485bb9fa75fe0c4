// Package db keeps the export history in a SQLite database under the user
// data dir, so the UI can show when a recording was last exported and what
// came out of it.
package db

import "time"

// ExportRun is one recorded export of one foot.
type ExportRun struct {
	ID            string
	RecordingKey  string
	Foot          string
	WholeSegments int
	HalfSegments  int
	SkippedSlices int
	CreatedAt     time.Time
}
