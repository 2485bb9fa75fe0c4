package app

import (
	"gaitsync/internal/export"
)

// playTickMsg drives playback. The generation number ties a tick to the
// ticker that scheduled it: changing speed or pausing bumps the generation,
// so a tick already in flight from the old cadence is ignored when it lands.
type playTickMsg struct {
	gen int
}

// exportDoneMsg carries the outcome of an export run.
type exportDoneMsg struct {
	result *export.Result
	err    error
}

// clearStatusMsg clears a transient status line after a timeout.
type clearStatusMsg struct{}
