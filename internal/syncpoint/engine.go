// Package syncpoint owns the alignment between the video clock and the
// sensor-stream clock: a single scalar offset such that
// videoTime = dataTime + offset, and the two-phase capture flow that
// establishes it from one video frame and one data sample.
package syncpoint

import (
	"errors"
	"fmt"

	"gaitsync/internal/timeseries"
)

// State is the capture phase of the engine.
type State int

const (
	// Idle means no capture is in progress; the offset is stable.
	Idle State = iota
	// AwaitingVideoPoint means Begin was called and the engine waits for
	// the video-side anchor.
	AwaitingVideoPoint
	// AwaitingDataPoint means the video anchor is captured and the engine
	// waits for the data-side anchor.
	AwaitingDataPoint
)

func (s State) String() string {
	switch s {
	case AwaitingVideoPoint:
		return "awaiting video point"
	case AwaitingDataPoint:
		return "awaiting data point"
	default:
		return "idle"
	}
}

// ErrInvalidState is returned when a capture operation is called out of
// sequence. The engine's state is left unchanged.
var ErrInvalidState = errors.New("sync capture out of sequence")

// Engine holds the offset and the capture state machine. The video anchor
// only exists while in AwaitingDataPoint; the data anchor is folded into the
// offset the moment it is captured, so no partially-applied state can be
// observed.
type Engine struct {
	offset      float64
	state       State
	videoAnchor float64
}

// New returns an idle engine with the given persisted offset.
func New(offset float64) *Engine {
	return &Engine{offset: offset}
}

// State returns the current capture phase.
func (e *Engine) State() State { return e.state }

// Offset returns the current scalar offset in seconds.
func (e *Engine) Offset() float64 { return e.offset }

// SetOffset overwrites the offset directly (session restore, reset).
func (e *Engine) SetOffset(v float64) { e.offset = v }

// Begin starts a capture. It is only valid while idle.
func (e *Engine) Begin() error {
	if e.state != Idle {
		return fmt.Errorf("begin sync in state %q: %w", e.state, ErrInvalidState)
	}
	e.state = AwaitingVideoPoint
	return nil
}

// CaptureVideoAnchor records the current video time as the video-side anchor.
func (e *Engine) CaptureVideoAnchor(videoTime float64) error {
	if e.state != AwaitingVideoPoint {
		return fmt.Errorf("capture video anchor in state %q: %w", e.state, ErrInvalidState)
	}
	e.videoAnchor = videoTime
	e.state = AwaitingDataPoint
	return nil
}

// CaptureDataAnchor resolves the clicked data time to the nearest existing
// sample in series and completes the capture: the offset becomes
// videoAnchor - snappedDataTime, the transient anchor is cleared and the
// engine returns to Idle. Snapping to a real sample keeps everything derived
// from the offset aligned with actual data rows.
func (e *Engine) CaptureDataAnchor(clicked float64, series *timeseries.Series) error {
	if e.state != AwaitingDataPoint {
		return fmt.Errorf("capture data anchor in state %q: %w", e.state, ErrInvalidState)
	}
	snapped := series.NearestTime(clicked)
	e.offset = e.videoAnchor - snapped
	e.videoAnchor = 0
	e.state = Idle
	return nil
}

// Cancel abandons any capture in progress and returns to Idle, discarding
// the partial anchor. Safe to call at any time.
func (e *Engine) Cancel() {
	e.videoAnchor = 0
	e.state = Idle
}

// ToVideoTime maps a data-stream time onto the video clock.
func (e *Engine) ToVideoTime(dataTime float64) float64 {
	return dataTime + e.offset
}

// ToDataTime maps a video time onto the data-stream clock.
func (e *Engine) ToDataTime(videoTime float64) float64 {
	return videoTime - e.offset
}
