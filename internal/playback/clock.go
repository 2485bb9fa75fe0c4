// Package playback owns the video position: current frame, speed multiplier
// and play/pause state. The clock never touches the decoder; it only decides
// which frame should be shown and how fast the external ticker should run.
package playback

import (
	"fmt"
	"time"
)

// Clock tracks playback position over a fixed-rate frame stream.
type Clock struct {
	frame    int
	total    int
	fps      float64
	speed    float64
	playing  bool
	finished bool
}

// New returns a paused clock at frame 0.
func New(totalFrames int, fps float64) *Clock {
	if totalFrames < 1 {
		totalFrames = 1
	}
	return &Clock{total: totalFrames, fps: fps, speed: 1.0}
}

// Frame returns the current frame index.
func (c *Clock) Frame() int { return c.frame }

// Total returns the number of frames in the stream.
func (c *Clock) Total() int { return c.total }

// FPS returns the stream frame rate.
func (c *Clock) FPS() float64 { return c.fps }

// Speed returns the playback speed multiplier.
func (c *Clock) Speed() float64 { return c.speed }

// Playing reports whether the clock is advancing on ticks.
func (c *Clock) Playing() bool { return c.playing }

// Finished reports whether the stream ran to its last frame.
func (c *Clock) Finished() bool { return c.finished }

// CurrentVideoTime returns the video timestamp of the current frame in
// seconds. This is the single time value fed into the sync engine.
func (c *Clock) CurrentVideoTime() float64 {
	return float64(c.frame) / c.fps
}

// Seek moves to the given frame, clamped into range, and pauses playback.
// Returns the frame actually landed on.
func (c *Clock) Seek(frame int) int {
	c.playing = false
	c.frame = clamp(frame, 0, c.total-1)
	c.finished = false
	return c.frame
}

// Step moves by delta frames with the same clamping and pause behavior as
// Seek.
func (c *Clock) Step(delta int) int {
	return c.Seek(c.frame + delta)
}

// Tick advances one frame while playing. Reaching the end stops playback,
// marks the stream finished and leaves the position on the last valid frame.
// Returns whether the position advanced.
func (c *Clock) Tick() bool {
	if !c.playing {
		return false
	}
	if c.frame >= c.total-1 {
		c.playing = false
		c.finished = true
		return false
	}
	c.frame++
	return true
}

// Play resumes ticking from the current position.
func (c *Clock) Play() { c.playing = true }

// Pause stops ticking without moving the position.
func (c *Clock) Pause() { c.playing = false }

// Restart rewinds to frame 0 and resumes playback. Used when playback is
// requested again after the stream finished.
func (c *Clock) Restart() {
	c.frame = 0
	c.finished = false
	c.playing = true
}

// SetSpeed changes the playback multiplier. Any positive value is accepted.
// The caller restarts its ticker with the new Interval so the change takes
// effect immediately rather than after the next pending tick.
func (c *Clock) SetSpeed(mult float64) error {
	if mult <= 0 {
		return fmt.Errorf("playback speed must be positive, got %v", mult)
	}
	c.speed = mult
	return nil
}

// Interval returns the ticker period for the current fps and speed.
func (c *Clock) Interval() time.Duration {
	return time.Duration(float64(time.Second) / (c.fps * c.speed))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
