package playback

import (
	"testing"
	"time"
)

func TestSeekClamps(t *testing.T) {
	c := New(100, 30)

	if got := c.Seek(-5); got != 0 {
		t.Errorf("Seek(-5) = %d, want 0", got)
	}
	if got := c.Seek(500); got != 99 {
		t.Errorf("Seek(500) = %d, want 99", got)
	}
}

func TestSeekPauses(t *testing.T) {
	c := New(100, 30)
	c.Play()
	c.Seek(10)
	if c.Playing() {
		t.Error("still playing after Seek")
	}
}

func TestStep(t *testing.T) {
	c := New(100, 30)
	c.Seek(10)

	if got := c.Step(5); got != 15 {
		t.Errorf("Step(5) = %d, want 15", got)
	}
	if got := c.Step(-100); got != 0 {
		t.Errorf("Step(-100) = %d, want 0", got)
	}
}

func TestTickAdvancesWhilePlaying(t *testing.T) {
	c := New(3, 30)

	if c.Tick() {
		t.Error("Tick advanced while paused")
	}

	c.Play()
	if !c.Tick() {
		t.Error("Tick did not advance while playing")
	}
	if c.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", c.Frame())
	}
}

func TestTickStopsAtEnd(t *testing.T) {
	c := New(3, 30)
	c.Play()
	c.Tick() // 1
	c.Tick() // 2, last frame

	if c.Tick() {
		t.Error("Tick advanced past the last frame")
	}
	if c.Playing() {
		t.Error("still playing at end of stream")
	}
	if !c.Finished() {
		t.Error("Finished() = false at end of stream")
	}
	if c.Frame() != 2 {
		t.Errorf("Frame() = %d, want 2", c.Frame())
	}
}

func TestRestartAfterFinish(t *testing.T) {
	c := New(2, 30)
	c.Play()
	c.Tick()
	c.Tick()

	c.Restart()
	if c.Frame() != 0 || !c.Playing() || c.Finished() {
		t.Errorf("after Restart: frame=%d playing=%v finished=%v, want 0 true false",
			c.Frame(), c.Playing(), c.Finished())
	}
}

func TestCurrentVideoTime(t *testing.T) {
	c := New(100, 25)
	c.Seek(50)
	if got := c.CurrentVideoTime(); got != 2.0 {
		t.Errorf("CurrentVideoTime() = %v, want 2.0", got)
	}
}

func TestSetSpeed(t *testing.T) {
	c := New(100, 30)

	if err := c.SetSpeed(0); err == nil {
		t.Error("SetSpeed(0) succeeded, want error")
	}
	if err := c.SetSpeed(-1); err == nil {
		t.Error("SetSpeed(-1) succeeded, want error")
	}
	if err := c.SetSpeed(2); err != nil {
		t.Fatalf("SetSpeed(2): %v", err)
	}
	if c.Speed() != 2 {
		t.Errorf("Speed() = %v, want 2", c.Speed())
	}
}

func TestIntervalScalesWithSpeed(t *testing.T) {
	c := New(100, 25)

	if got := c.Interval(); got != 40*time.Millisecond {
		t.Errorf("Interval() at 1x = %v, want 40ms", got)
	}

	c.SetSpeed(2)
	if got := c.Interval(); got != 20*time.Millisecond {
		t.Errorf("Interval() at 2x = %v, want 20ms", got)
	}
}

func TestNewClampsTotal(t *testing.T) {
	c := New(0, 30)
	if c.Total() != 1 {
		t.Errorf("Total() = %d, want 1", c.Total())
	}
}
