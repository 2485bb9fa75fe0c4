package video

import (
	"math"
	"testing"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 29.97002997002997},
		{"25", 25},
	}
	for _, c := range cases {
		got, err := parseRate(c.in)
		if err != nil {
			t.Errorf("parseRate(%q): %v", c.in, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("parseRate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseRateInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "30/0", "30/x"} {
		if _, err := parseRate(in); err == nil {
			t.Errorf("parseRate(%q) succeeded, want error", in)
		}
	}
}

func TestOrientation(t *testing.T) {
	landscape := &Info{Width: 1920, Height: 1080}
	if got := landscape.Orientation(); got != "horizontal" {
		t.Errorf("Orientation() = %q, want horizontal", got)
	}
	portrait := &Info{Width: 1080, Height: 1920}
	if got := portrait.Orientation(); got != "vertical" {
		t.Errorf("Orientation() = %q, want vertical", got)
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := Probe("ffprobe", "/does/not/exist.mp4"); err == nil {
		t.Error("Probe on missing file succeeded, want error")
	}
}
