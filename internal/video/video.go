// Package video is the boundary to the video file. The core never decodes
// frames; it only needs the frame count and rate to run its clock, which
// ffprobe provides without pulling a decoder into the process.
package video

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Source is what the playback clock needs from a video.
type Source interface {
	FrameCount() int
	FPS() float64
}

// Info describes a probed video file.
type Info struct {
	Path   string
	Frames int
	Rate   float64
	Width  int
	Height int
}

// FrameCount returns the number of frames in the stream.
func (i *Info) FrameCount() int { return i.Frames }

// FPS returns the stream frame rate.
func (i *Info) FPS() float64 { return i.Rate }

// Orientation reports the layout hint derived from the frame shape.
func (i *Info) Orientation() string {
	if i.Width > i.Height {
		return "horizontal"
	}
	return "vertical"
}

// Probe inspects the first video stream of the file with ffprobe.
func Probe(ffprobePath, path string) (*Info, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("video file: %w", err)
	}

	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-count_packets",
		"-show_entries", "stream=width,height,r_frame_rate,nb_read_packets",
		"-of", "csv=p=0",
		path,
	}
	out, err := exec.Command(ffprobePath, args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w, output: %s", path, err, strings.TrimSpace(string(out)))
	}

	fields := strings.Split(strings.TrimSpace(string(out)), ",")
	if len(fields) < 4 {
		return nil, fmt.Errorf("ffprobe %s: unexpected output %q", path, strings.TrimSpace(string(out)))
	}

	width, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: bad width %q", path, fields[0])
	}
	height, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: bad height %q", path, fields[1])
	}
	rate, err := parseRate(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	frames, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: bad frame count %q", path, fields[3])
	}
	if frames < 1 || rate <= 0 {
		return nil, fmt.Errorf("ffprobe %s: empty video stream", path)
	}

	return &Info{Path: path, Frames: frames, Rate: rate, Width: width, Height: height}, nil
}

// parseRate handles ffprobe's rational frame rates like "30000/1001".
func parseRate(s string) (float64, error) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("bad frame rate %q", s)
		}
		return v, nil
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("bad frame rate %q", s)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("bad frame rate %q", s)
	}
	return n / d, nil
}
