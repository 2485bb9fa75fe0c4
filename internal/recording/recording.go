// Package recording locates the files of a recording folder: exactly one
// video and exactly two sensor CSV exports, one per foot.
package recording

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Folder is a validated recording folder.
type Folder struct {
	Path      string
	VideoPath string
	RightCSV  string
	LeftCSV   string
}

var videoExts = map[string]bool{
	".mp4": true,
	".avi": true,
	".mov": true,
}

// Discover scans the folder for one video file and two CSV files. The CSVs
// are assigned to feet by filename hints ("right"/"dx" and "left"/"sx"); when
// neither name carries a hint the first in lexical order becomes the right
// foot. The caller can swap the assignment afterwards.
func Discover(path string) (*Folder, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read recording folder: %w", err)
	}

	var videos, csvs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case videoExts[ext]:
			videos = append(videos, name)
		case ext == ".csv":
			csvs = append(csvs, name)
		}
	}

	if len(videos) != 1 {
		return nil, fmt.Errorf("recording folder %s: want exactly 1 video file, found %d", path, len(videos))
	}
	if len(csvs) != 2 {
		return nil, fmt.Errorf("recording folder %s: want exactly 2 sensor CSV files, found %d", path, len(csvs))
	}

	sort.Strings(csvs)
	right, left := assignFeet(csvs[0], csvs[1])

	return &Folder{
		Path:      path,
		VideoPath: filepath.Join(path, videos[0]),
		RightCSV:  filepath.Join(path, right),
		LeftCSV:   filepath.Join(path, left),
	}, nil
}

// Swap exchanges the foot assignment of the two CSV files.
func (f *Folder) Swap() {
	f.RightCSV, f.LeftCSV = f.LeftCSV, f.RightCSV
}

// Restore applies a previously persisted assignment when both files still
// exist in the folder. Returns whether the assignment was applied.
func (f *Folder) Restore(rightName, leftName string) bool {
	if rightName == "" || leftName == "" {
		return false
	}
	r := filepath.Join(f.Path, rightName)
	l := filepath.Join(f.Path, leftName)
	if !exists(r) || !exists(l) {
		return false
	}
	f.RightCSV, f.LeftCSV = r, l
	return true
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func assignFeet(a, b string) (right, left string) {
	if isRight(a) || isLeft(b) {
		return a, b
	}
	if isRight(b) || isLeft(a) {
		return b, a
	}
	return a, b
}

func isRight(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "right") || strings.Contains(n, "destro") || strings.Contains(n, "_dx")
}

func isLeft(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "left") || strings.Contains(n, "sinistro") || strings.Contains(n, "_sx")
}
