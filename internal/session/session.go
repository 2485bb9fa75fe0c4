// Package session persists per-recording state. Each opened recording folder
// gets one JSON document under the user data dir, keyed by a hash of the
// folder path, rewritten on every mutation. A missing or malformed document
// is treated as "no prior session" and replaced with defaults.
package session

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is the persisted state for one recording folder. Marker lists are
// stored in insertion order, exactly as held in memory.
type Document struct {
	SyncOffset       float64   `json:"sync_offset"`
	PlaybackSpeed    float64   `json:"playback_speed"`
	CurrentFrame     int       `json:"current_frame"`
	SelectedColumns  []string  `json:"selected_columns"`
	RightCSV         string    `json:"right_csv"`
	LeftCSV          string    `json:"left_csv"`
	Theme            string    `json:"theme"`
	StepRight        []float64 `json:"step_markers_right"`
	StepLeft         []float64 `json:"step_markers_left"`
	HalfRight        []float64 `json:"emiciclo_markers_right"`
	HalfLeft         []float64 `json:"emiciclo_markers_left"`
	ShowSteps        bool      `json:"show_steps"`
	VideoOrientation string    `json:"video_layout_orientation"`
}

// Defaults returns the document used when no prior session exists.
func Defaults() *Document {
	return &Document{
		PlaybackSpeed: 1.0,
		Theme:         "dark",
		ShowSteps:     true,
	}
}

type appState struct {
	LastFolder string `json:"last_folder"`
}

// Store reads and writes session documents under a data directory.
type Store struct {
	dir string
}

// DefaultDir returns the per-user data directory for the application.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "gaitsync")
}

// NewStore returns a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Key derives the stable identifier for a recording folder path.
func Key(folder string) string {
	sum := sha1.Sum([]byte(filepath.Clean(folder)))
	return hex.EncodeToString(sum[:])
}

// Load returns the session document for the recording folder. Absent or
// unreadable documents yield Defaults, never an error: bad persisted state
// must not block opening a recording.
func (s *Store) Load(folder string) *Document {
	data, err := os.ReadFile(s.docPath(folder))
	if err != nil {
		return Defaults()
	}
	doc := Defaults()
	if err := json.Unmarshal(data, doc); err != nil {
		return Defaults()
	}
	if doc.PlaybackSpeed <= 0 {
		doc.PlaybackSpeed = 1.0
	}
	if doc.CurrentFrame < 0 {
		doc.CurrentFrame = 0
	}
	return doc
}

// Save writes the document for the recording folder atomically.
func (s *Store) Save(folder string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := writeFileAtomic(s.docPath(folder), data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Reset deletes the persisted document for the recording folder.
func (s *Store) Reset(folder string) error {
	err := os.Remove(s.docPath(folder))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// LastFolder returns the most recently opened recording folder, or "".
func (s *Store) LastFolder() string {
	data, err := os.ReadFile(filepath.Join(s.dir, "app.json"))
	if err != nil {
		return ""
	}
	var st appState
	if err := json.Unmarshal(data, &st); err != nil {
		return ""
	}
	return st.LastFolder
}

// SetLastFolder records the most recently opened recording folder.
func (s *Store) SetLastFolder(folder string) error {
	data, err := json.Marshal(appState{LastFolder: folder})
	if err != nil {
		return fmt.Errorf("marshal app state: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, "app.json"), data, 0o644); err != nil {
		return fmt.Errorf("write app state: %w", err)
	}
	return nil
}

func (s *Store) docPath(folder string) string {
	return filepath.Join(s.dir, Key(folder)+".json")
}

// writeFileAtomic writes data through a temp file in the destination
// directory followed by a rename, so readers never observe a partial
// document.
func writeFileAtomic(dest string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	os.Chmod(tmpName, perm)
	if err := os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
