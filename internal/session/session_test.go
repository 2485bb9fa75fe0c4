package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	doc := Defaults()
	doc.SyncOffset = 1.25
	doc.PlaybackSpeed = 0.5
	doc.CurrentFrame = 42
	doc.StepRight = []float64{3.0, 1.0, 2.0}
	doc.Theme = "light"
	doc.SelectedColumns = []string{"Ax"}

	if err := store.Save("/recordings/walk-01", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := store.Load("/recordings/walk-01")
	if got.SyncOffset != 1.25 {
		t.Errorf("SyncOffset = %v, want 1.25", got.SyncOffset)
	}
	if got.CurrentFrame != 42 {
		t.Errorf("CurrentFrame = %d, want 42", got.CurrentFrame)
	}
	if got.Theme != "light" {
		t.Errorf("Theme = %q, want %q", got.Theme, "light")
	}

	// Marker insertion order survives the round trip.
	want := []float64{3.0, 1.0, 2.0}
	if len(got.StepRight) != len(want) {
		t.Fatalf("StepRight = %v, want %v", got.StepRight, want)
	}
	for i := range want {
		if got.StepRight[i] != want[i] {
			t.Errorf("StepRight[%d] = %v, want %v", i, got.StepRight[i], want[i])
		}
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	got := store.Load("/never/seen")
	if got.PlaybackSpeed != 1.0 {
		t.Errorf("PlaybackSpeed = %v, want 1.0", got.PlaybackSpeed)
	}
	if !got.ShowSteps {
		t.Error("ShowSteps = false, want true")
	}
}

func TestLoadMalformedReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	folder := "/recordings/broken"
	path := filepath.Join(dir, Key(folder)+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := store.Load(folder)
	if got.PlaybackSpeed != 1.0 || got.SyncOffset != 0 {
		t.Errorf("malformed doc did not fall back to defaults: %+v", got)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	folder := "/recordings/bad-values"
	path := filepath.Join(dir, Key(folder)+".json")
	data := `{"playback_speed": -2, "current_frame": -7}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := store.Load(folder)
	if got.PlaybackSpeed != 1.0 {
		t.Errorf("PlaybackSpeed = %v, want 1.0", got.PlaybackSpeed)
	}
	if got.CurrentFrame != 0 {
		t.Errorf("CurrentFrame = %d, want 0", got.CurrentFrame)
	}
}

func TestReset(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	folder := "/recordings/walk-02"
	doc := Defaults()
	doc.SyncOffset = 9
	if err := store.Save(folder, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Reset(folder); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := store.Load(folder); got.SyncOffset != 0 {
		t.Errorf("SyncOffset after Reset = %v, want 0", got.SyncOffset)
	}

	// Resetting a folder with no document is not an error.
	if err := store.Reset("/never/seen"); err != nil {
		t.Errorf("Reset on missing doc: %v", err)
	}
}

func TestKeyStable(t *testing.T) {
	a := Key("/recordings/walk-01")
	b := Key("/recordings/walk-01/")
	if a != b {
		t.Errorf("Key differs for cleaned paths: %q vs %q", a, b)
	}
	if a == Key("/recordings/walk-02") {
		t.Error("distinct folders share a key")
	}
}

func TestLastFolder(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if got := store.LastFolder(); got != "" {
		t.Errorf("LastFolder() = %q, want empty", got)
	}
	if err := store.SetLastFolder("/recordings/walk-03"); err != nil {
		t.Fatalf("SetLastFolder: %v", err)
	}
	if got := store.LastFolder(); got != "/recordings/walk-03" {
		t.Errorf("LastFolder() = %q, want %q", got, "/recordings/walk-03")
	}
}
