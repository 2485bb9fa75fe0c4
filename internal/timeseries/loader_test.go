package timeseries

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixture writes a sensor CSV with the vendor metadata block followed by
// the given data lines.
func writeFixture(t *testing.T, lines ...string) string {
	t.Helper()

	var b strings.Builder
	for i := 0; i < headerLines; i++ {
		if i == 3 {
			b.WriteString("SamplingFrequency: 100,\n")
			continue
		}
		b.WriteString("Meta,\n")
	}
	b.WriteString("Timestamp, Ax, Ay\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}

	path := filepath.Join(t.TempDir(), "sensor.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLoadNormalizes(t *testing.T) {
	// Out of order, one duplicate timestamp, one unparsable row, and NaN
	// gaps in both channels.
	path := writeFixture(t,
		"10:00:00.100, 1.0, 2.0",
		"10:00:00.000, 0.0,",
		"10:00:00.200, , 4.0",
		"10:00:00.300, 3.0, 6.0",
		"10:00:00.100, 9.0, 9.0",
		"garbage, 5.0, 5.0",
	)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	wantTimes := []float64{0, 0.1, 0.2, 0.3}
	for i, w := range wantTimes {
		if !approx(s.Times[i], w) {
			t.Errorf("Times[%d] = %v, want %v", i, s.Times[i], w)
		}
	}

	// Duplicate 10:00:00.100 keeps the first occurrence.
	if !approx(s.Rows[1][0], 1.0) {
		t.Errorf("Rows[1][0] = %v, want 1.0 (first duplicate wins)", s.Rows[1][0])
	}

	// Interior Ax gap interpolates between 1.0 and 3.0.
	if !approx(s.Rows[2][0], 2.0) {
		t.Errorf("Rows[2][0] = %v, want 2.0 (interpolated)", s.Rows[2][0])
	}

	// Leading Ay gap copies the first valid value.
	if !approx(s.Rows[0][1], 2.0) {
		t.Errorf("Rows[0][1] = %v, want 2.0 (copied from first valid)", s.Rows[0][1])
	}

	for i, row := range s.Rows {
		for j, v := range row {
			if math.IsNaN(v) {
				t.Errorf("Rows[%d][%d] is NaN after interpolation", i, j)
			}
		}
	}
}

func TestLoadColumns(t *testing.T) {
	path := writeFixture(t, "10:00:00.000, 1.0, 2.0")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Columns) != 2 || s.Columns[0] != "Ax" || s.Columns[1] != "Ay" {
		t.Errorf("Columns = %v, want [Ax Ay]", s.Columns)
	}
}

func TestLoadNoValidSamples(t *testing.T) {
	path := writeFixture(t, "garbage, 1.0, 2.0")

	if _, err := Load(path); err == nil {
		t.Error("expected error for file with no valid samples")
	}
}

func TestLoadMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	if err := os.WriteFile(path, []byte("only one line\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for truncated file")
	}
}

func TestLoadSampleRate(t *testing.T) {
	path := writeFixture(t, "10:00:00.000, 1.0, 2.0")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.SampleRate != 100 {
		t.Errorf("SampleRate = %d, want 100", s.SampleRate)
	}
}

func TestParseSamplingRate(t *testing.T) {
	if r, ok := parseSamplingRate("SamplingFrequency: 128,"); !ok || r != 128 {
		t.Errorf("parseSamplingRate = %d/%v, want 128/true", r, ok)
	}
	if _, ok := parseSamplingRate("SerialNumber: 42,"); ok {
		t.Error("parseSamplingRate matched an unrelated line")
	}
	if _, ok := parseSamplingRate("SamplingFrequency: fast,"); ok {
		t.Error("parseSamplingRate accepted a non-numeric value")
	}
}

func TestParseClock(t *testing.T) {
	got, err := parseClock("01:02:03.500")
	if err != nil {
		t.Fatalf("parseClock: %v", err)
	}
	if want := 3723.5; !approx(got, want) {
		t.Errorf("parseClock = %v, want %v", got, want)
	}

	if _, err := parseClock("12.500"); err == nil {
		t.Error("expected error for timestamp without colons")
	}
}
