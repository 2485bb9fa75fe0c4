package timeseries

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// headerLines is the size of the vendor metadata block that precedes the
// column header in the sensor CSV files.
const headerLines = 18

// Load reads a sensor CSV file and returns its normalized Series: timestamps
// anchored to zero seconds, rows sorted ascending and unique on time, and
// missing channel values filled by linear interpolation.
func Load(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	sampleRate := 0
	for i := 0; i < headerLines; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("read series %s: file shorter than metadata block", path)
		}
		if r, ok := parseSamplingRate(sc.Text()); ok {
			sampleRate = r
		}
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("read series %s: missing column header", path)
	}
	header := splitCSVLine(sc.Text())
	if len(header) < 2 || header[0] != "Timestamp" {
		return nil, fmt.Errorf("read series %s: unexpected column header %q", path, sc.Text())
	}
	columns := header[1:]

	var times []float64
	var rows [][]float64
	for sc.Scan() {
		fields := splitCSVLine(sc.Text())
		if len(fields) == 0 || (len(fields) == 1 && fields[0] == "") {
			continue
		}
		ts, err := parseClock(fields[0])
		if err != nil {
			// Rows with unparsable timestamps are dropped, matching the
			// loader this replaces.
			continue
		}
		row := make([]float64, len(columns))
		for i := range row {
			row[i] = math.NaN()
			if i+1 < len(fields) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(fields[i+1]), 64); err == nil {
					row[i] = v
				}
			}
		}
		times = append(times, ts)
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read series %s: %w", path, err)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("read series %s: no valid samples", path)
	}

	sortRows(times, rows)
	times, rows = dedupeTimes(times, rows)

	// Anchor the time axis to the first retained sample.
	t0 := times[0]
	for i := range times {
		times[i] -= t0
	}

	s := &Series{Columns: columns, Times: times, Rows: rows, SampleRate: sampleRate}
	interpolate(s)
	return s, nil
}

// parseSamplingRate extracts the declared frequency from a metadata line of
// the form "SamplingFrequency: 100,".
func parseSamplingRate(line string) (int, bool) {
	if !strings.Contains(line, "SamplingFrequency") {
		return 0, false
	}
	_, val, ok := strings.Cut(line, ":")
	if !ok {
		return 0, false
	}
	rate, err := strconv.Atoi(strings.TrimSpace(strings.Trim(strings.TrimSpace(val), ",")))
	if err != nil {
		return 0, false
	}
	return rate, true
}

// parseClock parses a wall-clock timestamp of the form HH:MM:SS.fff into
// seconds since midnight.
func parseClock(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}
	return float64(h*3600+m*60) + sec, nil
}

func splitCSVLine(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func sortRows(times []float64, rows [][]float64) {
	idx := make([]int, len(times))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return times[idx[a]] < times[idx[b]] })

	st := make([]float64, len(times))
	sr := make([][]float64, len(rows))
	for i, j := range idx {
		st[i] = times[j]
		sr[i] = rows[j]
	}
	copy(times, st)
	copy(rows, sr)
}

// dedupeTimes keeps the first row for each distinct timestamp so the series
// is strictly increasing.
func dedupeTimes(times []float64, rows [][]float64) ([]float64, [][]float64) {
	outT := times[:0]
	outR := rows[:0]
	for i := range times {
		if i > 0 && times[i] == outT[len(outT)-1] {
			continue
		}
		outT = append(outT, times[i])
		outR = append(outR, rows[i])
	}
	return outT, outR
}

// interpolate fills NaN channel values linearly between the surrounding
// valid samples; leading and trailing gaps copy the nearest valid value.
func interpolate(s *Series) {
	n := len(s.Rows)
	for c := range s.Columns {
		prev := -1
		for i := 0; i < n; i++ {
			v := s.Rows[i][c]
			if math.IsNaN(v) {
				continue
			}
			if prev == -1 && i > 0 {
				for j := 0; j < i; j++ {
					s.Rows[j][c] = v
				}
			} else if prev >= 0 && i-prev > 1 {
				v0 := s.Rows[prev][c]
				for j := prev + 1; j < i; j++ {
					frac := float64(j-prev) / float64(i-prev)
					s.Rows[j][c] = v0 + (v-v0)*frac
				}
			}
			prev = i
		}
		if prev >= 0 && prev < n-1 {
			v := s.Rows[prev][c]
			for j := prev + 1; j < n; j++ {
				s.Rows[j][c] = v
			}
		}
	}
}
