// Package export materializes derived step segments as CSV tables under the
// recording folder, one file per whole step and one pair per half-step
// subdivision.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"gaitsync/internal/marker"
	"gaitsync/internal/segment"
	"gaitsync/internal/timeseries"
)

// FootResult summarizes what was written for one foot.
type FootResult struct {
	Foot          marker.Foot
	WholeSegments int
	HalfSegments  int
	SkippedSlices int
	NoMarkers     bool
}

// Result summarizes one export run across both feet.
type Result struct {
	RunID string
	Feet  []FootResult
}

// Exporter writes segment CSVs for a recording.
type Exporter struct {
	// Charts enables the per-foot overview PNG alongside the CSVs.
	Charts bool
}

// Run exports both feet under folder. Feet without markers are skipped and
// reported as such; an I/O failure aborts the run.
func (e *Exporter) Run(folder string, right, left *Foot) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	for _, f := range []*Foot{right, left} {
		fr, err := e.exportFoot(folder, f)
		if err != nil {
			return nil, err
		}
		res.Feet = append(res.Feet, fr)
	}
	return res, nil
}

// Foot bundles one foot's inputs to an export run.
type Foot struct {
	Foot   marker.Foot
	Series *timeseries.Series
	Steps  *marker.Set
	Halves *marker.Set
}

func footDirName(f marker.Foot) string {
	if f == marker.FootLeft {
		return "Piede_Sinistro"
	}
	return "Piede_Destro"
}

func (e *Exporter) exportFoot(folder string, f *Foot) (FootResult, error) {
	res := FootResult{Foot: f.Foot}
	if f.Steps.Len() == 0 {
		res.NoMarkers = true
		return res, nil
	}

	segs := segment.Derive(f.Steps.Sorted(), f.Series.End())
	halves := f.Halves.Sorted()

	base := filepath.Join(folder, "Passi", footDirName(f.Foot))
	wholeDir := filepath.Join(base, "Passi_Interi")
	halfDir := filepath.Join(base, "Mezzi_Passi")
	for _, dir := range []string{wholeDir, halfDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("create export dir: %w", err)
		}
	}

	for _, seg := range segs {
		slice := f.Series.Slice(seg.Start, seg.End)
		if slice.Len() == 0 {
			res.SkippedSlices++
			continue
		}
		name := filepath.Join(wholeDir, fmt.Sprintf("Passo_%d.csv", seg.Ordinal))
		if err := writeCSV(name, slice); err != nil {
			return res, err
		}
		res.WholeSegments++

		first, second := segment.Split(seg, halves)
		for i, half := range []segment.Segment{first, second} {
			hs := f.Series.Slice(half.Start, half.End)
			if hs.Len() == 0 {
				res.SkippedSlices++
				continue
			}
			name := filepath.Join(halfDir, fmt.Sprintf("Passo%d.%d.csv", half.Ordinal, i+1))
			if err := writeCSV(name, hs); err != nil {
				return res, err
			}
			res.HalfSegments++
		}
	}

	if e.Charts && res.WholeSegments > 0 {
		if err := writeChart(filepath.Join(base, "overview.png"), f, segs); err != nil {
			return res, fmt.Errorf("write overview chart: %w", err)
		}
	}
	return res, nil
}

// writeCSV writes the full-width slice with its header row. Timestamps and
// values round-trip through the shortest float representation.
func writeCSV(path string, s *timeseries.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := append([]string{"VideoTime"}, s.Columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	record := make([]string, len(header))
	for i, t := range s.Times {
		record[0] = formatFloat(t)
		for j, v := range s.Rows[i] {
			record[j+1] = formatFloat(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
