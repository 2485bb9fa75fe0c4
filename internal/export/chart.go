package export

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gaitsync/internal/segment"
)

// writeChart renders a one-channel overview of the foot's stream with a
// vertical gridline at every step boundary, so a quick glance confirms the
// segmentation before anyone opens the CSVs.
func writeChart(path string, f *Foot, segs []segment.Segment) error {
	if f.Series.Len() == 0 || len(f.Series.Columns) == 0 {
		return nil
	}

	ys := make([]float64, f.Series.Len())
	for i, row := range f.Series.Rows {
		if len(row) > 0 {
			ys[i] = row[0]
		}
	}

	var lines []chart.GridLine
	for _, seg := range segs {
		lines = append(lines, chart.GridLine{Value: seg.Start})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s foot, %s", f.Foot, f.Series.Columns[0]),
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name:      "VideoTime (s)",
			GridLines: lines,
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.ColorRed,
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: f.Series.Times,
				YValues: ys,
			},
		},
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := graph.Render(chart.PNG, file); err != nil {
		return err
	}
	return file.Close()
}
