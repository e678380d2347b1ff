package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"sortbench/internal/benchmark"
)

var lineColors = []color.RGBA{
	{R: 50, G: 100, B: 200, A: 255},
	{R: 200, G: 60, B: 50, A: 255},
	{R: 40, G: 160, B: 80, A: 255},
	{R: 150, G: 80, B: 180, A: 255},
}

// BuildChart plots execution time against data size, one line per algorithm.
func BuildChart(results []benchmark.Result) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, errors.New("no results to plot")
	}

	var order []string
	points := make(map[string]plotter.XYs)
	for _, r := range results {
		if _, ok := points[r.Algorithm]; !ok {
			order = append(order, r.Algorithm)
		}
		points[r.Algorithm] = append(points[r.Algorithm], plotter.XY{X: float64(r.DataSize), Y: r.ExecutionTime})
	}

	p := plot.New()
	p.Title.Text = "Sorting Execution Time"
	p.X.Label.Text = "Data Size"
	p.Y.Label.Text = "Execution Time (s)"
	p.Add(plotter.NewGrid())

	for i, alg := range order {
		pts := points[alg]
		sort.Slice(pts, func(a, b int) bool { return pts[a].X < pts[b].X })

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}
		line.LineStyle.Color = lineColors[i%len(lineColors)]
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(alg, line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// SaveChart writes the execution-time chart to path. The image format
// follows the file extension (svg, png, pdf, ...).
func SaveChart(path string, results []benchmark.Result) error {
	p, err := BuildChart(results)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
