// SPDX-License-Identifier: Apache-2.0

// Package render turns a loaded series into a single PNG line chart.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"csvplot/internal/dataset"
)

// Raster geometry of the saved figure: a 6.4 x 4.8 inch canvas rasterized
// at 150 dots per inch.
const (
	canvasWidth  = 6.4 * vg.Inch
	canvasHeight = 4.8 * vg.Inch
	rasterDPI    = 150
)

// Options holds the figure text. Everything else about the styling is fixed.
type Options struct {
	XLabel string
	YLabel string
	Title  string
}

// Render builds the figure: the series' points connected by a line in
// sequence order, a marker on each point, labeled axes, a title and a grid.
func Render(series *dataset.Series, opts Options) (*plot.Plot, error) {
	pts := make(plotter.XYs, series.Len())
	for i := range pts {
		pts[i].X = series.X[i]
		pts[i].Y = series.Y[i]
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build line plot: %w", err)
	}
	p.Add(line, points)

	return p, nil
}

// OutputPath derives the PNG path for a CSV input: <stem>_<ycol>.png in the
// same directory as the input.
func OutputPath(csvPath, ycol string) string {
	stem := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
	return filepath.Join(filepath.Dir(csvPath), fmt.Sprintf("%s_%s.png", stem, ycol))
}

// Save rasterizes the figure to path as a PNG at the fixed resolution,
// silently replacing any existing file.
func Save(p *plot.Plot, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(canvasWidth, canvasHeight), vgimg.UseDPI(rasterDPI))
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
