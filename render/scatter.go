// Package render draws static PNG charts of the projection views: what the
// interactive layer plots reactively, captured to a file. One scatter per
// projection method, points colored by the fixed cluster palette.
package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/types"
)

// clusterPalette mirrors the interactive dashboard's cluster colors so static
// renders match the interactive view.
var clusterPalette = []drawing.Color{
	{R: 0xE6, G: 0x39, B: 0x46, A: 0xFF},
	{R: 0x2A, G: 0x9D, B: 0x8F, A: 0xFF},
	{R: 0xE9, G: 0xC4, B: 0x6A, A: 0xFF},
	{R: 0x6A, G: 0x4C, B: 0x93, A: 0xFF},
}

// ClusterColor returns the palette color for a cluster id, cycling for ids
// beyond the base palette.
func ClusterColor(clusterID int) drawing.Color {
	if clusterID < 0 {
		clusterID = -clusterID
	}
	return clusterPalette[clusterID%len(clusterPalette)]
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    width,
		DotColor:    col,
	}
}

// Options configures a scatter render.
type Options struct {
	// Width and Height of the output image in pixels; zero uses defaults.
	Width  int
	Height int

	// Highlight names a country to emphasize with a larger marker, echoing
	// the "find country" selection.
	Highlight string
}

// Scatter writes a PNG scatter of one projection method to w, one series
// per visible cluster so the legend shows cluster names.
func Scatter(ds *types.Dataset, rows []types.Row, method string, w io.Writer, opts Options) error {
	xLabel, yLabel, err := dataview.AxisLabels(ds, method)
	if err != nil {
		return err
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 900
	}
	if height == 0 {
		height = 550
	}

	var series []chart.Series
	for _, clusterID := range ds.ClusterIDs() {
		var xs, ys []float64
		for _, row := range rows {
			if row.Cluster != clusterID {
				continue
			}
			p, ok := row.Coord(method)
			if !ok {
				continue
			}
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		if len(xs) == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label(clusterID),
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(ClusterColor(clusterID), 5),
		})
	}

	if opts.Highlight != "" {
		for _, row := range rows {
			if row.Country != opts.Highlight {
				continue
			}
			if p, ok := row.Coord(method); ok {
				series = append(series, chart.ContinuousSeries{
					Name:    row.Country,
					XValues: []float64{p.X},
					YValues: []float64{p.Y},
					Style:   pointStyle(chart.ColorWhite, 10),
				})
			}
			break
		}
	}

	if len(series) == 0 {
		return fmt.Errorf("no points to plot for method %q", method)
	}

	ch := chart.Chart{
		Title:  method + " Projection",
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: xLabel},
		YAxis:  chart.YAxis{Name: yLabel},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %s scatter: %w", method, err)
	}
	return nil
}

// ComparisonGrid writes one small scatter per projection method, the static
// counterpart of the method comparison strip. Images are written through
// open, which receives the method name and returns the destination writer.
func ComparisonGrid(ds *types.Dataset, rows []types.Row, open func(method string) (io.WriteCloser, error)) error {
	for _, method := range ds.Methods() {
		w, err := open(method)
		if err != nil {
			return fmt.Errorf("failed to open output for %s: %w", method, err)
		}

		err = Scatter(ds, rows, method, w, Options{Width: 320, Height: 240})
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}
