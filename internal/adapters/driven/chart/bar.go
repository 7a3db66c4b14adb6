// Package chart renders report charts with gonum/plot.
package chart

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.ChartRenderer = (*Renderer)(nil)

// Default canvas geometry.
const (
	defaultWidth  = 10 * vg.Inch
	defaultHeight = 5 * vg.Inch
	defaultDPI    = 150
)

// barColour matches the primary accent of the CLI theme.
var barColour = color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}

// Renderer draws bar charts to PNG files.
type Renderer struct {
	width  vg.Length
	height vg.Length
	dpi    int
}

// NewRenderer creates a renderer with a 10x5 inch, 150 DPI canvas.
func NewRenderer() *Renderer {
	return &Renderer{width: defaultWidth, height: defaultHeight, dpi: defaultDPI}
}

// RenderBarChart draws chart as a PNG at path.
func (r *Renderer) RenderBarChart(ctx context.Context, path string, chart domain.BarChart) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(chart.Values) == 0 {
		return fmt.Errorf("render %s: %w: no bars", filepath.Base(path), domain.ErrInvalidInput)
	}
	if len(chart.Labels) != len(chart.Values) {
		return fmt.Errorf("render %s: %w: %d labels for %d bars",
			filepath.Base(path), domain.ErrInvalidInput, len(chart.Labels), len(chart.Values))
	}

	p, err := r.build(chart)
	if err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}

	canvas := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (r *Renderer) build(chart domain.BarChart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chart.Title
	p.Y.Label.Text = chart.YLabel
	p.Y.Min = 0

	values := make(plotter.Values, len(chart.Values))
	for i, v := range chart.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		values[i] = v
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, err
	}
	bars.Color = barColour
	bars.LineStyle.Width = 0
	p.Add(bars)

	p.NominalX(chart.Labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return p, nil
}
