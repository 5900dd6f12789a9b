// Package chart renders analysis charts to image files with gonum.org/v1/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default figure size, wide enough for 24 hourly columns.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// ErrNoData is returned for a chart without anything to draw.
var ErrNoData = errors.New("chart has no data")

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Renderer draws charts with gonum/plot. The output format follows the
// file extension (.png, .svg, .pdf, ...).
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

var _ contract.ChartRenderer = &Renderer{} // Compile-time check

// NewRenderer returns a renderer with the default figure size.
func NewRenderer() *Renderer {
	return &Renderer{Width: DefaultWidth, Height: DefaultHeight}
}

// Render implements the ChartRenderer interface.
func (r *Renderer) Render(c schema.Chart, path string) error {
	p, err := Build(c)
	if err != nil {
		return fmt.Errorf("failed to build %s chart %q: %w", c.Kind, c.Title, err)
	}
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}

// Build turns a chart description into a plot without drawing it.
func Build(c schema.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	var err error
	switch c.Kind {
	case schema.BarChart:
		err = addBars(p, c)
	case schema.LineChart:
		err = addLine(p, c)
	case schema.TimeChart:
		err = addTimeLine(p, c)
	case schema.HeatMap:
		err = addHeatMap(p, c)
	case schema.Histogram:
		err = addHistogram(p, c)
	default:
		err = fmt.Errorf("unsupported chart kind %q", c.Kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func addBars(p *plot.Plot, c schema.Chart) error {
	if len(c.Values) == 0 {
		return ErrNoData
	}
	if len(c.Labels) != len(c.Values) {
		return fmt.Errorf("%d labels for %d bars", len(c.Labels), len(c.Values))
	}
	bars, err := plotter.NewBarChart(plotter.Values(c.Values), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(c.Labels...)
	return nil
}

func addLine(p *plot.Plot, c schema.Chart) error {
	if len(c.Values) == 0 {
		return ErrNoData
	}
	if len(c.X) != len(c.Values) {
		return fmt.Errorf("%d x values for %d y values", len(c.X), len(c.Values))
	}
	xys := make(plotter.XYs, len(c.Values))
	for i := range c.Values {
		xys[i].X = c.X[i]
		xys[i].Y = c.Values[i]
	}
	return addXYs(p, xys)
}

func addTimeLine(p *plot.Plot, c schema.Chart) error {
	if len(c.Values) == 0 {
		return ErrNoData
	}
	if len(c.Times) != len(c.Values) {
		return fmt.Errorf("%d times for %d values", len(c.Times), len(c.Values))
	}
	xys := make(plotter.XYs, len(c.Values))
	for i := range c.Values {
		xys[i].X = float64(c.Times[i].Unix())
		xys[i].Y = c.Values[i]
	}
	p.X.Tick.Marker = plot.TimeTicks{Format: schema.DateFormat}
	return addXYs(p, xys)
}

func addXYs(p *plot.Plot, xys plotter.XYs) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = barColor
	line.Width = vg.Points(1.5)
	p.Add(line, plotter.NewGrid())
	return nil
}

func addHeatMap(p *plot.Plot, c schema.Chart) error {
	if c.Grid == nil || len(c.Grid.Rows) == 0 || len(c.Grid.Cols) == 0 {
		return ErrNoData
	}
	hm := plotter.NewHeatMap(gridXYZ{c.Grid}, palette.Heat(16, 1))
	hm.Min = 0

	p.Add(hm)
	ticks := make([]plot.Tick, len(c.Grid.Rows))
	for i, day := range c.Grid.Rows {
		ticks[i] = plot.Tick{Value: float64(i), Label: day}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	return nil
}

func addHistogram(p *plot.Plot, c schema.Chart) error {
	if len(c.Values) == 0 {
		return ErrNoData
	}
	bins := c.Bins
	if bins <= 0 {
		bins = schema.PopularityBins
	}
	hist, err := plotter.NewHist(plotter.Values(c.Values), bins)
	if err != nil {
		return err
	}
	hist.FillColor = barColor
	p.Add(hist)
	return nil
}

// gridXYZ adapts a weekday by hour grid to plotter.GridXYZ. Columns are
// placed at their hour value and rows at their index.
type gridXYZ struct {
	g *schema.Grid
}

func (g gridXYZ) Dims() (c, r int)   { return len(g.g.Cols), len(g.g.Rows) }
func (g gridXYZ) Z(c, r int) float64 { return float64(g.g.Cells[r][c]) }
func (g gridXYZ) X(c int) float64    { return float64(g.g.Cols[c]) }
func (g gridXYZ) Y(r int) float64    { return float64(r) }
