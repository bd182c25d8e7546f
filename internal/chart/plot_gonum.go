//go:build !nochart

package chart

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

const backendName = "gonum/plot"

func newBackend() Renderer {
	return &PNGRenderer{
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    DPI,
	}
}

// PNGRenderer draws the chart with gonum/plot and encodes it as PNG.
type PNGRenderer struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// Render implements Renderer.
func (r *PNGRenderer) Render(ctx context.Context, records []models.MonthRecord, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := buildPlot(records)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := r.save(p, path); err != nil {
		return "", err
	}
	return path, nil
}

func (r *PNGRenderer) save(p *plot.Plot, path string) error {
	canvas := vgimg.NewWith(
		vgimg.UseWH(r.Width, r.Height),
		vgimg.UseDPI(r.DPI),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return f.Close()
}

func buildPlot(records []models.MonthRecord) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Y.Tick.Marker = currencyTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(4)}
	gridColor := color.Gray{Y: 190}
	grid.Vertical.Dashes = dashes
	grid.Vertical.Color = gridColor
	grid.Horizontal.Dashes = dashes
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	for i, c := range models.Categories() {
		line, points, err := plotter.NewLinePoints(seriesXYs(records, c))
		if err != nil {
			return nil, fmt.Errorf("failed to plot %s: %w", c, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Shape = draw.CircleGlyph{}
		points.Color = plotutil.Color(i)
		points.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(c.String(), line, points)
	}

	p.NominalX(models.MonthNames(records)...)
	return p, nil
}

func seriesXYs(records []models.MonthRecord, c models.Category) plotter.XYs {
	xys := make(plotter.XYs, len(records))
	for i, r := range records {
		xys[i].X = float64(i)
		xys[i].Y = r.Cost(c)
	}
	return xys
}

// currencyTicks labels the cost axis with thousands separators.
type currencyTicks struct{}

func (currencyTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = humanize.Commaf(ticks[i].Value)
		}
	}
	return ticks
}
