// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/styles"
)

// Series is one line of a multi-line chart.
type Series struct {
	Label  string
	Values []float64
	Color  lipgloss.Color
	Graph  asciigraph.AnsiColor
}

// CategorySeries builds one chart series per cost category, in the fixed
// category order.
func CategorySeries(records []models.MonthRecord) []Series {
	graphColors := map[models.Category]asciigraph.AnsiColor{
		models.CategoryFuel:        asciigraph.Blue,
		models.CategoryMaintenance: asciigraph.Orange,
		models.CategoryLabor:       asciigraph.Green,
		models.CategoryWarehouse:   asciigraph.Red,
	}

	series := make([]Series, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		series = append(series, Series{
			Label:  c.Short(),
			Values: models.CategorySeries(records, c),
			Color:  styles.CategoryColor(c),
			Graph:  graphColors[c],
		})
	}
	return series
}

func clampChartSize(width, height int) (int, int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	return width, height
}

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	width, height = clampChartSize(width, height)

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderMultiLineChart plots several series on shared axes and appends a
// legend. Shorter series are padded with zeros.
func RenderMultiLineChart(series []Series, width, height int, caption string) string {
	maxLen := 0
	for _, s := range series {
		maxLen = max(maxLen, len(s.Values))
	}
	if maxLen == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	width, height = clampChartSize(width, height)

	data := make([][]float64, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	legend := make([]LegendItem, len(series))
	for i, s := range series {
		data[i] = make([]float64, maxLen)
		copy(data[i], s.Values)
		colors[i] = s.Graph
		legend[i] = LegendItem{Label: s.Label, Color: s.Color}
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)

	return graph + "\n\n" + RenderLegend(legend)
}

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	// Text replaces the default value label when set.
	Text string
	// Highlight renders the row in the target style.
	Highlight bool
}

// RenderBars draws bars scaled to the largest value.
func RenderBars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	bars = append([]Bar(nil), bars...)

	maxVal := 0.0
	maxLabelLen := 0
	maxTextLen := 0
	for i, b := range bars {
		maxVal = max(maxVal, b.Value)
		maxLabelLen = max(maxLabelLen, len(b.Label))
		if b.Text == "" {
			bars[i].Text = fmt.Sprintf("%.1f", b.Value)
		}
		maxTextLen = max(maxTextLen, len(bars[i].Text))
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barWidth := width - maxLabelLen - maxTextLen - 4 // Label, separator and value
	if barWidth < 10 {
		barWidth = 10
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		barLen := max(int((b.Value/maxVal)*float64(barWidth)), 0)

		line := fmt.Sprintf("%*s │%s %s", maxLabelLen, b.Label, strings.Repeat("█", barLen), b.Text)
		if b.Highlight {
			line = styles.TargetStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline creates a compact inline sparkline chart scaled between
// the smallest and largest value.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	span := maxVal - minVal

	// Sample values to fit width
	var result strings.Builder
	step := max(float64(len(values))/float64(width), 1)

	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		val := values[int(float64(i)*step)]
		level := 0
		if span > 0 {
			level = int((val - minVal) / span * float64(len(sparkChars)-1))
		}
		level = min(max(level, 0), len(sparkChars)-1)
		result.WriteRune(sparkChars[level])
	}

	return result.String()
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
