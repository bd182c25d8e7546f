package trends

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/freshbox-analyzer/internal/dataset"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/report"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/components"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/styles"
)

// View renders the trends tab.
func (m *Model) View() string {
	var sections []string

	title := styles.TitleStyle.Render("Cost Trends")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Showing %s  (c to cycle)", m.mode))
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, title, subtitle, ""))

	res := m.state.GetResults()
	if res == nil || len(res.Records) == 0 {
		sections = append(sections, styles.CardStyle.Width(m.cardWidth()).Render(
			styles.HelpStyle.Render("No analysis results yet"),
		))
	} else {
		sections = append(sections, m.renderChart(res.Records))
		sections = append(sections, m.renderAverages(res))
		sections = append(sections, m.renderVolatility(res))
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}

func (m *Model) chartSize() (int, int) {
	width := max(m.cardWidth()-20, 20) // y-axis labels
	height := max(m.height/3, 6)
	return width, height
}

// renderChart plots the selected series.
func (m *Model) renderChart(records []models.MonthRecord) string {
	width, height := m.chartSize()

	var chart string
	switch m.mode {
	case ModeCostPerDelivery:
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = r.CostPerDelivery
		}
		chart = components.RenderLineChart(values, width, height, "Cost per delivery ($)")
	case ModeOnTime:
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = r.OnTimeRate * 100
		}
		chart = components.RenderLineChart(values, width, height, "On-time deliveries (%)")
		chart += "\n" + styles.HelpStyle.Render(fmt.Sprintf(
			"Months below %s are flagged.", report.FormatPercent(dataset.OnTimeFlagThreshold)))
	default:
		chart = components.RenderMultiLineChart(components.CategorySeries(records), width, height,
			"Monthly cost by category ($)")
	}

	months := styles.HelpStyle.Render("Months: " + strings.Join(models.MonthNames(records), ", "))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.CardTitleStyle.Render(m.mode.String()),
			chart,
			"",
			months,
		),
	)
}

// renderAverages lists the mean monthly cost per category with a sparkline
// of its months.
func (m *Model) renderAverages(res *models.AnalysisResults) string {
	rows := []string{styles.CardTitleStyle.Render("Average Monthly Cost")}

	for _, avg := range res.Averages {
		spark := components.RenderSparkline(models.CategorySeries(res.Records, avg.Category), 12)
		label := styles.CategoryStyle(avg.Category).Render(fmt.Sprintf("%-22s", avg.Category))
		rows = append(rows, fmt.Sprintf("  %s %14s  %s",
			label,
			report.FormatCurrency(avg.Average),
			styles.CategoryStyle(avg.Category).Render(spark),
		))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderVolatility ranks the categories by coefficient of variation. The
// most volatile one is the optimization target.
func (m *Model) renderVolatility(res *models.AnalysisResults) string {
	rows := []string{styles.CardTitleStyle.Render("Volatility (coefficient of variation)")}

	bars := make([]components.Bar, 0, len(res.Volatility))
	for _, stat := range res.Volatility {
		bars = append(bars, components.Bar{
			Label: stat.Category.Short(),
			Value: stat.CoeffVar,
			Text: fmt.Sprintf("%.1f%%  (σ %s)",
				stat.CoeffVar*100, report.FormatCurrency(stat.StdDev)),
			Highlight: stat.Category == res.OptimizationTarget,
		})
	}
	rows = append(rows, components.RenderBars(bars, m.cardWidth()-8))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("%s %s",
		styles.LabelStyle.Render("Optimization target:"),
		styles.TargetStyle.Render(res.OptimizationTarget.String())))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
