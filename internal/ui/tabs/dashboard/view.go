package dashboard

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/report"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/components"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/styles"
)

// View renders the dashboard component.
func (m *Model) View() string {
	res := m.state.GetResults()
	if res == nil && m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	m.syncResults()

	var sections []string
	sections = append(sections, m.renderTitle(res))

	if res == nil {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.renderMetrics())
		sections = append(sections, m.renderHighlights(res))
		if rec, ok := m.selectedRecord(); ok {
			sections = append(sections, m.renderBreakdown(rec))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}

// renderTitle renders the dashboard title.
func (m *Model) renderTitle(res *models.AnalysisResults) string {
	title := styles.TitleStyle.Render(report.Heading)

	sub := "Monthly delivery cost analysis"
	if res != nil && !res.GeneratedAt.IsZero() {
		sub = fmt.Sprintf("Run %s, %s", shortID(res.RunID), humanize.Time(res.GeneratedAt))
	}
	subtitle := styles.HelpStyle.Render(sub)

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderEmpty() string {
	var rows []string
	emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
	rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No analysis results")))
	rows = append(rows, "")
	rows = append(rows, styles.InfoTextStyle.Render("  ╰─▶ Press r to run the analysis"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderMetrics renders the per-month metrics table.
func (m *Model) renderMetrics() string {
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	header := fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Monthly Metrics"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, m.table.View()),
	)
}

// renderHighlights renders the findings of the run.
func (m *Model) renderHighlights(res *models.AnalysisResults) string {
	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Highlights")))

	rows = append(rows, field("Highest cost per delivery",
		fmt.Sprintf("%s (%s)", res.Highest.Month, report.FormatCurrency(res.Highest.CostPerDelivery))))
	rows = append(rows, field("Top cost component",
		fmt.Sprintf("%s (%s)", res.TopComponent, report.FormatCurrency(res.TopComponentCost))))
	rows = append(rows, field("Total operating cost", report.FormatCurrency(res.TotalOperatingCost())))

	fuel, onTime := res.FlaggedMonths()
	rows = append(rows, field("Fuel flag", flaggedList(fuel)))
	rows = append(rows, field("On-time flag", flaggedList(onTime)))

	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %s %s",
		styles.LabelStyle.Render("Optimization target:"),
		styles.TargetStyle.Render(res.OptimizationTarget.String())))
	rows = append(rows, "  "+styles.InfoTextStyle.Render(res.Recommendation))

	rows = append(rows, "")
	if res.HasChart() {
		rows = append(rows, field("Trend chart", filepath.Base(res.ChartPath)))
	} else {
		rows = append(rows, field("Trend chart", styles.HelpStyle.Render("not generated")))
	}
	if res.WorkbookPath != "" {
		rows = append(rows, field("Workbook", filepath.Base(res.WorkbookPath)))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderBreakdown renders the cost split of the selected month.
func (m *Model) renderBreakdown(rec models.MonthRecord) string {
	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon,
		styles.CardTitleStyle.Render(rec.Month+" Breakdown")))

	res := m.state.GetResults()
	bars := make([]components.Bar, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		cost := rec.Cost(c)
		share := 0.0
		if rec.TotalOperatingCost > 0 {
			share = cost / rec.TotalOperatingCost
		}
		text := fmt.Sprintf("%s (%s)", report.FormatCurrency(cost), report.FormatPercent(share))
		if avg, ok := res.Average(c); ok && avg > 0 {
			text += fmt.Sprintf(" %+.1f%% vs avg", (cost/avg-1)*100)
		}
		bars = append(bars, components.Bar{
			Label:     c.Short(),
			Value:     cost,
			Text:      text,
			Highlight: res != nil && c == res.OptimizationTarget,
		})
	}
	rows = append(rows, components.RenderBars(bars, m.cardWidth()-8))

	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %s %s   %s %s   %s %s",
		styles.LabelStyle.Render("Deliveries"), styles.ValueStyle.Render(humanize.Comma(int64(rec.DeliveriesMade))),
		styles.LabelStyle.Render("Avg time"), styles.ValueStyle.Render(report.FormatHours(rec.AvgDeliveryTime)+" h"),
		styles.LabelStyle.Render("On-time"), styles.ValueStyle.Render(report.FormatPercent(rec.OnTimeRate)),
	))
	rows = append(rows, fmt.Sprintf("  %s %s   %s %s",
		styles.LabelStyle.Render("Fuel flag"), styles.GetFlagStyle(rec.FuelFlag).Render(report.FormatFlag(rec.FuelFlag)),
		styles.LabelStyle.Render("On-time flag"), styles.GetFlagStyle(rec.OnTimeFlag).Render(report.FormatFlag(rec.OnTimeFlag)),
	))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func field(label, value string) string {
	return fmt.Sprintf("  %s %s", styles.LabelStyle.Render(fmt.Sprintf("%-26s", label)), value)
}

func flaggedList(months []string) string {
	if len(months) == 0 {
		return styles.NoFlagStyle.Render("none")
	}
	return styles.FlagStyle.Render(strings.Join(months, ", "))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
