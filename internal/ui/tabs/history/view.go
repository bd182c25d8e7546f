package history

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/freshbox-analyzer/internal/app"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/report"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/components"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/styles"
)

// View renders the history tab.
func (m *Model) View() string {
	if m.disabled() {
		return m.renderDisabled()
	}

	history := m.state.GetHistory()
	if history == nil && m.state.IsLoading(app.ResourceHistory) {
		return m.renderLoading()
	}
	if !history.HasData() {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(history),
		m.renderRuns(history),
		m.renderTrend(history),
		m.renderTargets(history),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderLoading() string {
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(styles.HelpStyle.Render("Loading run history..."))
}

func (m *Model) renderDisabled() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Run History"),
		"",
		styles.HelpStyle.Render("Run history is disabled."),
		styles.InfoTextStyle.Render("Set HISTORY_ENABLED=true to record every analysis run."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderRangeHeader(""),
		"",
		styles.HelpStyle.Render("No runs recorded in this range."),
		styles.HelpStyle.Render("Runs appear here after each analysis."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderRangeHeader(subtitle string) string {
	title := styles.TitleStyle.Render("Run History")

	rangeStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary)

	rangeIndicator := rangeStyle.Render(fmt.Sprintf("[t] %s", m.state.GetHistoryRange()))
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", rangeIndicator)
	if subtitle == "" {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, styles.HelpStyle.Render(subtitle), "")
}

func (m *Model) renderHeader(h *models.RunHistory) string {
	subtitle := fmt.Sprintf("%s, %s",
		pluralize(len(h.Runs), "run"),
		pluralize(h.TargetShifts(), "target shift"))
	return m.renderRangeHeader(subtitle)
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}

// renderRuns lists the runs newest first. A run whose target differs from
// the run before it is marked.
func (m *Model) renderRuns(h *models.RunHistory) string {
	rows := []string{
		styles.CardTitleStyle.Render("Runs"),
		styles.TableHeaderStyle.Render(fmt.Sprintf("%-14s %-14s %-9s %-24s %-10s %12s %16s",
			"When", "Age", "Run", "Target", "Highest", "$/Delivery", "Total Cost")),
	}

	for i, run := range h.Runs {
		target := fmt.Sprintf("%-24s", run.OptimizationTarget)
		shifted := i+1 < len(h.Runs) && h.Runs[i+1].OptimizationTarget != run.OptimizationTarget
		if shifted {
			target = styles.TargetStyle.Render(target)
		}
		marker := " "
		if shifted {
			marker = styles.TargetStyle.Render("↺")
		}

		rows = append(rows, fmt.Sprintf("%-14s %-14s %-9s %s %-10s %12s %16s %s",
			run.CreatedAt.Local().Format("Jan 02 15:04"),
			humanize.Time(run.CreatedAt),
			shortID(run.RunID),
			target,
			run.HighestMonth,
			report.FormatCurrency(run.HighestCostPerDelivery),
			report.FormatCurrency(run.TotalOperatingCost),
			marker,
		))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderTrend shows how the highest cost per delivery moved across runs,
// oldest to newest.
func (m *Model) renderTrend(h *models.RunHistory) string {
	values := make([]float64, len(h.Runs))
	for i, run := range h.Runs {
		values[len(h.Runs)-1-i] = run.HighestCostPerDelivery
	}

	rows := []string{styles.CardTitleStyle.Render("Highest Cost per Delivery")}
	rows = append(rows, "  "+components.RenderSparkline(values, m.cardWidth()-8))
	rows = append(rows, styles.HelpStyle.Render("  oldest → newest"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderTargets tallies how often each category was the optimization
// target. The latest target is highlighted.
func (m *Model) renderTargets(h *models.RunHistory) string {
	counts := h.TargetCounts()
	latest := h.Runs[0].OptimizationTarget

	bars := make([]components.Bar, 0, len(counts))
	for i, c := range models.Categories() {
		bars = append(bars, components.Bar{
			Label:     c.Short(),
			Value:     float64(counts[i]),
			Text:      pluralize(counts[i], "run"),
			Highlight: c == latest,
		})
	}

	rows := []string{
		styles.CardTitleStyle.Render("Optimization Targets"),
		components.RenderBars(bars, m.cardWidth()-8),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
