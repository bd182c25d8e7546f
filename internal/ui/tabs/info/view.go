package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/freshbox-analyzer/internal/chart"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/styles"
	"github.com/j-veylop/freshbox-analyzer/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderConfigCard(),
		m.renderArtifactsCard(),
		m.renderAboutCard(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderTitle renders the info tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, output files and build information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	return min(max(m.width-6, 50), 90)
}

// renderConfigCard renders the effective configuration.
func (m *Model) renderConfigCard() string {
	cfg := m.config()

	rows := []string{
		styles.CardTitleStyle.Render("Configuration"),
		"",
		m.renderConfigRow("Output Dir", cfg.OutputDir),
		m.renderConfigRow("Chart", m.chartStatus(cfg.ChartEnabled)),
		m.renderConfigRow("Workbook Export", onOff(cfg.WorkbookExport)),
		m.renderConfigRow("Run History", m.historyStatus(cfg.HistoryEnabled)),
		m.renderConfigRow("Database", cfg.DatabasePath),
		m.renderConfigRow("Retention", retention(cfg.HistoryRetentionDays)),
		m.renderConfigRow("Notify on Shift", onOff(cfg.NotifyOnShift)),
		m.renderConfigRow("Log Level", cfg.LogLevel),
		m.renderConfigRow("Watch Debounce", cfg.WatchDebounce.String()),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) chartStatus(enabled bool) string {
	if !enabled {
		return "disabled"
	}
	available := chart.Available()
	if m.services != nil {
		available = m.services.ChartAvailable()
	}
	if !available {
		return "enabled, no plotting backend"
	}
	return fmt.Sprintf("enabled (%s)", chart.Backend())
}

func (m *Model) historyStatus(enabled bool) string {
	if !enabled {
		return "disabled"
	}
	if m.services != nil && !m.services.HistoryEnabled() {
		return "enabled, database unavailable"
	}
	return "enabled"
}

// renderArtifactsCard lists the files in the output directory.
func (m *Model) renderArtifactsCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("Output Files"),
		"",
	}

	artifacts := m.state.GetArtifacts()
	if len(artifacts) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No files in the output directory"))
	} else {
		rows = append(rows, styles.TableHeaderStyle.Render(
			fmt.Sprintf("%-34s %-9s %9s  %s", "Name", "Kind", "Size", "Modified")))
		for _, a := range artifacts {
			rows = append(rows, fmt.Sprintf("%-34s %-9s %9s  %s",
				truncate(a.Name, 34), a.Kind, a.HumanSize(), a.Age()))
		}
	}

	if m.services != nil {
		rows = append(rows, "", styles.HelpStyle.Render("Press 'a' to rescan"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a configuration key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderAboutCard renders the version information card.
func (m *Model) renderAboutCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("About FreshBox Analyzer"),
		"",
		m.renderConfigRow("Version", version.GetVersion()),
		m.renderConfigRow("Build Date", version.GetDate()),
		m.renderConfigRow("Git Commit", version.GetCommit()),
		m.renderConfigRow("Go Version", runtime.Version()),
		m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func retention(days int) string {
	if days <= 0 {
		return "keep all runs"
	}
	return fmt.Sprintf("%d days", days)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
