// Package dashboard provides the main dashboard tab for the FreshBox cost analyzer.
package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/freshbox-analyzer/internal/app"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/report"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/components"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/styles"
)

// keyMap defines the key bindings specific to the dashboard tab.
type keyMap struct {
	NextMonth  key.Binding
	PrevMonth  key.Binding
	FirstMonth key.Binding
	LastMonth  key.Binding
}

// defaultKeyMap returns the default key bindings for the dashboard tab.
func defaultKeyMap() keyMap {
	return keyMap{
		NextMonth: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "prev month"),
		),
		FirstMonth: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first month"),
		),
		LastMonth: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last month"),
		),
	}
}

// tableColumns are the compact titles for the metrics table, in report order.
var tableColumns = []table.Column{
	{Title: "Month", Width: 9},
	{Title: "Fuel", Width: 11},
	{Title: "Maint.", Width: 11},
	{Title: "Labor", Width: 11},
	{Title: "Warehouse", Width: 11},
	{Title: "Total", Width: 12},
	{Title: "Deliv.", Width: 7},
	{Title: "$/Deliv.", Width: 9},
	{Title: "Hrs", Width: 5},
	{Title: "On-Time", Width: 8},
	{Title: "Fuel!", Width: 6},
	{Title: "Late!", Width: 6},
}

// Model represents the dashboard tab state.
type Model struct {
	state    *app.State
	spinner  components.RunSpinner
	keys     keyMap
	viewport viewport.Model
	table    table.Model
	runID    string
	width    int
	height   int
}

// New creates a new dashboard model.
func New(state *app.State) *Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = styles.TableSelectedStyle
	t.SetStyles(s)

	return &Model{
		state:    state,
		spinner:  components.NewSpinner("Running analysis..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
		table:    t,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Start()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case app.AnalysisCompletedMsg:
		m.syncResults()

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	m.syncResults()

	hasRows := len(m.table.Rows()) > 0
	switch {
	case hasRows && key.Matches(msg, m.keys.NextMonth):
		m.table.MoveDown(1)
	case hasRows && key.Matches(msg, m.keys.PrevMonth):
		m.table.MoveUp(1)
	case hasRows && key.Matches(msg, m.keys.FirstMonth):
		m.table.GotoTop()
	case hasRows && key.Matches(msg, m.keys.LastMonth):
		m.table.GotoBottom()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// syncResults reloads the table when a new run has completed. The cursor
// is kept on the same row.
func (m *Model) syncResults() {
	res := m.state.GetResults()
	if res == nil || (res.RunID == m.runID && len(m.table.Rows()) == len(res.Records)) {
		return
	}
	m.runID = res.RunID

	rows := make([]table.Row, len(res.Records))
	for i, rec := range res.Records {
		rows[i] = table.Row(report.Row(rec))
	}
	cursor := m.table.Cursor()
	m.table.SetRows(rows)
	m.table.SetHeight(len(rows) + 2) // header and its border
	if cursor >= 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

// selectedRecord returns the month under the table cursor.
func (m *Model) selectedRecord() (models.MonthRecord, bool) {
	res := m.state.GetResults()
	if res == nil {
		return models.MonthRecord{}, false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(res.Records) {
		return models.MonthRecord{}, false
	}
	return res.Records[i], true
}

// SetSize sets the available size for the dashboard.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.NextMonth,
		m.keys.PrevMonth,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextMonth, m.keys.PrevMonth},
		{m.keys.FirstMonth, m.keys.LastMonth},
	}
}
