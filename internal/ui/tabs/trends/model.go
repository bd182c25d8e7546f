// Package trends provides the trends tab: per-category cost lines over the
// analyzed months and the volatility ranking behind the optimization target.
package trends

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/freshbox-analyzer/internal/app"
)

// ChartMode selects which series the trends chart plots.
type ChartMode int

const (
	// ModeCosts plots the four cost categories.
	ModeCosts ChartMode = iota
	// ModeCostPerDelivery plots the cost per delivery.
	ModeCostPerDelivery
	// ModeOnTime plots the on-time delivery rate.
	ModeOnTime
)

const modeCount = 3

// String returns the display name for a chart mode.
func (c ChartMode) String() string {
	switch c {
	case ModeCosts:
		return "Costs by Category"
	case ModeCostPerDelivery:
		return "Cost per Delivery"
	case ModeOnTime:
		return "On-Time Rate"
	default:
		return "Unknown"
	}
}

// Next cycles to the next chart mode.
func (c ChartMode) Next() ChartMode {
	return (c + 1) % modeCount
}

type keyMap struct {
	CycleMode key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		CycleMode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle chart"),
		),
	}
}

// Model represents the trends tab state.
type Model struct {
	state    *app.State
	keys     keyMap
	viewport viewport.Model
	mode     ChartMode
	width    int
	height   int
}

// New creates a new trends model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
		mode:     ModeCosts,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.CycleMode) {
			m.mode = m.mode.Next()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// SetSize sets the available size for the tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.CycleMode}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.keys.CycleMode}}
}
