package trends

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/freshbox-analyzer/internal/analysis"
	"github.com/j-veylop/freshbox-analyzer/internal/app"
	"github.com/j-veylop/freshbox-analyzer/internal/dataset"
)

func readyState(t *testing.T) *app.State {
	t.Helper()
	records, err := dataset.BuildRecords(dataset.Default())
	if err != nil {
		t.Fatalf("BuildRecords failed: %v", err)
	}
	res, err := analysis.Analyze(records)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	state := app.NewState()
	state.SetLoading(app.ResourceInitial, false)
	state.SetResults(res)
	return state
}

func cycle(m *Model) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
}

func TestNew(t *testing.T) {
	m := New(app.NewState())
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.mode != ModeCosts {
		t.Errorf("Mode = %v, want costs", m.mode)
	}
	if m.Init() != nil {
		t.Error("Init should not schedule anything")
	}
}

func TestChartMode(t *testing.T) {
	tests := []struct {
		mode ChartMode
		name string
		next ChartMode
	}{
		{ModeCosts, "Costs by Category", ModeCostPerDelivery},
		{ModeCostPerDelivery, "Cost per Delivery", ModeOnTime},
		{ModeOnTime, "On-Time Rate", ModeCosts},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.mode.Next(); got != tt.next {
			t.Errorf("%v.Next() = %v, want %v", tt.mode, got, tt.next)
		}
	}
	if ChartMode(9).String() != "Unknown" {
		t.Error("unknown mode should render as Unknown")
	}
}

func TestModel_ViewEmpty(t *testing.T) {
	m := New(app.NewState())
	m.SetSize(80, 30)

	if !strings.Contains(m.View(), "No analysis results yet") {
		t.Error("View should show the empty state")
	}
}

func TestModel_ViewCosts(t *testing.T) {
	m := New(readyState(t))
	m.SetSize(120, 90)

	view := m.View()
	for _, want := range []string{
		"Cost Trends",
		"Monthly cost by category ($)",
		"Fuel",
		"Warehouse",
		"Months: April, May, June, July, August, September",
		"Average Monthly Cost",
		"Volatility",
		"Optimization target:",
		"Truck Maintenance ($)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestModel_CycleModes(t *testing.T) {
	m := New(readyState(t))
	m.SetSize(120, 90)

	cycle(m)
	if m.mode != ModeCostPerDelivery {
		t.Fatalf("Mode = %v, want cost per delivery", m.mode)
	}
	if !strings.Contains(m.View(), "Cost per delivery ($)") {
		t.Error("View should plot cost per delivery")
	}

	cycle(m)
	view := m.View()
	if !strings.Contains(view, "On-time deliveries (%)") {
		t.Error("View should plot the on-time rate")
	}
	if !strings.Contains(view, "Months below 93% are flagged.") {
		t.Error("View should explain the on-time threshold")
	}

	cycle(m)
	if m.mode != ModeCosts {
		t.Errorf("Mode = %v, want costs after a full cycle", m.mode)
	}
}

func TestModel_OtherKeysScroll(t *testing.T) {
	m := New(readyState(t))
	m.SetSize(80, 10)
	m.View()

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.mode != ModeCosts {
		t.Error("scrolling should not change the chart mode")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
