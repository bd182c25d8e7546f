package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/freshbox-analyzer/internal/ui/styles"
)

// RunSpinner is shown while an analysis run is in flight. It renders its
// label followed by the time elapsed since Start.
type RunSpinner struct {
	spinner spinner.Model
	label   string
	started time.Time
	style   lipgloss.Style
	now     func() time.Time
}

// NewSpinner creates a run spinner with the given label.
func NewSpinner(label string) RunSpinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return RunSpinner{
		spinner: s,
		label:   label,
		style:   lipgloss.NewStyle().Foreground(styles.TextSecondary),
		now:     time.Now,
	}
}

// Start resets the elapsed clock and returns the first tick.
func (r *RunSpinner) Start() tea.Cmd {
	r.started = r.now()
	return r.spinner.Tick
}

// Update advances the animation on spinner ticks.
func (r RunSpinner) Update(msg tea.Msg) (RunSpinner, tea.Cmd) {
	var cmd tea.Cmd
	r.spinner, cmd = r.spinner.Update(msg)
	return r, cmd
}

// Elapsed returns the time since Start, truncated to whole seconds.
func (r RunSpinner) Elapsed() time.Duration {
	if r.started.IsZero() {
		return 0
	}
	return r.now().Sub(r.started).Truncate(time.Second)
}

// View renders the spinner, label and elapsed time on one line.
func (r RunSpinner) View() string {
	text := r.label
	if d := r.Elapsed(); d > 0 {
		text = fmt.Sprintf("%s %s", r.label, d)
	}
	return r.spinner.View() + " " + r.style.Render(text)
}

// RenderSpinnerCentered renders a spinner centered in a given width and height.
func RenderSpinnerCentered(s RunSpinner, width, height int) string {
	return styles.CenterBoth(s.View(), width, height)
}
