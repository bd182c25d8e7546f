// Package chart renders the monthly cost trend chart to an image file.
//
// The plotting backend is chosen at build time. The default build links
// gonum/plot; building with the "nochart" tag leaves no backend, in which
// case New returns nil and callers skip chart generation.
package chart

import (
	"context"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// Output constants for the trend chart.
const (
	FileName = "freshbox_cost_trends.png"
	Title    = "FreshBox Logistics - Monthly Cost Trends"
	XLabel   = "Month"
	YLabel   = "Cost (USD)"
	DPI      = 300
)

// Renderer writes a cost trend chart for records into dir and returns the
// path of the written file.
type Renderer interface {
	Render(ctx context.Context, records []models.MonthRecord, dir string) (string, error)
}

// New returns the compiled-in renderer, or nil when no plotting backend is
// available.
func New() Renderer {
	return newBackend()
}

// Available reports whether a plotting backend is compiled in.
func Available() bool {
	return newBackend() != nil
}

// Backend names the compiled-in plotting backend, or "none".
func Backend() string {
	return backendName
}
