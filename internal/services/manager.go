// Package services runs the cost analysis and routes events to the TUI.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/google/uuid"

	"github.com/j-veylop/freshbox-analyzer/internal/analysis"
	"github.com/j-veylop/freshbox-analyzer/internal/chart"
	"github.com/j-veylop/freshbox-analyzer/internal/config"
	"github.com/j-veylop/freshbox-analyzer/internal/dataset"
	"github.com/j-veylop/freshbox-analyzer/internal/db"
	"github.com/j-veylop/freshbox-analyzer/internal/export"
	"github.com/j-veylop/freshbox-analyzer/internal/logger"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/services/artifacts"
)

// ErrHistoryDisabled is returned by history queries when no database is open.
var ErrHistoryDisabled = errors.New("run history is disabled")

type (
	// AnalysisCompletedEvent is emitted after every successful run.
	AnalysisCompletedEvent struct {
		Results *models.AnalysisResults
	}

	// HistoryUpdatedEvent is emitted when a run was recorded.
	HistoryUpdatedEvent struct {
		Run models.RunSummary
	}

	// TargetShiftedEvent is emitted when the optimization target differs from
	// the previously recorded run.
	TargetShiftedEvent struct {
		Previous models.Category
		Current  models.Category
	}

	// ArtifactsChangedEvent is emitted when the output directory changes.
	ArtifactsChangedEvent struct {
		Artifacts []models.Artifact
	}

	// ErrorEvent is emitted when an optional step fails.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (AnalysisCompletedEvent) isServiceEvent() {}
func (HistoryUpdatedEvent) isServiceEvent()    {}
func (TargetShiftedEvent) isServiceEvent()     {}
func (ArtifactsChangedEvent) isServiceEvent()  {}
func (ErrorEvent) isServiceEvent()             {}

// Notifier delivers a desktop notification.
type Notifier func(title, message string) error

func beeepNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Option customizes a Manager.
type Option func(*Manager)

// WithRenderer replaces the chart renderer. A nil renderer disables charts.
func WithRenderer(r chart.Renderer) Option {
	return func(m *Manager) {
		m.renderer = r
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		m.notify = n
	}
}

// WithColumns analyzes the given columns instead of the built-in dataset.
func WithColumns(c dataset.Columns) Option {
	return func(m *Manager) {
		m.columns = &c
	}
}

// WithClock replaces the time source used to stamp runs.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager runs the analysis pipeline and its optional extras, and routes
// events to subscribers.
type Manager struct {
	mu          sync.RWMutex
	runMu       sync.Mutex
	cfg         *config.Config
	columns     *dataset.Columns
	renderer    chart.Renderer
	database    *db.DB
	artifacts   *artifacts.Service
	notify      Notifier
	now         func() time.Time
	stopChan    chan struct{}
	closeOnce   sync.Once
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager. History is opened when enabled;
// a failure to open it is logged and the manager runs without it.
func NewManager(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Manager{
		cfg:      cfg,
		notify:   beeepNotify,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	if cfg.ChartEnabled {
		m.renderer = chart.New()
	}

	for _, opt := range opts {
		opt(m)
	}

	if cfg.HistoryEnabled {
		database, err := db.New(cfg.DatabasePath)
		if err != nil {
			logger.Warn("run history unavailable", "path", cfg.DatabasePath, "error", err)
		} else {
			m.database = database
			m.pruneHistory()
		}
	}

	return m, nil
}

// pruneHistory applies the configured retention and reclaims the freed space.
func (m *Manager) pruneHistory() {
	if m.cfg.HistoryRetentionDays > 0 {
		deleted, err := m.database.DeleteRunsOlderThan(m.cfg.HistoryRetentionDays)
		if err != nil {
			logger.Warn("failed to prune run history", "error", err)
		} else if deleted > 0 {
			logger.Info("pruned run history", "deleted", deleted, "days", m.cfg.HistoryRetentionDays)
			if err := m.database.Vacuum(); err != nil {
				logger.Warn("failed to vacuum run history", "error", err)
			}
		}
	}

	if n, err := m.database.CountRuns(); err == nil {
		logger.Debug("run history opened", "path", m.database.Path(), "runs", n)
	}
}

// Run builds the month records, analyzes them and writes the enabled
// artifacts. Only record building, analysis and a present chart backend
// failing can fail the run.
func (m *Manager) Run(ctx context.Context) (*models.AnalysisResults, error) {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cols := dataset.Default()
	if m.columns != nil {
		cols = *m.columns
	}

	records, err := dataset.BuildRecords(cols)
	if err != nil {
		return nil, fmt.Errorf("failed to build records: %w", err)
	}

	res, err := analysis.Analyze(records)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze records: %w", err)
	}
	res.RunID = uuid.NewString()
	res.GeneratedAt = m.now()

	if m.renderer != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := m.renderer.Render(ctx, res.Records, m.cfg.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to render chart: %w", err)
		}
		res.ChartPath = path
		logger.Info("chart written", "path", path)
	} else {
		logger.Debug("chart generation skipped", "backend", chart.Backend(), "enabled", m.cfg.ChartEnabled)
	}

	if m.cfg.WorkbookExport {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := export.WriteWorkbook(res, m.cfg.OutputDir)
		if err != nil {
			logger.Warn("workbook export failed", "error", err)
			m.broadcast(ErrorEvent{Service: "export", Error: err})
		} else {
			res.WorkbookPath = path
			logger.Info("workbook written", "path", path)
		}
	}

	m.recordRun(res)

	m.broadcast(AnalysisCompletedEvent{Results: res})
	return res, nil
}

// recordRun stores the run in history and reports a target shift against the
// previous run.
func (m *Manager) recordRun(res *models.AnalysisResults) {
	if m.database == nil {
		return
	}

	prev, err := m.database.GetLastRun()
	if err != nil {
		logger.Warn("failed to read last run", "error", err)
	}

	summary := models.NewRunSummary(res)
	if err := m.database.InsertRun(&summary); err != nil {
		logger.Warn("failed to record run", "run_id", res.RunID, "error", err)
		m.broadcast(ErrorEvent{Service: "history", Error: err})
		return
	}
	m.broadcast(HistoryUpdatedEvent{Run: summary})

	if prev == nil || prev.OptimizationTarget == res.OptimizationTarget {
		return
	}

	logger.Info("optimization target shifted",
		"previous", prev.OptimizationTarget, "current", res.OptimizationTarget)
	m.broadcast(TargetShiftedEvent{Previous: prev.OptimizationTarget, Current: res.OptimizationTarget})

	if m.cfg.NotifyOnShift && m.notify != nil {
		title := "FreshBox: optimization target changed"
		body := fmt.Sprintf("%s replaced %s. %s",
			res.OptimizationTarget.Short(), prev.OptimizationTarget.Short(), res.Recommendation)
		if err := m.notify(title, body); err != nil {
			logger.Warn("desktop notification failed", "error", err)
		}
	}
}

// StartWatcher begins watching the output directory for artifacts.
func (m *Manager) StartWatcher() error {
	m.mu.Lock()
	if m.artifacts != nil {
		m.mu.Unlock()
		return nil
	}
	svc, err := artifacts.New(m.cfg.OutputDir, m.cfg.WatchDebounce)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to watch output directory: %w", err)
	}
	m.artifacts = svc
	m.mu.Unlock()

	go m.routeEvents(svc)
	return nil
}

// routeEvents routes events from the artifacts watcher to subscribers.
func (m *Manager) routeEvents(svc *artifacts.Service) {
	for {
		select {
		case event := <-svc.Events():
			m.handleArtifactsEvent(svc, event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleArtifactsEvent(svc *artifacts.Service, event artifacts.Event) {
	switch event.Type {
	case artifacts.EventArtifactsLoaded, artifacts.EventArtifactsChanged:
		m.broadcast(ArtifactsChangedEvent{Artifacts: svc.List()})

	case artifacts.EventError:
		m.broadcast(ErrorEvent{
			Service: "artifacts",
			Error:   event.Error,
		})
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// History returns recorded runs within the time range.
func (m *Manager) History(tr models.TimeRange) (*models.RunHistory, error) {
	if m.database == nil {
		return nil, ErrHistoryDisabled
	}
	return m.database.GetRecentRuns(tr)
}

// Artifacts returns the current output directory listing, or nil when the
// watcher is not running.
func (m *Manager) Artifacts() []models.Artifact {
	m.mu.RLock()
	svc := m.artifacts
	m.mu.RUnlock()

	if svc == nil {
		return nil
	}
	return svc.List()
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// ChartAvailable reports whether runs will produce a chart.
func (m *Manager) ChartAvailable() bool {
	return m.renderer != nil
}

// HistoryEnabled reports whether runs are being recorded.
func (m *Manager) HistoryEnabled() bool {
	return m.database != nil
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	var errs []error

	m.closeOnce.Do(func() {
		close(m.stopChan)

		m.mu.Lock()
		for _, sub := range m.subscribers {
			close(sub)
		}
		m.subscribers = nil
		svc := m.artifacts
		m.mu.Unlock()

		if svc != nil {
			if err := svc.Close(); err != nil {
				errs = append(errs, err)
			}
		}

		if m.database != nil {
			if err := m.database.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
