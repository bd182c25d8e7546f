package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/j-veylop/freshbox-analyzer/internal/config"
	"github.com/j-veylop/freshbox-analyzer/internal/dataset"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// fakeRenderer writes a placeholder file instead of a real chart.
type fakeRenderer struct {
	err   error
	calls int
}

func (f *fakeRenderer) Render(_ context.Context, records []models.MonthRecord, dir string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "freshbox_cost_trends.png")
	return path, os.WriteFile(path, []byte("png"), 0o600)
}

// recordingNotifier captures notifications.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingNotifier) notify(title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, title+": "+message)
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tmpDir := t.TempDir()
	return &config.Config{
		OutputDir:     filepath.Join(tmpDir, "outputs"),
		DatabasePath:  filepath.Join(tmpDir, "history.db"),
		LogLevel:      "warn",
		WatchDebounce: 20 * time.Millisecond,
	}
}

func newTestManager(t *testing.T, cfg *config.Config, opts ...Option) *Manager {
	t.Helper()
	mgr, err := NewManager(cfg, opts...)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}

// volatileFuel returns the built-in dataset with fuel swinging wildly so it
// becomes the optimization target.
func volatileFuel() dataset.Columns {
	cols := dataset.Default()
	cols.FuelCost = []float64{10000, 200000, 10000, 200000, 10000, 200000}
	return cols
}

func TestNewManager(t *testing.T) {
	cfg := testConfig(t)
	mgr := newTestManager(t, cfg)

	if mgr.ChartAvailable() {
		t.Error("chart should be unavailable when ChartEnabled is false")
	}
	if mgr.HistoryEnabled() || mgr.database != nil {
		t.Error("history should be disabled by default")
	}
	if mgr.Config() != cfg {
		t.Error("Config() should return the given config")
	}
	if mgr.Artifacts() != nil {
		t.Error("Artifacts() should be nil before the watcher starts")
	}
}

func TestNewManager_NilConfig(t *testing.T) {
	mgr := newTestManager(t, nil, WithRenderer(nil))
	if mgr.Config() == nil {
		t.Fatal("nil config should fall back to defaults")
	}
	if mgr.Config().OutputDir != "outputs" {
		t.Errorf("OutputDir = %q, want outputs", mgr.Config().OutputDir)
	}
}

func TestRun_WithoutChart(t *testing.T) {
	cfg := testConfig(t)
	stamp := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	mgr := newTestManager(t, cfg, WithRenderer(nil), WithClock(func() time.Time { return stamp }))

	res, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.HasChart() {
		t.Errorf("ChartPath = %q, want empty", res.ChartPath)
	}
	if res.OptimizationTarget != models.CategoryMaintenance {
		t.Errorf("OptimizationTarget = %q", res.OptimizationTarget)
	}
	if res.Highest.Month != "April" {
		t.Errorf("Highest = %q, want April", res.Highest.Month)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if !res.GeneratedAt.Equal(stamp) {
		t.Errorf("GeneratedAt = %v, want %v", res.GeneratedAt, stamp)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Error("output directory should not be created when nothing is written")
	}
}

func TestRun_WithChart(t *testing.T) {
	cfg := testConfig(t)
	r := &fakeRenderer{}
	mgr := newTestManager(t, cfg, WithRenderer(r))

	res, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if r.calls != 1 {
		t.Errorf("renderer called %d times, want 1", r.calls)
	}
	want := filepath.Join(cfg.OutputDir, "freshbox_cost_trends.png")
	if res.ChartPath != want {
		t.Errorf("ChartPath = %q, want %q", res.ChartPath, want)
	}
}

func TestRun_ChartError(t *testing.T) {
	cfg := testConfig(t)
	boom := errors.New("disk full")
	mgr := newTestManager(t, cfg, WithRenderer(&fakeRenderer{err: boom}))

	res, err := mgr.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want wrapped %v", err, boom)
	}
	if res != nil {
		t.Error("failed run should not return results")
	}
}

func TestRun_CanceledContext(t *testing.T) {
	mgr := newTestManager(t, testConfig(t), WithRenderer(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mgr.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRun_InvalidDataset(t *testing.T) {
	cols := dataset.Default()
	cols.DeliveriesMade[2] = 0
	mgr := newTestManager(t, testConfig(t), WithRenderer(nil), WithColumns(cols))

	_, err := mgr.Run(context.Background())
	if !errors.Is(err, dataset.ErrZeroDeliveries) {
		t.Fatalf("Run() error = %v, want ErrZeroDeliveries", err)
	}
	if !strings.Contains(err.Error(), "June") {
		t.Errorf("error %q should name the month", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	mgr := newTestManager(t, testConfig(t), WithRenderer(nil))

	first, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if first.RunID == second.RunID {
		t.Error("each run should get a fresh RunID")
	}
	if first.OptimizationTarget != second.OptimizationTarget || first.Recommendation != second.Recommendation {
		t.Error("repeated runs should agree on target and recommendation")
	}
	for i := range first.Averages {
		if first.Averages[i] != second.Averages[i] {
			t.Errorf("Averages[%d] differ: %+v vs %+v", i, first.Averages[i], second.Averages[i])
		}
	}
}

func TestRun_WorkbookExport(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorkbookExport = true
	mgr := newTestManager(t, cfg, WithRenderer(nil))

	res, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.WorkbookPath == "" {
		t.Fatal("WorkbookPath should be set")
	}
	if _, err := os.Stat(res.WorkbookPath); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestRun_WorkbookFailureIsNotFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorkbookExport = true
	// A regular file where the output directory should be makes export fail.
	if err := os.WriteFile(cfg.OutputDir, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	mgr := newTestManager(t, cfg, WithRenderer(nil))

	ch, _ := mgr.Subscribe()

	res, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() should survive export failure, got %v", err)
	}
	if res.WorkbookPath != "" {
		t.Errorf("WorkbookPath = %q, want empty", res.WorkbookPath)
	}

	select {
	case ev := <-ch:
		e, ok := ev.(ErrorEvent)
		if !ok || e.Service != "export" {
			t.Errorf("first event = %#v, want export ErrorEvent", ev)
		}
	case <-time.After(time.Second):
		t.Error("timeout waiting for error event")
	}
}

func TestRun_RecordsHistory(t *testing.T) {
	cfg := testConfig(t)
	cfg.HistoryEnabled = true
	mgr := newTestManager(t, cfg, WithRenderer(nil))

	if !mgr.HistoryEnabled() {
		t.Fatal("history should be enabled")
	}

	for i := 0; i < 2; i++ {
		if _, err := mgr.Run(context.Background()); err != nil {
			t.Fatalf("Run() #%d failed: %v", i, err)
		}
	}

	history, err := mgr.History(models.TimeRangeAllTime)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(history.Runs) != 2 {
		t.Fatalf("recorded %d runs, want 2", len(history.Runs))
	}
	if history.TargetShifts() != 0 {
		t.Errorf("TargetShifts() = %d, want 0", history.TargetShifts())
	}
	if history.Runs[0].HighestMonth != "April" {
		t.Errorf("HighestMonth = %q, want April", history.Runs[0].HighestMonth)
	}
}

func TestNewManager_PrunesHistory(t *testing.T) {
	cfg := testConfig(t)
	cfg.HistoryEnabled = true

	seed := newTestManager(t, cfg, WithRenderer(nil))
	old := models.RunSummary{
		RunID:              "old-run",
		CreatedAt:          time.Now().AddDate(0, 0, -100),
		OptimizationTarget: models.CategoryFuel,
		Recommendation:     "r",
	}
	if err := seed.database.InsertRun(&old); err != nil {
		t.Fatalf("InsertRun failed: %v", err)
	}
	if _, err := seed.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if err := seed.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	cfg.HistoryRetentionDays = 30
	mgr := newTestManager(t, cfg, WithRenderer(nil))

	n, err := mgr.database.CountRuns()
	if err != nil {
		t.Fatalf("CountRuns failed: %v", err)
	}
	if n != 1 {
		t.Errorf("CountRuns = %d, want 1 after pruning", n)
	}
}

func TestRun_TargetShiftNotifies(t *testing.T) {
	cfg := testConfig(t)
	cfg.HistoryEnabled = true
	cfg.NotifyOnShift = true

	first, err := NewManager(cfg, WithRenderer(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := first.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	_ = first.Close()

	n := &recordingNotifier{}
	mgr := newTestManager(t, cfg, WithRenderer(nil), WithColumns(volatileFuel()), WithNotifier(n.notify))
	ch, _ := mgr.Subscribe()

	res, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.OptimizationTarget != models.CategoryFuel {
		t.Fatalf("OptimizationTarget = %q, want fuel", res.OptimizationTarget)
	}

	var shifted *TargetShiftedEvent
	timeout := time.After(time.Second)
	for shifted == nil {
		select {
		case ev := <-ch:
			if e, ok := ev.(TargetShiftedEvent); ok {
				shifted = &e
			}
		case <-timeout:
			t.Fatal("timeout waiting for TargetShiftedEvent")
		}
	}
	if shifted.Previous != models.CategoryMaintenance || shifted.Current != models.CategoryFuel {
		t.Errorf("shift = %+v", shifted)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) != 1 {
		t.Fatalf("notifications = %d, want 1", len(n.calls))
	}
	if !strings.Contains(n.calls[0], "Fuel replaced Maintenance") {
		t.Errorf("notification = %q", n.calls[0])
	}
}

func TestRun_NoNotificationWhenDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.HistoryEnabled = true

	n := &recordingNotifier{}
	mgr := newTestManager(t, cfg, WithRenderer(nil), WithNotifier(n.notify))
	if _, err := mgr.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	_ = mgr.Close()

	mgr2 := newTestManager(t, cfg, WithRenderer(nil), WithColumns(volatileFuel()), WithNotifier(n.notify))
	if _, err := mgr2.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(n.calls) != 0 {
		t.Errorf("notifications = %v, want none", n.calls)
	}
}

func TestHistory_Disabled(t *testing.T) {
	mgr := newTestManager(t, testConfig(t))
	if _, err := mgr.History(models.TimeRange7Days); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("History() error = %v, want ErrHistoryDisabled", err)
	}
}

func TestStartWatcher(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorkbookExport = true
	mgr := newTestManager(t, cfg, WithRenderer(nil))
	ch, _ := mgr.Subscribe()

	if err := mgr.StartWatcher(); err != nil {
		t.Fatalf("StartWatcher() failed: %v", err)
	}
	// Second call is a no-op.
	if err := mgr.StartWatcher(); err != nil {
		t.Fatalf("second StartWatcher() failed: %v", err)
	}

	if _, err := mgr.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev := <-ch:
			e, ok := ev.(ArtifactsChangedEvent)
			if !ok {
				continue
			}
			for _, a := range e.Artifacts {
				if a.Kind == models.ArtifactWorkbook {
					if len(mgr.Artifacts()) == 0 {
						t.Error("Artifacts() should list the workbook")
					}
					return
				}
			}
		case <-timeout:
			t.Fatal("timeout waiting for workbook artifact")
		}
	}
}

func TestManager_Subscription(t *testing.T) {
	mgr := newTestManager(t, testConfig(t))

	ch, cmd := mgr.Subscribe()
	if ch == nil {
		t.Error("Subscribe returned nil channel")
	}
	if cmd == nil {
		t.Error("Subscribe returned nil command")
	}

	mgr.Unsubscribe(ch)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("Channel should be closed")
		}
	default:
		t.Error("Unsubscribe should close the channel")
	}
}

func TestManager_Broadcast(t *testing.T) {
	mgr := newTestManager(t, testConfig(t))

	ch, _ := mgr.Subscribe()
	defer mgr.Unsubscribe(ch)

	event := TargetShiftedEvent{Previous: models.CategoryFuel, Current: models.CategoryLabor}
	mgr.broadcast(event)

	select {
	case e := <-ch:
		if e != event {
			t.Errorf("Got event %v, want %v", e, event)
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for broadcast")
	}
}

func TestManager_CloseIdempotent(t *testing.T) {
	mgr, err := NewManager(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	ch, _ := mgr.Subscribe()

	if err := mgr.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("subscriber channel should be closed")
	}
}

func TestWaitForEvent(t *testing.T) {
	ch := make(chan ServiceEvent, 1)
	ch <- AnalysisCompletedEvent{}

	cmd := waitForEvent(ch)
	msg := cmd()
	if _, ok := msg.(AnalysisCompletedEvent); !ok {
		t.Errorf("waitForEvent cmd returned %T", msg)
	}
}

func TestServiceEvent_Interface(t *testing.T) {
	var _ ServiceEvent = AnalysisCompletedEvent{}
	var _ ServiceEvent = HistoryUpdatedEvent{}
	var _ ServiceEvent = TargetShiftedEvent{}
	var _ ServiceEvent = ArtifactsChangedEvent{}
	var _ ServiceEvent = ErrorEvent{}
}
