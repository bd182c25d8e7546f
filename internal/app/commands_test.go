package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/freshbox-analyzer/internal/config"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/services"
)

// newTestManager builds a manager that writes nothing: no chart, no workbook
// and no history.
func newTestManager(t *testing.T) *services.Manager {
	t.Helper()
	cfg := &config.Config{
		OutputDir:    filepath.Join(t.TempDir(), "outputs"),
		DatabasePath: filepath.Join(t.TempDir(), "history.db"),
	}
	mgr, err := services.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}

func TestTickCmd(t *testing.T) {
	if tickCmd(time.Millisecond) == nil {
		t.Error("tickCmd returned nil")
	}
	if defaultTickCmd() == nil {
		t.Error("defaultTickCmd returned nil")
	}
}

func TestRunAnalysisCmd(t *testing.T) {
	mgr := newTestManager(t)

	msg := runAnalysisCmd(mgr)()
	done, ok := msg.(AnalysisCompletedMsg)
	if !ok {
		t.Fatalf("Expected AnalysisCompletedMsg, got %T", msg)
	}
	if done.Error != nil {
		t.Fatalf("Run failed: %v", done.Error)
	}
	if done.Results == nil || len(done.Results.Records) != 6 {
		t.Fatalf("unexpected results %+v", done.Results)
	}
	if done.Results.OptimizationTarget != models.CategoryMaintenance {
		t.Errorf("OptimizationTarget = %v, want maintenance", done.Results.OptimizationTarget)
	}
}

func TestLoadHistoryCmd_Disabled(t *testing.T) {
	mgr := newTestManager(t)

	msg := loadHistoryCmd(mgr, models.TimeRange7Days)()
	loaded, ok := msg.(HistoryLoadedMsg)
	if !ok {
		t.Fatalf("Expected HistoryLoadedMsg, got %T", msg)
	}
	if !errors.Is(loaded.Error, services.ErrHistoryDisabled) {
		t.Errorf("Error = %v, want ErrHistoryDisabled", loaded.Error)
	}
}

func TestLoadArtifactsCmd(t *testing.T) {
	mgr := newTestManager(t)

	msg := loadArtifactsCmd(mgr)()
	loaded, ok := msg.(ArtifactsLoadedMsg)
	if !ok {
		t.Fatalf("Expected ArtifactsLoadedMsg, got %T", msg)
	}
	if loaded.Artifacts != nil {
		t.Error("artifacts should be nil while the watcher is stopped")
	}
}

func TestSubscribeAndWait(t *testing.T) {
	mgr := newTestManager(t)

	msg := subscribeToServicesCmd(mgr)()
	sub, ok := msg.(SubscriptionEventMsg)
	if !ok {
		t.Fatalf("Expected SubscriptionEventMsg, got %T", msg)
	}

	go func() {
		_, _ = mgr.Run(t.Context())
	}()

	got := waitForServiceEventCmd(sub.Channel)()
	event, ok := got.(ServiceEventMsg)
	if !ok {
		t.Fatalf("Expected ServiceEventMsg, got %T", got)
	}
	if _, ok := event.Event.(services.AnalysisCompletedEvent); !ok {
		t.Errorf("Event = %T, want AnalysisCompletedEvent", event.Event)
	}
}

func TestWaitForServiceEventCmd_Closed(t *testing.T) {
	ch := make(chan services.ServiceEvent)
	close(ch)

	if msg := waitForServiceEventCmd(ch)(); msg != nil {
		t.Errorf("closed channel should yield nil, got %T", msg)
	}
}

func TestClearNotificationCmd(t *testing.T) {
	cmd := clearNotificationCmd("id", time.Millisecond)
	if cmd == nil {
		t.Fatal("clearNotificationCmd returned nil")
	}
	msg := cmd()
	remove, ok := msg.(RemoveNotificationMsg)
	if !ok {
		t.Fatalf("Expected RemoveNotificationMsg, got %T", msg)
	}
	if remove.ID != "id" {
		t.Errorf("ID = %q, want id", remove.ID)
	}
}

func TestNotifyCmds(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) tea.Cmd
		want NotificationType
	}{
		{"Success", notifySuccessCmd, NotificationSuccess},
		{"Error", notifyErrorCmd, NotificationError},
		{"Warning", notifyWarningCmd, NotificationWarning},
		{"Info", notifyInfoCmd, NotificationInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.fn("msg")()

			addMsg, ok := msg.(AddNotificationMsg)
			if !ok {
				t.Fatalf("Expected AddNotificationMsg, got %T", msg)
			}
			if addMsg.Type != tt.want {
				t.Errorf("Type = %v, want %v", addMsg.Type, tt.want)
			}
			if addMsg.Message != "msg" {
				t.Errorf("Message = %q, want msg", addMsg.Message)
			}
			if addMsg.Duration <= 0 {
				t.Error("Duration should be positive")
			}
		})
	}
}

func TestCommands_NilManager(t *testing.T) {
	cmds := NewCommands(nil)

	if cmds.LoadArtifacts() != nil {
		t.Error("LoadArtifacts should be nil without a manager")
	}
}

func TestCommands_WithManager(t *testing.T) {
	cmds := NewCommands(newTestManager(t))

	if _, ok := cmds.LoadArtifacts()().(ArtifactsLoadedMsg); !ok {
		t.Error("LoadArtifacts should produce ArtifactsLoadedMsg")
	}
}

func TestCommands_Notifications(t *testing.T) {
	cmds := NewCommands(nil)

	tests := []struct {
		name string
		fn   func(string) tea.Cmd
		want NotificationType
	}{
		{"Success", notifySuccessCmd, NotificationSuccess},
		{"Error", notifyErrorCmd, NotificationError},
		{"Info", cmds.NotifyInfo, NotificationInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.fn("msg")()
			addMsg, ok := msg.(AddNotificationMsg)
			if !ok {
				t.Fatalf("Expected AddNotificationMsg, got %T", msg)
			}
			if addMsg.Type != tt.want {
				t.Errorf("Type = %v, want %v", addMsg.Type, tt.want)
			}
		})
	}
}
