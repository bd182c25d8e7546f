package app

import (
	"time"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/services"
)

// TickMsg is sent periodically to expire notifications.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// AnalysisCompletedMsg carries the outcome of a run.
type AnalysisCompletedMsg struct {
	Results *models.AnalysisResults
	Error   error
}

// HistoryLoadedMsg carries recorded runs for a time range.
type HistoryLoadedMsg struct {
	History *models.RunHistory
	Error   error
}

// ArtifactsLoadedMsg carries the output directory listing.
type ArtifactsLoadedMsg struct {
	Artifacts []models.Artifact
}

// RefreshMsg requests a refresh of data.
type RefreshMsg struct {
	Resource string // "analysis" or "history"
}

// SetHistoryRangeMsg selects a different history range and reloads it.
type SetHistoryRangeMsg struct {
	Range models.TimeRange
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
