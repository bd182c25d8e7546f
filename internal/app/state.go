// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"

	maxNotifications = 10
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	case NotificationLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// Loading resources.
const (
	ResourceInitial  = "initial"
	ResourceAnalysis = "analysis"
	ResourceHistory  = "history"
)

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial  bool
	Analysis bool
	History  bool
}

// State is shared between the root model and the tabs.
type State struct {
	mu sync.RWMutex

	Results      *models.AnalysisResults
	History      *models.RunHistory
	HistoryRange models.TimeRange
	Artifacts    []models.Artifact

	Loading LoadingState

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty state that is waiting for the first run.
func NewState() *State {
	return &State{
		HistoryRange:  models.TimeRange30Days,
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case ResourceInitial:
		s.Loading.Initial = loading
	case ResourceAnalysis:
		s.Loading.Analysis = loading
	case ResourceHistory:
		s.Loading.History = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial || s.Loading.Analysis || s.Loading.History
}

// IsLoading reports whether the named resource is loading.
func (s *State) IsLoading(resource string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch resource {
	case ResourceInitial:
		return s.Loading.Initial
	case ResourceAnalysis:
		return s.Loading.Analysis
	case ResourceHistory:
		return s.Loading.History
	default:
		return false
	}
}

// IsInitialLoading returns true if the first run has not finished yet.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// SetResults stores the latest analysis results.
func (s *State) SetResults(res *models.AnalysisResults) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Results = res
	s.LastUpdated = time.Now()
}

// GetResults returns the latest analysis results, or nil before the first run.
func (s *State) GetResults() *models.AnalysisResults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Results
}

// SetHistory stores the recorded runs for the current range.
func (s *State) SetHistory(h *models.RunHistory) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.History = h
	if h != nil {
		s.HistoryRange = h.Range
	}
}

// GetHistory returns the recorded runs, or nil if none were loaded.
func (s *State) GetHistory() *models.RunHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.History
}

// GetHistoryRange returns the selected history range.
func (s *State) GetHistoryRange() models.TimeRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HistoryRange
}

// SetHistoryRange changes the selected history range.
func (s *State) SetHistoryRange(tr models.TimeRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.HistoryRange = tr
}

// SetArtifacts replaces the output directory listing.
func (s *State) SetArtifacts(artifacts []models.Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Artifacts = make([]models.Artifact, len(artifacts))
	copy(s.Artifacts, artifacts)
}

// GetArtifacts returns a copy of the output directory listing.
func (s *State) GetArtifacts() []models.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artifacts := make([]models.Artifact, len(s.Artifacts))
	copy(artifacts, s.Artifacts)
	return artifacts
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.RemoveNotification(LoadingNotificationID)
}

// GetLastUpdated returns the time of the last completed run.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}
