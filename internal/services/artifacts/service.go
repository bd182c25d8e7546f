// Package artifacts watches the output directory and keeps a listing of the
// files the analyzer has written there.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/j-veylop/freshbox-analyzer/internal/logger"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// DefaultDebounce is used when New is given a non-positive interval.
const DefaultDebounce = 250 * time.Millisecond

// Event represents an artifacts service event.
type Event struct {
	Type  EventType
	Error error
}

// EventType defines the type of artifacts event.
type EventType int

const (
	// EventArtifactsLoaded fires once after the initial scan.
	EventArtifactsLoaded EventType = iota
	// EventArtifactsChanged fires after the directory settles following a change.
	EventArtifactsChanged
	// EventError reports watcher or scan failures.
	EventError
)

// Service lists the output directory and rescans it on change.
type Service struct {
	mu            sync.RWMutex
	dir           string
	artifacts     []models.Artifact
	debounce      time.Duration
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	closeOnce     sync.Once
	debounceTimer *time.Timer
}

// New scans dir, creating it if needed, and starts watching it.
func New(dir string, debounce time.Duration) (*Service, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	s := &Service{
		dir:       dir,
		debounce:  debounce,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := s.Refresh(); err != nil {
		return nil, fmt.Errorf("failed to scan output directory: %w", err)
	}

	if err := s.startWatcher(); err != nil {
		return nil, fmt.Errorf("failed to start directory watcher: %w", err)
	}

	s.sendEvent(Event{Type: EventArtifactsLoaded})

	return s, nil
}

// Dir returns the watched directory.
func (s *Service) Dir() string {
	return s.dir
}

// Events returns the event channel for subscribing to directory changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// List returns a copy of the current listing, sorted by name.
func (s *Service) List() []models.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Artifact, len(s.artifacts))
	copy(out, s.artifacts)
	return out
}

// Refresh rescans the directory.
func (s *Service) Refresh() error {
	artifacts, err := scan(s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.artifacts = artifacts
	s.mu.Unlock()
	return nil
}

// scan lists regular files in dir, skipping hidden ones.
func scan(dir string) ([]models.Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	artifacts := make([]models.Artifact, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == "" || name[0] == '.' {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info
			continue
		}
		artifacts = append(artifacts, models.Artifact{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Kind:    models.KindForPath(name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})
	return artifacts, nil
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	if err := watcher.Add(s.dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing. Chart and workbook
// writes arrive as bursts of Create and Write events.
func (s *Service) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			s.mu.Lock()
			if s.debounceTimer != nil {
				s.debounceTimer.Stop()
			}
			s.debounceTimer = time.AfterFunc(s.debounce, s.handleChange)
			s.mu.Unlock()

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleChange rescans the directory after the debounce interval.
func (s *Service) handleChange() {
	select {
	case <-s.stopChan:
		return
	default:
	}

	if err := s.Refresh(); err != nil {
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}
	logger.Debug("output directory changed", "dir", s.dir)
	s.sendEvent(Event{Type: EventArtifactsChanged})
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the watcher and cleans up resources. It is safe to call more
// than once.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stopChan)

		s.mu.Lock()
		if s.debounceTimer != nil {
			s.debounceTimer.Stop()
		}
		s.mu.Unlock()

		if s.watcher != nil {
			err = s.watcher.Close()
		}
	})
	return err
}
