// Package app contains the root bubbletea model of the browser.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/playback"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these, so they are
// matched by type in the Update() switch.

// PlaybackMessage is implemented by messages related to audio playback.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// LibraryScanMessage is implemented by messages related to library scanning.
type LibraryScanMessage interface {
	tea.Msg
	libraryScanMessage()
}

// TickMsg refreshes the now playing segment while playing.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// PlaybackActionMsg asks the app to run a playback action through the
// playback service.
type PlaybackActionMsg struct {
	Action playback.Action
}

func (PlaybackActionMsg) playbackMessage() {}

// ServiceStateChangedMsg wraps a playback state change event.
type ServiceStateChangedMsg playback.StateChange

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg wraps a track change event.
type ServiceTrackChangedMsg playback.TrackChange

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceErrorMsg wraps a playback error event.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the playback service shuts down.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// LibraryScanProgressMsg wraps library scan progress updates.
type LibraryScanProgressMsg library.ScanProgress

func (LibraryScanProgressMsg) libraryScanMessage() {}

// LibraryScanCompleteMsg is sent when a library scan returns.
type LibraryScanCompleteMsg struct {
	Stats *library.ScanStats
	Err   error
}

func (LibraryScanCompleteMsg) libraryScanMessage() {}
