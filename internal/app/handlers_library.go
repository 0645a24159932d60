package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/errmsg"
	"github.com/llehouerou/cuteplay/internal/library"
)

// errNoSources is shown when a refresh is requested without sources.
var errNoSources = errors.New("no library_sources configured")

// startLibraryScan starts a refresh of the configured sources in the
// background. A scan already running is left alone.
func (m *Model) startLibraryScan() tea.Cmd {
	if m.scan != nil {
		return nil
	}
	if !m.cfg.HasLibrarySources() {
		m.setError(errmsg.OpLibraryScan, errNoSources)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	progress := make(chan library.ScanProgress, 16)
	result := make(chan error, 1)
	lib, sources := m.lib, m.cfg.LibrarySources
	go func() {
		result <- lib.Refresh(ctx, sources, progress)
	}()

	m.scan = &scanJob{progress: progress, result: result, cancel: cancel}
	m.logger.Info("library scan started", "sources", len(sources))
	return m.waitForLibraryScan()
}

// waitForLibraryScan waits for the next progress update of the running scan.
func (m Model) waitForLibraryScan() tea.Cmd {
	if m.scan == nil {
		return nil
	}
	job := m.scan
	return waitForChannel(job.progress, func(p library.ScanProgress, ok bool) tea.Msg {
		if !ok {
			return LibraryScanCompleteMsg{Stats: job.last.Stats, Err: <-job.result}
		}
		return LibraryScanProgressMsg(p)
	})
}

// handleLibraryScanMsg routes library scan messages.
func (m Model) handleLibraryScanMsg(msg LibraryScanMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LibraryScanProgressMsg:
		if m.scan == nil {
			return m, nil
		}
		m.scan.last = library.ScanProgress(msg)
		return m, m.waitForLibraryScan()

	case LibraryScanCompleteMsg:
		if m.scan != nil {
			m.scan.cancel()
			m.scan = nil
		}
		if msg.Err != nil {
			if !errors.Is(msg.Err, context.Canceled) {
				m.setError(errmsg.OpLibraryScan, msg.Err)
			}
			return m, nil
		}
		if msg.Stats != nil {
			m.logger.Info("library scan done",
				"added", msg.Stats.Added, "updated", msg.Stats.Updated,
				"removed", msg.Stats.Removed, "artists", msg.Stats.Artists)
		}
		if err := m.loadArtists(); err != nil {
			m.setError(errmsg.OpLibraryLoad, err)
		}
		return m, nil
	}
	return m, nil
}
