package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/errmsg"
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/ui/searchbar"
)

// handlePlaybackMsg routes playback messages.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlaybackActionMsg:
		return m, m.handlePlaybackAction(msg.Action)

	case TickMsg:
		if !m.playback.IsPlaying() {
			m.ticking = false
			return m, nil
		}
		m.syncNowPlaying()
		return m, TickCmd()

	case ServiceStateChangedMsg:
		m.syncNowPlaying()
		return m, tea.Batch(m.startTicking(), m.WatchServiceEvents())

	case ServiceTrackChangedMsg:
		m.syncNowPlaying()
		if msg.Current != nil {
			m.logger.Info("now playing", "title", msg.Current.Title, "artist", msg.Current.Artist)
		}
		return m, m.WatchServiceEvents()

	case ServiceErrorMsg:
		op := opForEvent(msg.Operation)
		name := ""
		if msg.Path != "" {
			name = filepath.Base(msg.Path)
		}
		m.status = errmsg.FormatWith(op, name, msg.Err)
		m.logger.Error(string(op), "path", msg.Path, "err", msg.Err)
		return m, m.WatchServiceEvents()

	case ServiceClosedMsg:
		m.playbackSub = nil
		return m, nil
	}
	return m, nil
}

// handlePlaybackAction runs a through the playback service.
func (m *Model) handlePlaybackAction(a playback.Action) tea.Cmd {
	m.logger.Debug("playback action", "action", a.String())
	if err := m.playback.Handle(a); err != nil {
		m.setError(opForAction(a), err)
	}
	m.syncNowPlaying()
	return m.startTicking()
}

// startTicking starts the once a second refresh while playing.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.playback.IsPlaying() {
		return nil
	}
	m.ticking = true
	return TickCmd()
}

// syncNowPlaying copies the playback state into the screens.
func (m *Model) syncNowPlaying() {
	np := searchbar.NowPlaying{
		Playing: m.playback.IsPlaying(),
		Ready:   m.playback.IsReady(),
	}
	var artistID, trackID int64
	if t := m.playback.CurrentTrack(); t != nil {
		np.Title = t.Title
		artistID, trackID = t.ArtistID, t.ID
	}
	m.search.SetNowPlaying(np)
	m.artists.SetPlayingArtist(artistID)
	m.details.SetPlayingTrack(trackID)
}

func opForAction(a playback.Action) errmsg.Op {
	switch a.(type) {
	case playback.PlayPause:
		return errmsg.OpPlaybackToggle
	case playback.SeekForward, playback.SeekBackward:
		return errmsg.OpPlaybackSeek
	case playback.Next, playback.Previous:
		return errmsg.OpPlaybackSkip
	default:
		return errmsg.OpPlaybackStart
	}
}

func opForEvent(operation string) errmsg.Op {
	if operation == "advance" {
		return errmsg.OpPlaybackSkip
	}
	return errmsg.OpPlaybackStart
}
