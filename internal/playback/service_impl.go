package playback

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/player"
)

// restartThreshold is how far into a track Previous restarts it instead of
// going back in history.
const restartThreshold = 3 * time.Second

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.Mutex

	player player.Interface
	lib    Library
	logger *log.Logger

	// history holds played and queued tracks; index is the current one.
	history []Track
	index   int

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a new playback service.
// A nil logger discards.
func New(p player.Interface, lib Library, logger *log.Logger) Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &serviceImpl{
		player: p,
		lib:    lib,
		logger: logger,
		index:  -1,
	}
	p.OnFinished(s.handleTrackFinished)
	return s
}

// Handle dispatches a playback action.
func (s *serviceImpl) Handle(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.logger.Debug("playback action", "action", a.String())

	switch a := a.(type) {
	case PlayRandom:
		return s.playRandomLocked()
	case PlayPause:
		return s.togglePlayPauseLocked()
	case PlayTrack:
		return s.playTrackLocked(a.ID)
	case PlayArtist:
		return s.playArtistLocked(a.ID)
	case Next:
		return s.nextLocked()
	case Previous:
		return s.previousLocked()
	case Stop:
		return s.stopLocked()
	case SeekForward:
		return s.seekLocked(SeekStep)
	case SeekBackward:
		return s.seekLocked(-SeekStep)
	default:
		return fmt.Errorf("unknown playback action %T", a)
	}
}

func (s *serviceImpl) playRandomLocked() error {
	t, err := s.lib.RandomTrack()
	if errors.Is(err, library.ErrNotFound) {
		return ErrLibraryEmpty
	}
	if err != nil {
		return fmt.Errorf("pick random track: %w", err)
	}
	return s.enqueueAndPlayLocked(trackFromLibrary(*t))
}

func (s *serviceImpl) playTrackLocked(id int64) error {
	t, err := s.lib.TrackByID(id)
	if errors.Is(err, library.ErrNotFound) {
		return ErrTrackNotFound
	}
	if err != nil {
		return fmt.Errorf("load track %d: %w", id, err)
	}
	return s.enqueueAndPlayLocked(trackFromLibrary(*t))
}

func (s *serviceImpl) playArtistLocked(artistID int64) error {
	tracks, err := s.lib.ArtistTracks(artistID)
	if err != nil {
		return fmt.Errorf("load artist %d tracks: %w", artistID, err)
	}
	if len(tracks) == 0 {
		return ErrTrackNotFound
	}

	s.truncateUpcomingLocked()
	first := len(s.history)
	for _, t := range tracks {
		s.history = append(s.history, trackFromLibrary(t))
	}
	return s.playIndexLocked(first)
}

// enqueueAndPlayLocked drops upcoming tracks, appends t and plays it.
func (s *serviceImpl) enqueueAndPlayLocked(t Track) error {
	s.truncateUpcomingLocked()
	s.history = append(s.history, t)
	return s.playIndexLocked(len(s.history) - 1)
}

func (s *serviceImpl) truncateUpcomingLocked() {
	if s.index >= 0 && s.index < len(s.history)-1 {
		s.history = s.history[:s.index+1]
	}
}

func (s *serviceImpl) playIndexLocked(i int) error {
	prev := s.currentTrackLocked()
	prevState := stateFromPlayer(s.player.State())

	t := s.history[i]
	s.index = i
	if err := s.player.Play(t.Path); err != nil {
		s.emitError("play", t.Path, err)
		s.emitState(prevState)
		return fmt.Errorf("play %s: %w", t.Path, err)
	}

	s.logger.Info("playing", "track", t.Title, "artist", t.Artist)
	s.emitTrack(prev)
	s.emitState(prevState)
	return nil
}

func (s *serviceImpl) togglePlayPauseLocked() error {
	prevState := stateFromPlayer(s.player.State())

	if prevState == StateStopped {
		// Replay the loaded track after a stop
		if s.currentTrackLocked() == nil {
			return ErrNotReady
		}
		return s.playIndexLocked(s.index)
	}

	s.player.Toggle()
	s.emitState(prevState)
	return nil
}

func (s *serviceImpl) nextLocked() error {
	if s.index+1 < len(s.history) {
		return s.playIndexLocked(s.index + 1)
	}
	return s.playRandomLocked()
}

func (s *serviceImpl) previousLocked() error {
	if s.currentTrackLocked() == nil {
		return ErrNotReady
	}

	state := stateFromPlayer(s.player.State())
	if state.IsActive() && s.player.Position() > restartThreshold {
		pos := s.player.Position()
		s.player.Seek(-pos)
		s.emitPosition(0)
		return nil
	}

	if s.index > 0 {
		return s.playIndexLocked(s.index - 1)
	}
	return s.playIndexLocked(s.index)
}

func (s *serviceImpl) stopLocked() error {
	prevState := stateFromPlayer(s.player.State())
	if prevState == StateStopped {
		return nil
	}
	s.player.Stop()
	s.emitState(prevState)
	return nil
}

func (s *serviceImpl) seekLocked(delta time.Duration) error {
	if !stateFromPlayer(s.player.State()).IsActive() {
		return ErrNotReady
	}
	s.player.Seek(delta)
	s.emitPosition(s.player.Position())
	return nil
}

// handleTrackFinished auto-advances: the next queued track if any, else a
// random one.
func (s *serviceImpl) handleTrackFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if err := s.nextLocked(); err != nil {
		s.logger.Warn("auto-advance failed", "err", err)
		s.emitError("advance", "", err)
		s.emitState(StatePlaying)
	}
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	return stateFromPlayer(s.player.State())
}

// IsPlaying reports whether audio is currently playing.
func (s *serviceImpl) IsPlaying() bool {
	return s.State() == StatePlaying
}

// IsReady reports whether a track is loaded.
func (s *serviceImpl) IsReady() bool {
	return s.CurrentTrack() != nil
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	return s.player.Duration()
}

// Player exposes the underlying player.
func (s *serviceImpl) Player() player.Interface {
	return s.player
}

// CurrentTrack returns the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTrackLocked()
}

func (s *serviceImpl) currentTrackLocked() *Track {
	if s.index < 0 || s.index >= len(s.history) {
		return nil
	}
	t := s.history[s.index]
	return &t
}

// History returns a copy of the played and queued tracks.
func (s *serviceImpl) History() []Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Track(nil), s.history...)
}

// HistoryIndex returns the index of the current track in History (-1 if none).
func (s *serviceImpl) HistoryIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops playback and shuts down subscriptions.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.player.Stop()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

func (s *serviceImpl) emitState(prev State) {
	cur := stateFromPlayer(s.player.State())
	if cur == prev {
		return
	}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	}
}

func (s *serviceImpl) emitTrack(prev *Track) {
	e := TrackChange{Previous: prev, Current: s.currentTrackLocked()}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendTrack(e)
	}
}

func (s *serviceImpl) emitPosition(pos time.Duration) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendPosition(pos)
	}
}

func (s *serviceImpl) emitError(op, path string, err error) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(ErrorEvent{Operation: op, Path: path, Err: err})
	}
}
