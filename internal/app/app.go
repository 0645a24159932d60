package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/cuteplay/internal/artist"
	"github.com/llehouerou/cuteplay/internal/config"
	"github.com/llehouerou/cuteplay/internal/errmsg"
	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/logging"
	"github.com/llehouerou/cuteplay/internal/navigation"
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/state"
	"github.com/llehouerou/cuteplay/internal/ui/artistdetails"
	"github.com/llehouerou/cuteplay/internal/ui/artistlist"
	"github.com/llehouerou/cuteplay/internal/ui/helpbindings"
	"github.com/llehouerou/cuteplay/internal/ui/searchbar"
	"github.com/llehouerou/cuteplay/internal/ui/sortmenu"
)

// Library is the part of the music library the app reads and refreshes.
type Library interface {
	artistdetails.Source
	Artists() ([]artist.Artist, error)
	Refresh(ctx context.Context, sources []string, progress chan<- library.ScanProgress) error
}

var _ Library = (*library.Library)(nil)

// Deps are the collaborators of the root model.
type Deps struct {
	Config   *config.Config
	Library  Library
	State    state.Interface
	Playback playback.Service
	Logger   *log.Logger // nil discards
}

// scanJob is a running library refresh.
type scanJob struct {
	progress <-chan library.ScanProgress
	result   <-chan error
	cancel   context.CancelFunc
	last     library.ScanProgress
}

// Model is the root application model.
type Model struct {
	cfg         *config.Config
	lib         Library
	stateMgr    state.Interface
	playback    playback.Service
	playbackSub *playback.Subscription
	logger      *log.Logger

	nav      *navigation.Stack
	artists  artistlist.Model
	details  artistdetails.Model
	search   searchbar.Model
	sortMenu sortmenu.Model
	help     helpbindings.Model

	keys       *keymap.Resolver // global and playback bindings
	artistKeys *keymap.Resolver

	scan    *scanJob
	ticking bool
	status  string // last error, cleared on the next key
	width   int
	height  int
}

// New creates the root model, restoring the saved sort direction and
// selection and loading the artists.
func New(deps Deps) (Model, error) {
	if deps.Config == nil || deps.Library == nil || deps.State == nil || deps.Playback == nil {
		return Model{}, errors.New("app: missing dependency")
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	screen, restoreErr := deps.State.GetScreen()
	if restoreErr != nil {
		screen = state.DefaultScreen
	}

	m := Model{
		cfg:         deps.Config,
		lib:         deps.Library,
		stateMgr:    deps.State,
		playback:    deps.Playback,
		playbackSub: deps.Playback.Subscribe(),
		logger:      logger,
		nav:         navigation.NewStack(navigation.Artists{}),
		artists:     artistlist.New(screen.SortAscending),
		details:     artistdetails.New(),
		search:      searchbar.New(),
		sortMenu:    sortmenu.New(),
		help:        helpbindings.New(),
		keys:        keymap.NewResolver(keymap.ForContexts(keymap.ContextGlobal, keymap.ContextPlayback)),
		artistKeys:  keymap.NewResolver(keymap.ByContext(keymap.ContextArtists)),
	}
	m.search.SetAscending(screen.SortAscending)
	m.artists.SetFocused(true)
	if restoreErr != nil {
		m.setError(errmsg.OpStateLoad, restoreErr)
	}

	if err := m.loadArtists(); err != nil {
		return Model{}, fmt.Errorf("load artists: %w", err)
	}
	if screen.SelectedArtistID != 0 {
		m.artists.SelectByID(screen.SelectedArtistID)
	}
	m.syncNowPlaying()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.WatchServiceEvents()
}

// loadArtists reloads the source collection from the library.
func (m *Model) loadArtists() error {
	artists, err := m.lib.Artists()
	if err != nil {
		return err
	}
	m.artists.SetArtists(artists)
	return nil
}

// saveScreen persists the sort direction and selection. The state manager
// debounces writes.
func (m *Model) saveScreen() {
	m.stateMgr.SaveScreen(state.ScreenState{
		SortAscending:    m.artists.Ascending(),
		SelectedArtistID: m.artists.SelectedID(),
	})
}

// setError shows err in the status line and logs it.
func (m *Model) setError(op errmsg.Op, err error) {
	m.status = errmsg.Format(op, err)
	m.logger.Error(string(op), "err", err)
}

// Quit stops background work and releases resources.
func (m *Model) Quit() tea.Cmd {
	if m.scan != nil {
		m.scan.cancel()
	}
	m.saveScreen()
	if err := m.playback.Close(); err != nil {
		m.logger.Warn("close playback", "err", err)
	}
	if err := m.stateMgr.Close(); err != nil {
		m.logger.Warn("close state", "err", err)
	}
	return tea.Quit
}
