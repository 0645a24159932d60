package app

import (
	"context"
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cuteplay/internal/artist"
	"github.com/llehouerou/cuteplay/internal/config"
	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/player"
	"github.com/llehouerou/cuteplay/internal/state"
	"github.com/llehouerou/cuteplay/internal/ui/testutil"
)

// fakeLibrary serves artists and tracks from memory.
type fakeLibrary struct {
	artists []artist.Artist
	tracks  []library.Track

	// afterRefresh replaces artists when Refresh runs.
	afterRefresh []artist.Artist
	refreshErr   error
	sources      []string
}

func (f *fakeLibrary) Artists() ([]artist.Artist, error) {
	return slices.Clone(f.artists), nil
}

func (f *fakeLibrary) ArtistByID(id int64) (*artist.Artist, error) {
	for _, a := range f.artists {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, library.ErrNotFound
}

func (f *fakeLibrary) Albums(artistID int64) ([]library.Album, error) {
	var albums []library.Album
	for _, t := range f.tracks {
		if t.ArtistID != artistID {
			continue
		}
		i := slices.IndexFunc(albums, func(a library.Album) bool { return a.Name == t.Album })
		if i < 0 {
			albums = append(albums, library.Album{Name: t.Album, Year: t.Year})
			i = len(albums) - 1
		}
		albums[i].TrackCount++
	}
	return albums, nil
}

func (f *fakeLibrary) Tracks(artistID int64, album string) ([]library.Track, error) {
	var out []library.Track
	for _, t := range f.tracks {
		if t.ArtistID == artistID && t.Album == album {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeLibrary) ArtistTracks(artistID int64) ([]library.Track, error) {
	var out []library.Track
	for _, t := range f.tracks {
		if t.ArtistID == artistID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeLibrary) TrackByID(id int64) (*library.Track, error) {
	for _, t := range f.tracks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, library.ErrNotFound
}

func (f *fakeLibrary) RandomTrack() (*library.Track, error) {
	if len(f.tracks) == 0 {
		return nil, library.ErrNotFound
	}
	t := f.tracks[0]
	return &t, nil
}

func (f *fakeLibrary) Refresh(_ context.Context, sources []string, progress chan<- library.ScanProgress) error {
	defer close(progress)
	f.sources = sources
	if f.refreshErr != nil {
		return f.refreshErr
	}
	progress <- library.ScanProgress{Phase: library.PhaseScanning}
	f.artists = f.afterRefresh
	progress <- library.ScanProgress{
		Phase: library.PhaseDone,
		Stats: &library.ScanStats{Added: 1, Artists: len(f.artists)},
	}
	return nil
}

func sampleLibrary() *fakeLibrary {
	return &fakeLibrary{
		artists: []artist.Artist{
			{ID: 1, Name: "ABBA"},
			{ID: 2, Name: "Queen"},
			{ID: 3, Name: "Abcde"},
		},
		tracks: []library.Track{
			{ID: 10, ArtistID: 2, Path: "/music/queen/bo.mp3", Title: "Bohemian Rhapsody", Album: "A Night at the Opera", TrackNumber: 11},
			{ID: 11, ArtistID: 2, Path: "/music/queen/love.mp3", Title: "Love of My Life", Album: "A Night at the Opera", TrackNumber: 9},
			{ID: 20, ArtistID: 1, Path: "/music/abba/sos.mp3", Title: "SOS", Album: "ABBA", TrackNumber: 1},
		},
	}
}

type testEnv struct {
	model  Model
	lib    *fakeLibrary
	state  *state.Mock
	player *player.Mock
	cfg    *config.Config
}

func newTestEnv(t *testing.T, lib *fakeLibrary) *testEnv {
	t.Helper()
	env := &testEnv{
		lib:    lib,
		state:  state.NewMock(),
		player: player.NewMock(),
		cfg: &config.Config{
			LibrarySources: []string{"/music"},
			Searchbar:      config.SearchbarConfig{Position: config.PositionBottom},
		},
	}
	return env.start(t)
}

func (env *testEnv) start(t *testing.T) *testEnv {
	t.Helper()
	svc := playback.New(env.player, env.lib, nil)
	t.Cleanup(func() { _ = svc.Close() })

	m, err := New(Deps{Config: env.cfg, Library: env.lib, State: env.state, Playback: svc})
	require.NoError(t, err)
	env.model = m
	env.update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return env
}

// update sends msg and returns the command produced.
func (env *testEnv) update(msg tea.Msg) tea.Cmd {
	next, cmd := env.model.Update(msg)
	env.model = next.(Model)
	return cmd
}

// press sends keys and returns the command of the last one.
func (env *testEnv) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = env.update(testutil.Key(k))
	}
	return cmd
}

// run executes cmd and feeds the resulting message back, following
// batches, until nothing is left. Commands that block (ticks, service
// watches with no pending event) are dropped after a short wait.
func (env *testEnv) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(50 * time.Millisecond):
		return
	}

	switch msg := msg.(type) {
	case nil, TickMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			env.run(c)
		}
	default:
		env.run(env.update(msg))
	}
}

func (env *testEnv) view() string {
	return testutil.StripANSI(env.model.View())
}
