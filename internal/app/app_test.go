package app

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cuteplay/internal/artist"
	"github.com/llehouerou/cuteplay/internal/config"
	"github.com/llehouerou/cuteplay/internal/errmsg"
	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/logging"
	"github.com/llehouerou/cuteplay/internal/navigation"
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/player"
	"github.com/llehouerou/cuteplay/internal/state"
	"github.com/llehouerou/cuteplay/internal/ui/artistlist"
	"github.com/llehouerou/cuteplay/internal/ui/testutil"
)

func artistNames(m Model) []string {
	items := m.artists.Items()
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.Name
	}
	return out
}

// pressRun sends each key and runs what it produces.
func (env *testEnv) pressRun(keys ...string) {
	for _, k := range keys {
		env.run(env.update(testutil.Key(k)))
	}
}

func TestNew_MissingDependency(t *testing.T) {
	_, err := New(Deps{})
	require.Error(t, err)
}

func TestNew_RestoresScreenState(t *testing.T) {
	env := &testEnv{
		lib:    sampleLibrary(),
		state:  state.NewMock(),
		player: player.NewMock(),
		cfg:    &config.Config{},
	}
	env.state.SaveScreen(state.ScreenState{SortAscending: false, SelectedArtistID: 3})
	env.start(t)

	assert.Equal(t, []string{"Queen", "Abcde", "ABBA"}, artistNames(env.model))
	assert.Equal(t, int64(3), env.model.artists.SelectedID())
	assert.Contains(t, env.view(), "Z-A")
}

func TestView_ListsArtists(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	view := env.view()

	for _, name := range []string{"ABBA", "Queen", "Abcde", "3 artists"} {
		assert.Contains(t, view, name)
	}
	assert.Len(t, strings.Split(env.model.View(), "\n"), 24)
}

func TestView_EmptyLibrary(t *testing.T) {
	env := newTestEnv(t, &fakeLibrary{})

	assert.True(t, testutil.ContainsLine(env.view(), artistlist.EmptyText))
}

func TestEnter_NavigatesToDetailsAndBack(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("j")
	cmd := env.press("enter")
	msg := testutil.ExecuteCmd(cmd)
	require.Equal(t, navigation.NavigateMsg{Screen: navigation.ArtistDetails{ID: 2}}, msg)

	env.update(msg)
	assert.Equal(t, navigation.ArtistDetails{ID: 2}, env.model.nav.Current())
	view := env.view()
	assert.Contains(t, view, "Bohemian Rhapsody")
	assert.Contains(t, view, "1 album · 2 tracks")

	env.pressRun("esc")
	assert.Equal(t, navigation.Artists{}, env.model.nav.Current())
	assert.Equal(t, int64(2), env.model.artists.SelectedID(), "selection kept across navigation")
}

func TestDetails_UnknownArtist(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.update(navigation.NavigateMsg{Screen: navigation.ArtistDetails{ID: 99}})

	assert.Contains(t, env.view(), "Artist not found")
}

func TestDetails_PlayArtist(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.update(navigation.NavigateMsg{Screen: navigation.ArtistDetails{ID: 2}})

	env.pressRun("a")

	assert.Equal(t, []string{"/music/queen/bo.mp3"}, env.player.PlayCalls())
	history := env.model.playback.History()
	require.Len(t, history, 2)
	assert.Equal(t, int64(11), history[1].ID)
}

func TestSelectionChange_SavesScreen(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("j", "j")

	screen, err := env.state.GetScreen()
	require.NoError(t, err)
	assert.Equal(t, int64(3), screen.SelectedArtistID)
	assert.True(t, screen.SortAscending)
}

func TestR_DispatchesPlayRandom(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	msg := testutil.ExecuteCmd(env.press("r"))
	require.Equal(t, PlaybackActionMsg{Action: playback.PlayRandom{}}, msg)

	env.update(msg)

	assert.Equal(t, []string{"/music/queen/bo.mp3"}, env.player.PlayCalls())
	assert.True(t, env.model.ticking)
	view := env.view()
	assert.Contains(t, view, "Bohemian Rhapsody", "now playing segment")
	assert.Contains(t, view, "0:00 / 0:00")
}

func TestR_EmptyLibraryShowsError(t *testing.T) {
	env := newTestEnv(t, &fakeLibrary{})

	env.pressRun("r")

	assert.Contains(t, env.view(), "Failed to start playback: library is empty")

	env.pressRun("j")
	assert.NotContains(t, env.view(), "Failed", "status cleared on next key")
}

func TestNew_TagsLogLinesWithComponentOnce(t *testing.T) {
	var buf bytes.Buffer
	svc := playback.New(player.NewMock(), &fakeLibrary{}, nil)
	t.Cleanup(func() { _ = svc.Close() })
	m, err := New(Deps{
		Config:   &config.Config{},
		Library:  &fakeLibrary{},
		State:    state.NewMock(),
		Playback: svc,
		Logger:   logging.Component(logging.New(&buf, "debug"), "app"),
	})
	require.NoError(t, err)

	m.setError(errmsg.OpPlaybackStart, errors.New("no audio device"))

	out := buf.String()
	assert.Contains(t, out, "no audio device")
	assert.Equal(t, 1, strings.Count(out, "component=app"), out)
}

func TestSpace_NothingLoaded(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun(" ")

	assert.Contains(t, env.view(), "Failed to toggle playback")
}

func TestSpace_TogglesPlayback(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.pressRun("r")

	env.pressRun(" ")
	assert.Equal(t, player.Paused, env.player.State())

	env.pressRun(" ")
	assert.Equal(t, player.Playing, env.player.State())
}

func TestTick_StopsWhenNotPlaying(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.pressRun("r", "s")

	cmd := env.update(TickMsg{})

	assert.Nil(t, cmd)
	assert.False(t, env.model.ticking)
}

func TestSearch_FiltersLive(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("/", "a", "b")

	assert.Equal(t, []string{"ABBA", "Abcde"}, artistNames(env.model))
	assert.NotContains(t, env.view(), "Queen")

	env.pressRun("esc")
	assert.False(t, env.model.search.IsFocused())
	assert.Equal(t, "ab", env.model.artists.Query())

	env.pressRun("ctrl+u")
	assert.Equal(t, "ab", env.model.artists.Query(), "ctrl+u only clears while typing")
}

func TestSearch_TypingDoesNotTriggerBindings(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("/", "q", "r")

	assert.Empty(t, env.player.PlayCalls())
	assert.False(t, env.state.Closed())
	assert.Equal(t, "qr", env.model.artists.Query())
}

func TestSearch_NoMatch(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("/", "z", "z")

	assert.True(t, testutil.ContainsLine(env.view(), artistlist.EmptyText))
}

func TestSortMenu_ChoosesDescending(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("o")
	assert.Contains(t, env.view(), "Sort artists")

	env.pressRun("j", "enter")

	assert.False(t, env.model.sortMenu.Active())
	assert.Equal(t, []string{"Queen", "Abcde", "ABBA"}, artistNames(env.model))
	screen, _ := env.state.GetScreen()
	assert.False(t, screen.SortAscending)
	assert.NotContains(t, env.view(), "Sort artists")
}

func TestSortMenu_FromSearchInput(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("/", "ctrl+o")
	assert.True(t, env.model.sortMenu.Active())

	env.pressRun("esc")
	assert.False(t, env.model.sortMenu.Active())
	assert.Equal(t, []string{"ABBA", "Queen", "Abcde"}, artistNames(env.model))
}

func TestSortMenu_SwallowsKeys(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("o", "q")

	assert.False(t, env.state.Closed(), "q dismisses the menu, not the app")
	assert.False(t, env.model.sortMenu.Active())
}

func manyArtists(n int) *fakeLibrary {
	lib := &fakeLibrary{}
	for i := range n {
		lib.artists = append(lib.artists, artist.Artist{ID: int64(i + 1), Name: fmt.Sprintf("Artist %02d", i+1)})
	}
	return lib
}

func TestSearchBar_HidesWhileScrollingDown(t *testing.T) {
	env := newTestEnv(t, manyArtists(60))
	require.Contains(t, env.view(), "earch artists")

	for range 25 {
		env.pressRun("j")
	}
	assert.NotContains(t, env.view(), "earch artists")
	assert.Len(t, strings.Split(env.model.View(), "\n"), 24)

	env.pressRun("k")
	assert.Contains(t, env.view(), "earch artists")
}

func TestSearchBar_Top(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.cfg.Searchbar.Position = config.PositionTop
	env.update(tea.WindowSizeMsg{Width: 80, Height: 24})

	lines := testutil.SplitLines(env.view())
	bar, list := -1, -1
	for i, l := range lines {
		if bar < 0 && strings.Contains(l, "earch artists") {
			bar = i
		}
		if list < 0 && strings.Contains(l, "ABBA") {
			list = i
		}
	}
	require.GreaterOrEqual(t, bar, 0)
	assert.Less(t, bar, list)
}

func TestRefresh_ReloadsArtists(t *testing.T) {
	lib := sampleLibrary()
	lib.afterRefresh = []artist.Artist{{ID: 7, Name: "Björk"}}
	env := newTestEnv(t, lib)

	env.pressRun("ctrl+r")

	assert.Nil(t, env.model.scan)
	assert.Equal(t, []string{"/music"}, lib.sources)
	assert.Equal(t, []string{"Björk"}, artistNames(env.model))
}

func TestRefresh_Error(t *testing.T) {
	lib := sampleLibrary()
	lib.refreshErr = errors.New("permission denied")
	env := newTestEnv(t, lib)

	env.pressRun("ctrl+r")

	assert.Contains(t, env.view(), "Failed to scan library: permission denied")
	assert.Equal(t, []string{"ABBA", "Queen", "Abcde"}, artistNames(env.model))
}

func TestRefresh_NoSources(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.cfg.LibrarySources = nil

	cmd := env.press("ctrl+r")

	assert.Nil(t, cmd)
	assert.Contains(t, env.view(), "no library_sources configured")
}

func TestQuit(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.pressRun("r")

	cmd := env.press("q")

	assert.NotNil(t, cmd)
	assert.True(t, env.state.Closed())
	assert.Equal(t, player.Stopped, env.player.State())
}

func TestServiceEvents(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.pressRun("r")

	// Drain the track and state events queued by the play.
	env.run(env.model.Init())
	assert.NotNil(t, env.model.playbackSub)

	env.update(ServiceErrorMsg(playback.ErrorEvent{Operation: "advance", Err: errors.New("decode failed")}))
	assert.Contains(t, env.view(), "Failed to skip track: decode failed")

	env.update(ServiceErrorMsg(playback.ErrorEvent{Operation: "play", Path: "/music/queen/bo.mp3", Err: errors.New("no such file")}))
	assert.Contains(t, env.view(), "Failed to start playback 'bo.mp3': no such file")
}

func TestMouseWheel_MovesSelection(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.run(env.update(tea.MouseMsg{Y: 5, Button: tea.MouseButtonWheelDown}))

	assert.Equal(t, int64(2), env.model.artists.SelectedID())
}

func TestHelp_ShowsScreenBindings(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())

	env.pressRun("?")
	require.True(t, env.model.help.Active())
	view := env.view()
	assert.Contains(t, view, "Key bindings")
	assert.Contains(t, view, "Search artists")

	env.pressRun("q")
	assert.False(t, env.model.help.Active())
	assert.False(t, env.state.Closed(), "q closes the popup, not the app")
}

func TestHelp_DetailsBindings(t *testing.T) {
	env := newTestEnv(t, sampleLibrary())
	env.update(navigation.NavigateMsg{Screen: navigation.ArtistDetails{ID: 2}})

	env.pressRun("?")

	assert.Equal(t, keymap.ContextDetails, env.model.helpContexts()[0])
	assert.Contains(t, env.view(), "Play all by artist")
}
