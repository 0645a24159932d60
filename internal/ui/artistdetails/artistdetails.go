// Package artistdetails provides the screen listing an artist's albums and
// tracks.
package artistdetails

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/artist"
	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/navigation"
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/list"
)

// NotFoundText is shown for an ID the library does not know.
const NotFoundText = "Artist not found"

// overhead is border, title, stats and separator.
const overhead = ui.BorderHeight + 3

// Source is the part of the library the screen reads.
type Source interface {
	ArtistByID(id int64) (*artist.Artist, error)
	Albums(artistID int64) ([]library.Album, error)
	Tracks(artistID int64, album string) ([]library.Track, error)
}

var _ Source = (*library.Library)(nil)

// entry is a row: an album header or one of its tracks.
type entry struct {
	album library.Album
	track *library.Track
	first int64 // first track of the album, for header rows
}

func (e entry) isTrack() bool { return e.track != nil }

// Model is the artist details screen.
type Model struct {
	ui.Base
	id         int64
	artist     artist.Artist
	albumCount int
	trackCount int
	notFound   bool
	list       list.Model[entry]
	keys       *keymap.Resolver
	playingID  int64
}

// New creates an empty details screen.
func New() Model {
	m := Model{
		list: list.New[entry](ui.ScrollMargin),
		keys: keymap.NewResolver(keymap.ByContext(keymap.ContextDetails)),
	}
	m.list.SetLayout(overhead, 0)
	return m
}

// Load reads the artist, its albums and tracks. An unknown ID is not an
// error: the screen shows NotFoundText.
func (m *Model) Load(src Source, id int64) error {
	m.id = id
	m.artist = artist.Artist{}
	m.albumCount, m.trackCount = 0, 0
	m.notFound = false
	m.list.SetItems(nil)
	m.list.Cursor().Reset()

	a, err := src.ArtistByID(id)
	if errors.Is(err, library.ErrNotFound) {
		m.notFound = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("load artist %d: %w", id, err)
	}
	m.artist = *a

	albums, err := src.Albums(id)
	if err != nil {
		return fmt.Errorf("load albums of artist %d: %w", id, err)
	}

	var entries []entry
	for _, al := range albums {
		tracks, err := src.Tracks(id, al.Name)
		if err != nil {
			return fmt.Errorf("load tracks of %q: %w", al.Name, err)
		}
		if len(tracks) == 0 {
			continue
		}
		entries = append(entries, entry{album: al, first: tracks[0].ID})
		for i := range tracks {
			entries = append(entries, entry{album: al, track: &tracks[i]})
		}
		m.albumCount++
		m.trackCount += len(tracks)
	}
	m.list.SetItems(entries)
	return nil
}

// ID returns the loaded artist ID.
func (m Model) ID() int64 { return m.id }

// NotFound reports whether the loaded ID is unknown.
func (m Model) NotFound() bool { return m.notFound }

// SetSize sets the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
}

// SetFocused sets whether the screen receives keys.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.list.SetFocused(focused)
}

// SetTopRow sets the screen row of the panel's top border, for mouse hits.
func (m *Model) SetTopRow(row int) {
	m.list.SetLayout(overhead, row+overhead-ui.BorderHeight/2)
}

// SetPlayingTrack sets the track whose row is highlighted, 0 for none.
func (m *Model) SetPlayingTrack(id int64) {
	m.playingID = id
}

// Update handles keys and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.IsFocused() {
		switch m.keys.Resolve(key.String()) { //nolint:exhaustive // details context only
		case keymap.ActionBack:
			return m, func() tea.Msg { return navigation.BackMsg{} }
		case keymap.ActionPlayArtist:
			if m.notFound || m.trackCount == 0 {
				return m, nil
			}
			return m, m.play(playback.PlayArtist{ID: m.id})
		case keymap.ActionSelect:
			return m, m.playRow(m.list.SelectedIndex())
		}
	}

	res := m.list.Update(msg)
	if res.Action == list.ActionClick {
		return m, m.playRow(res.Index)
	}
	return m, nil
}

// playRow plays the track at row i, or the first track of an album header.
func (m Model) playRow(i int) tea.Cmd {
	items := m.list.Items()
	if i < 0 || i >= len(items) {
		return nil
	}
	e := items[i]
	id := e.first
	if e.isTrack() {
		id = e.track.ID
	}
	return m.play(playback.PlayTrack{ID: id})
}

func (m Model) play(a playback.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(Playback{Action: a}) }
}
