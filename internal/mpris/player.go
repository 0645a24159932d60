//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/cuteplay/internal/playback"
)

// player serves org.mpris.MediaPlayer2.Player on top of the service.
type player struct {
	service playback.Service
}

func (p *player) Next() error     { return p.service.Handle(playback.Next{}) }
func (p *player) Previous() error { return p.service.Handle(playback.Previous{}) }
func (p *player) Stop() error     { return p.service.Handle(playback.Stop{}) }

// PlayPause starts a random track when nothing is loaded yet, so the media
// key always does something.
func (p *player) PlayPause() error {
	if p.service.IsReady() {
		return p.service.Handle(playback.PlayPause{})
	}
	return p.service.Handle(playback.PlayRandom{})
}

func (p *player) Play() error {
	if p.service.IsPlaying() {
		return nil
	}
	return p.PlayPause()
}

func (p *player) Pause() error {
	if !p.service.IsPlaying() {
		return nil
	}
	return p.service.Handle(playback.PlayPause{})
}

// Seek moves by a relative offset.
func (p *player) Seek(offset types.Microseconds) error {
	p.service.Player().Seek(micros(offset))
	return nil
}

// SetPosition moves to an absolute position. The track id is ignored as
// there is only ever one loaded track.
func (p *player) SetPosition(_ string, position types.Microseconds) error {
	p.service.Player().Seek(micros(position) - p.service.Position())
	return nil
}

//nolint:revive // name fixed by the interface
func (p *player) OpenUri(string) error { return nil }

func (p *player) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.service.State()), nil
}

func (p *player) Metadata() (types.Metadata, error) {
	track := p.service.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}
	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(track.Path)),
		Length:      types.Microseconds(p.service.Duration().Microseconds()),
		Title:       track.Title,
		Artist:      []string{track.Artist},
		Album:       track.Album,
		TrackNumber: track.TrackNumber,
	}
	if art := FindAlbumArt(track.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *player) Position() (int64, error) {
	return p.service.Position().Microseconds(), nil
}

// Rate and volume are fixed.
func (p *player) Rate() (float64, error)        { return 1, nil }
func (p *player) SetRate(float64) error         { return nil }
func (p *player) MinimumRate() (float64, error) { return 1, nil }
func (p *player) MaximumRate() (float64, error) { return 1, nil }
func (p *player) Volume() (float64, error)      { return 1, nil }
func (p *player) SetVolume(float64) error       { return nil }

// CanGoNext is always true: a random track follows the end of history.
func (p *player) CanGoNext() (bool, error)     { return true, nil }
func (p *player) CanGoPrevious() (bool, error) { return p.service.IsReady(), nil }
func (p *player) CanPlay() (bool, error)       { return true, nil }
func (p *player) CanPause() (bool, error)      { return p.service.IsReady(), nil }
func (p *player) CanSeek() (bool, error)       { return p.service.State().IsActive(), nil }
func (p *player) CanControl() (bool, error)    { return true, nil }

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateStopped:
	}
	return types.PlaybackStatusStopped
}

func micros(us types.Microseconds) time.Duration {
	return time.Duration(us) * time.Microsecond
}

// formatTrackID derives a stable D-Bus object path from the file path.
func formatTrackID(path string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
