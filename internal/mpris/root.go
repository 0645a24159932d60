//go:build linux

package mpris

// root serves org.mpris.MediaPlayer2. The app cannot be raised or quit
// over the bus.
type root struct{}

func (root) Raise() error                { return nil }
func (root) Quit() error                 { return nil }
func (root) CanQuit() (bool, error)      { return false, nil }
func (root) CanRaise() (bool, error)     { return false, nil }
func (root) HasTrackList() (bool, error) { return false, nil }
func (root) Identity() (string, error)   { return busName, nil }

//nolint:revive // name fixed by the interface
func (root) SupportedUriSchemes() ([]string, error) { return []string{"file"}, nil }

func (root) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}
