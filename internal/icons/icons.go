package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Artist string
	Album  string
	Audio  string
	Play   string
	Pause  string
	Random string
	Search string
	Sort   string
}

var (
	nerdIcons = Icons{
		Artist: "\uf007 ",     // nf-fa-user
		Album:  "\U000f0025 ", // nf-md-album
		Audio:  "\uf001 ",     // nf-fa-music
		Play:   "\uf04b",      // nf-fa-play
		Pause:  "\uf04c",      // nf-fa-pause
		Random: "\U000f049f",  // nf-md-shuffle
		Search: "\uf002",      // nf-fa-search
		Sort:   "\U000f04ba",  // nf-md-sort
	}

	unicodeIcons = Icons{
		Artist: "👤 ",
		Album:  "💿 ",
		Audio:  "🎵 ",
		Play:   "▶",
		Pause:  "⏸",
		Random: "🔀",
		Search: "🔍",
		Sort:   "⇅",
	}

	noneIcons = Icons{
		Artist: "",
		Album:  "",
		Audio:  "",
		Play:   ">",
		Pause:  "||",
		Random: "[?]",
		Search: "/",
		Sort:   "[sort]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatArtist formats an artist name with the placeholder artist icon.
func FormatArtist(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Artist + name
}

// FormatAlbum formats an album name with the appropriate icon.
func FormatAlbum(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Album + name
}

// FormatAudio formats a track title with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// PlayPause returns the glyph for the control that toggles playback:
// pause while playing, play otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// Random returns the play random icon.
func Random() string {
	return current.Random
}

// Search returns the search prompt icon.
func Search() string {
	return current.Search
}

// Sort returns the sort menu trigger icon.
func Sort() string {
	return current.Sort
}
