// Package keymap defines key bindings for the application.
package keymap

// Binding contexts.
const (
	ContextGlobal   = "global"
	ContextPlayback = "playback"
	ContextArtists  = "artists"
	ContextSearch   = "search" // while the query input has focus
	ContextSortMenu = "sortmenu"
	ContextDetails  = "details"
	ContextHelp     = "help"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings of the application.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionRefreshLibrary, []string{"ctrl+r"}, "Refresh library", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show key bindings", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionPlayRandom, []string{"r"}, "Play random track", ContextPlayback},
	{ActionStop, []string{"s"}, "Stop", ContextPlayback},
	{ActionNextTrack, []string{"pgdown", "n"}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"pgup", "p"}, "Previous track", ContextPlayback},
	{ActionSeekForward, []string{"shift+right"}, "Seek +5s", ContextPlayback},
	{ActionSeekBack, []string{"shift+left"}, "Seek -5s", ContextPlayback},

	// Artists list
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextArtists},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextArtists},
	{ActionJumpStart, []string{"g", "home"}, "First artist", ContextArtists},
	{ActionJumpEnd, []string{"G", "end"}, "Last artist", ContextArtists},
	{ActionPageDown, []string{"ctrl+d"}, "Half page down", ContextArtists},
	{ActionPageUp, []string{"ctrl+u"}, "Half page up", ContextArtists},
	{ActionSelect, []string{"enter", "l", "right"}, "Open artist", ContextArtists},
	{ActionFocusSearch, []string{"/"}, "Search artists", ContextArtists},
	{ActionSortMenu, []string{"o"}, "Sort order", ContextArtists},

	// Search input
	{ActionBlurSearch, []string{"esc", "enter"}, "Leave search", ContextSearch},
	{ActionClearQuery, []string{"ctrl+u"}, "Clear query", ContextSearch},
	{ActionSortMenu, []string{"ctrl+o"}, "Sort order", ContextSearch},

	// Sort menu
	{ActionMoveDown, []string{"j", "down"}, "Next option", ContextSortMenu},
	{ActionMoveUp, []string{"k", "up"}, "Previous option", ContextSortMenu},
	{ActionSelect, []string{"enter"}, "Apply", ContextSortMenu},
	{ActionCancel, []string{"esc", "q"}, "Dismiss", ContextSortMenu},

	// Artist details
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextDetails},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextDetails},
	{ActionJumpStart, []string{"g", "home"}, "First track", ContextDetails},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", ContextDetails},
	{ActionSelect, []string{"enter"}, "Play track", ContextDetails},
	{ActionPlayArtist, []string{"a"}, "Play all by artist", ContextDetails},
	{ActionBack, []string{"esc", "backspace", "h", "left"}, "Back to artists", ContextDetails},

	// Help popup
	{ActionMoveDown, []string{"j", "down"}, "Scroll down", ContextHelp},
	{ActionMoveUp, []string{"k", "up"}, "Scroll up", ContextHelp},
	{ActionCancel, []string{"?", "esc", "q"}, "Close", ContextHelp},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts returns the bindings of all given contexts, in order.
// When two contexts bind the same key, the later one wins in a Resolver.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, c := range contexts {
		result = append(result, ByContext(c)...)
	}
	return result
}
