// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionRefreshLibrary Action = "refresh_library"
	ActionHelp           Action = "help"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionPlayRandom  Action = "play_random"
	ActionStop        Action = "stop"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionPlayArtist  Action = "play_artist" // a - whole artist in details

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionSelect    Action = "select" // enter - open artist / play track
	ActionBack      Action = "back"

	// Search bar actions
	ActionFocusSearch Action = "focus_search"
	ActionBlurSearch  Action = "blur_search"
	ActionClearQuery  Action = "clear_query"
	ActionSortMenu    Action = "sort_menu"

	// Popup actions
	ActionCancel Action = "cancel"
)
