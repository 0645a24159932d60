package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/cuteplay/internal/db"
)

// ScreenState is the persisted part of the Artists screen.
type ScreenState struct {
	SortAscending    bool
	SelectedArtistID int64 // 0 when nothing was selected
}

// DefaultScreen is used before anything was saved.
var DefaultScreen = ScreenState{SortAscending: true}

func getScreen(db *sql.DB) (ScreenState, error) {
	var s ScreenState
	var selected sql.NullInt64
	err := db.QueryRow(`
		SELECT sort_ascending, selected_artist_id FROM screen_state WHERE id = 1
	`).Scan(&s.SortAscending, &selected)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultScreen, nil
	}
	if err != nil {
		return DefaultScreen, err
	}
	s.SelectedArtistID = dbutil.NullInt64Value(selected)
	return s, nil
}

func saveScreen(db *sql.DB, s ScreenState) error {
	_, err := db.Exec(`
		INSERT INTO screen_state (id, sort_ascending, selected_artist_id)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sort_ascending = excluded.sort_ascending,
			selected_artist_id = excluded.selected_artist_id
	`, s.SortAscending, sql.NullInt64{Int64: s.SelectedArtistID, Valid: s.SelectedArtistID != 0})
	return err
}
