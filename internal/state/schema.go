package state

import (
	"database/sql"

	"github.com/llehouerou/cuteplay/internal/library"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	if err := library.InitSchema(db); err != nil {
		return err
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS screen_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			sort_ascending INTEGER NOT NULL DEFAULT 1,
			selected_artist_id INTEGER
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
