// Package state persists what the browser remembers between sessions:
// the artist sort direction and the last selected artist.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/cuteplay/internal/db"
)

const (
	appName      = "cuteplay"
	dbFileName   = "cuteplay.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the application database and debounces screen state writes.
type Manager struct {
	db *sql.DB

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *ScreenState
	timerErr  error

	// writeMu serializes writes with Close.
	writeMu sync.Mutex
	closed  bool
}

// Open opens the database at the default XDG data location.
func Open() (*Manager, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the database at path.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// DefaultPath returns $XDG_DATA_HOME/cuteplay/cuteplay.db.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// DB exposes the database for the library.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetScreen returns the saved screen state, or defaults on first run.
func (m *Manager) GetScreen() (ScreenState, error) {
	return getScreen(m.db)
}

// SaveScreen schedules a write of the screen state. Rapid calls coalesce
// into a single write of the latest value.
func (m *Manager) SaveScreen(s ScreenState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
}

// Flush writes any pending screen state immediately. It is a no-op
// once the manager is closed.
func (m *Manager) Flush() error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.closed {
		return nil
	}
	return m.writePending()
}

// writePending must be called with writeMu held.
func (m *Manager) writePending() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return saveScreen(m.db, *pending)
}

// flush runs on the debounce timer; its error is reported by Close.
func (m *Manager) flush() {
	if err := m.Flush(); err != nil {
		m.saveMu.Lock()
		m.timerErr = err
		m.saveMu.Unlock()
	}
}

// Close flushes pending state and closes the database. A debounced write
// already in flight finishes first; later ones are dropped.
func (m *Manager) Close() error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.closed {
		return nil
	}
	flushErr := m.writePending()
	m.closed = true

	m.saveMu.Lock()
	timerErr := m.timerErr
	m.timerErr = nil
	m.saveMu.Unlock()

	if err := m.db.Close(); err != nil {
		return err
	}
	return errors.Join(flushErr, timerErr)
}
