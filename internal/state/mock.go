package state

import (
	"database/sql"
	"sync"
)

// Mock is an in-memory state manager for tests.
type Mock struct {
	mu     sync.Mutex
	screen ScreenState
	saves  int
	closed bool
}

// NewMock creates a mock holding DefaultScreen.
func NewMock() *Mock {
	return &Mock{screen: DefaultScreen}
}

// DB returns nil; the mock has no database.
func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) GetScreen() (ScreenState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen, nil
}

func (m *Mock) SaveScreen(s ScreenState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen = s
	m.saves++
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns how many times SaveScreen was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
