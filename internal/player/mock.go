package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player.
type Mock struct {
	mu         sync.Mutex
	state      State
	position   time.Duration
	duration   time.Duration
	playErr    error
	playCalls  []string
	seekCalls  []time.Duration
	onFinished func()
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Play(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	if m.State() == Playing {
		m.Pause()
	} else {
		m.Resume()
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Seek(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
}

func (m *Mock) OnFinished(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onFinished = fn
}

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.playCalls...)
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// SimulateFinished simulates a track playing to its end: the state becomes
// Stopped and the OnFinished callback runs synchronously.
func (m *Mock) SimulateFinished() {
	m.mu.Lock()
	m.state = Stopped
	fn := m.onFinished
	m.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
