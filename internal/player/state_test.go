package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "Stopped", Stopped.String())
	assert.Equal(t, "Playing", Playing.String())
	assert.Equal(t, "Paused", Paused.String())
	assert.Equal(t, "Unknown", State(-1).String())
	assert.Equal(t, "Unknown", State(99).String())
}

func TestState_IsActive(t *testing.T) {
	assert.False(t, Stopped.IsActive())
	assert.True(t, Playing.IsActive())
	assert.True(t, Paused.IsActive())
}

func TestMock_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		steps func(m *Mock)
		want  State
	}{
		{"initial", func(*Mock) {}, Stopped},
		{"play", func(m *Mock) { _ = m.Play("/a.mp3") }, Playing},
		{"pause", func(m *Mock) { _ = m.Play("/a.mp3"); m.Pause() }, Paused},
		{"resume", func(m *Mock) { _ = m.Play("/a.mp3"); m.Pause(); m.Resume() }, Playing},
		{"stop while playing", func(m *Mock) { _ = m.Play("/a.mp3"); m.Stop() }, Stopped},
		{"stop while paused", func(m *Mock) { _ = m.Play("/a.mp3"); m.Pause(); m.Stop() }, Stopped},
		{"toggle pauses", func(m *Mock) { _ = m.Play("/a.mp3"); m.Toggle() }, Paused},
		{"toggle resumes", func(m *Mock) { _ = m.Play("/a.mp3"); m.Toggle(); m.Toggle() }, Playing},
		{"toggle while stopped", func(m *Mock) { m.Toggle() }, Stopped},
		{"pause while stopped", func(m *Mock) { m.Pause() }, Stopped},
		{"resume while stopped", func(m *Mock) { m.Resume() }, Stopped},
		{"resume while playing", func(m *Mock) { _ = m.Play("/a.mp3"); m.Resume() }, Playing},
		{"play while paused", func(m *Mock) { _ = m.Play("/a.mp3"); m.Pause(); _ = m.Play("/b.mp3") }, Playing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMock()
			tt.steps(m)
			assert.Equal(t, tt.want, m.State())
		})
	}
}
