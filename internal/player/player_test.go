package player

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPlay_UnsupportedFormat(t *testing.T) {
	p := New()

	if err := p.Play("song.m4a"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
}

func TestPlay_MissingFile(t *testing.T) {
	p := New()

	if err := p.Play(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPlay_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.flac")
	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New()
	if err := p.Play(path); err == nil {
		t.Fatal("expected decode error")
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
}

func TestStoppedPlayer_ControlsAreNoops(t *testing.T) {
	p := New()

	p.Pause()
	p.Resume()
	p.Toggle()
	p.Seek(5 * time.Second)
	p.Stop()

	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if p.Position() != 0 || p.Duration() != 0 {
		t.Errorf("Position/Duration = %v/%v, want 0/0", p.Position(), p.Duration())
	}
}

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name        string
		pos, length int
		want        int
	}{
		{"inside", 50, 100, 50},
		{"before start", -10, 100, 0},
		{"past end", 150, 100, 99},
		{"empty stream", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPosition(tt.pos, tt.length); got != tt.want {
				t.Errorf("clampPosition(%d, %d) = %d, want %d", tt.pos, tt.length, got, tt.want)
			}
		})
	}
}

func TestMock_PlayToggleStop(t *testing.T) {
	m := NewMock()

	if err := m.Play("a.mp3"); err != nil {
		t.Fatal(err)
	}
	if m.State() != Playing {
		t.Fatalf("after Play: %v", m.State())
	}

	m.Toggle()
	if m.State() != Paused {
		t.Fatalf("after Toggle: %v", m.State())
	}

	m.Toggle()
	if m.State() != Playing {
		t.Fatalf("after second Toggle: %v", m.State())
	}

	m.Stop()
	m.Toggle()
	if m.State() != Stopped {
		t.Fatalf("Toggle while stopped changed state to %v", m.State())
	}
}

func TestMock_SimulateFinishedCallsCallback(t *testing.T) {
	m := NewMock()
	called := 0
	m.OnFinished(func() { called++ })

	_ = m.Play("a.mp3")
	m.SimulateFinished()

	if called != 1 {
		t.Errorf("callback called %d times, want 1", called)
	}
	if m.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", m.State())
	}
}
