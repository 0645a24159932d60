package player

import (
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// speakerRate is the output sample rate. Tracks at other rates are resampled.
const speakerRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	return speakerErr
}

// Player plays one audio file at a time through the system speaker.
// All methods are safe for concurrent use.
type Player struct {
	mu         sync.Mutex
	state      State
	ctrl       *beep.Ctrl
	streamer   beep.StreamSeekCloser
	format     beep.Format
	file       *os.File
	duration   time.Duration
	onFinished func()

	// generation identifies the current track so a finish callback of a
	// replaced track is ignored.
	generation uint64
}

func New() *Player {
	return &Player{state: Stopped}
}

// Play stops the current track and starts path.
func (p *Player) Play(path string) error {
	p.Stop()

	f, streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	if err := initSpeaker(); err != nil {
		streamer.Close()
		f.Close()
		return err
	}

	var output beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		output = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.file = f
	p.streamer = streamer
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())
	p.ctrl = &beep.Ctrl{Streamer: output}
	p.state = Playing
	ctrl := p.ctrl
	p.mu.Unlock()

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		// Runs on the speaker goroutine with the speaker locked
		go p.finished(gen)
	})))

	return nil
}

func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || p.state == Stopped {
		p.mu.Unlock()
		return
	}
	p.release()
	fn := p.onFinished
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}
	speaker.Clear()
	p.release()
}

// release closes the current track. Caller holds p.mu.
func (p *Player) release() {
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.duration = 0
	p.state = Stopped
}

// Pause pauses playback. It does nothing unless a track is playing.
func (p *Player) Pause() { p.setPaused(Playing, Paused) }

// Resume continues paused playback.
func (p *Player) Resume() { p.setPaused(Paused, Playing) }

// setPaused moves from one state to the other, flipping the speaker
// control under the speaker lock.
func (p *Player) setPaused(from, to State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != from || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = to == Paused
	speaker.Unlock()
	p.state = to
}

// Toggle switches between playing and paused.
func (p *Player) Toggle() {
	if p.State() == Playing {
		p.Pause()
	} else {
		p.Resume()
	}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the current track.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// Seek moves the playback position by delta, clamped to the track bounds.
func (p *Player) Seek(delta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil || p.state == Stopped {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	newPos := p.streamer.Position() + p.format.SampleRate.N(delta)
	newPos = clampPosition(newPos, p.streamer.Len())
	_ = p.streamer.Seek(newPos)
}

func clampPosition(pos, length int) int {
	if length <= 0 {
		return 0
	}
	return min(max(pos, 0), length-1)
}

func (p *Player) OnFinished(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFinished = fn
}
