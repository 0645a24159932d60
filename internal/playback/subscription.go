package playback

import (
	"sync"
	"time"
)

const eventBufferSize = 16

// Subscription delivers service events to one consumer. Events are dropped
// when the consumer falls more than eventBufferSize behind; Done is closed
// when the service shuts down.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	state     chan StateChange
	track     chan TrackChange
	position  chan PositionChange
	errs      chan ErrorEvent
	done      chan struct{}
	closeOnce sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBufferSize),
		track:    make(chan TrackChange, eventBufferSize),
		position: make(chan PositionChange, eventBufferSize),
		errs:     make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged, s.PositionChanged = s.state, s.track, s.position
	s.Error, s.Done = s.errs, s.done
	return s
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Subscription) sendState(e StateChange) { trySend(s.state, e) }
func (s *Subscription) sendTrack(e TrackChange) { trySend(s.track, e) }
func (s *Subscription) sendError(e ErrorEvent)  { trySend(s.errs, e) }
func (s *Subscription) sendPosition(d time.Duration) {
	trySend(s.position, PositionChange{Position: d})
}

// trySend delivers v unless the buffer of ch is full.
func trySend[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}
