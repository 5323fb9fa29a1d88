package indicator

import (
	"sync"
	"time"

	"loadbar/internal/core/keyframe"
)

// State represents an animation handle's lifecycle phase.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// Options contains runtime options for a Handle.
type Options struct {
	// FrameInterval is the playback tick interval. Defaults to ~60 fps.
	FrameInterval time.Duration
	// OnFinish is invoked once per playback run that reaches its natural
	// end. It is wired at construction and survives pause/cancel cycles.
	OnFinish func()
}

// Handle is a stateful run of a keyframe sequence against an element. A
// handle is created once and reused across repeated plays rather than
// recreated. Playback is advanced by a ticker goroutine; public operations
// are synchronous and only flip state or start/stop that goroutine.
type Handle struct {
	mu       sync.Mutex
	element  Element
	sequence keyframe.Sequence
	options  Options

	state    State
	base     keyframe.Frame // element resting state captured when the handle was bound
	position time.Duration  // current playback position
	stopCh   chan struct{}
	run      int // generation counter; events from superseded runs are discarded
}

// NewHandle wraps a sequence in an idle playback handle bound to the element.
func NewHandle(element Element, sequence keyframe.Sequence, options Options) *Handle {
	if options.FrameInterval <= 0 {
		options.FrameInterval = 16 * time.Millisecond
	}
	return &Handle{
		element:  element,
		sequence: sequence,
		options:  options,
		state:    StateIdle,
		base:     element.Snapshot(),
	}
}

// Play starts or resumes playback. A paused handle resumes from its frozen
// position; an idle or finished handle starts from the beginning. Calling
// Play while already running is a no-op.
func (handle *Handle) Play() {
	handle.mu.Lock()
	switch handle.state {
	case StateRunning:
		handle.mu.Unlock()
		return
	case StateIdle, StateFinished:
		handle.position = 0
	}
	handle.state = StateRunning
	handle.run++
	generation := handle.run
	stopCh := make(chan struct{})
	handle.stopCh = stopCh
	startAt := handle.position
	handle.mu.Unlock()

	go handle.runLoop(stopCh, generation, startAt)
}

// Pause freezes playback at the current position. The applied style is
// retained so a follow-up animation starts from a continuous-looking state.
func (handle *Handle) Pause() {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.state != StateRunning {
		return
	}
	handle.state = StatePaused
	handle.stopLocked()
}

// Cancel stops playback, discards the applied style and reverts the element
// to its pre-animation state. Cancelling an idle handle is a no-op.
func (handle *Handle) Cancel() {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.state == StateIdle {
		return
	}
	handle.stopLocked()
	handle.run++
	handle.state = StateIdle
	handle.position = 0
	handle.element.Apply(handle.base)
}

// State reports the handle's current lifecycle phase.
func (handle *Handle) State() State {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.state
}

// Position reports the current playback position.
func (handle *Handle) Position() time.Duration {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.position
}

func (handle *Handle) stopLocked() {
	if handle.stopCh != nil {
		close(handle.stopCh)
		handle.stopCh = nil
	}
}

func (handle *Handle) runLoop(stopCh chan struct{}, generation int, startAt time.Duration) {
	if !handle.applyAt(generation, startAt) {
		return
	}

	ticker := time.NewTicker(handle.options.FrameInterval)
	defer ticker.Stop()
	started := time.Now().Add(-startAt)

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(started)
			if elapsed >= handle.sequence.Duration {
				handle.finish(generation)
				return
			}
			if !handle.applyAt(generation, elapsed) {
				return
			}
		}
	}
}

func (handle *Handle) applyAt(generation int, elapsed time.Duration) bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.run != generation || handle.state != StateRunning {
		return false
	}
	handle.position = elapsed
	handle.element.Apply(handle.sequence.At(handle.progressLocked(elapsed)))
	return true
}

func (handle *Handle) finish(generation int) {
	handle.mu.Lock()
	if handle.run != generation || handle.state != StateRunning {
		handle.mu.Unlock()
		return
	}
	handle.state = StateFinished
	handle.position = handle.sequence.Duration
	handle.stopCh = nil
	if handle.sequence.Fill == keyframe.FillForwards {
		handle.element.Apply(handle.sequence.At(1))
	} else {
		handle.element.Apply(handle.base)
	}
	callback := handle.options.OnFinish
	handle.mu.Unlock()

	if callback != nil {
		callback()
	}
}

func (handle *Handle) progressLocked(elapsed time.Duration) float64 {
	if handle.sequence.Duration <= 0 {
		return 1
	}
	return float64(elapsed) / float64(handle.sequence.Duration)
}
