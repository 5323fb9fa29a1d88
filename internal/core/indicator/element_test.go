package indicator

import (
	"sync"

	"loadbar/internal/core/keyframe"
)

// fakeElement records every applied frame so tests can assert on playback.
type fakeElement struct {
	mu      sync.Mutex
	current keyframe.Frame
	applied []keyframe.Frame
}

func newFakeElement(base keyframe.Frame) *fakeElement {
	return &fakeElement{current: base}
}

func (element *fakeElement) Apply(frame keyframe.Frame) {
	element.mu.Lock()
	defer element.mu.Unlock()
	element.current = frame
	element.applied = append(element.applied, frame)
}

func (element *fakeElement) Snapshot() keyframe.Frame {
	element.mu.Lock()
	defer element.mu.Unlock()
	return element.current
}

func (element *fakeElement) Current() keyframe.Frame {
	return element.Snapshot()
}

func (element *fakeElement) AppliedCount() int {
	element.mu.Lock()
	defer element.mu.Unlock()
	return len(element.applied)
}

func (element *fakeElement) FirstApplied() keyframe.Frame {
	element.mu.Lock()
	defer element.mu.Unlock()
	if len(element.applied) == 0 {
		return keyframe.Frame{}
	}
	return element.applied[0]
}

func (element *fakeElement) ResetApplied() {
	element.mu.Lock()
	defer element.mu.Unlock()
	element.applied = nil
}

// fakeStyledElement additionally records direct style assignments.
type fakeStyledElement struct {
	fakeElement
	styles []Style
}

func (element *fakeStyledElement) SetStyle(style Style) {
	element.mu.Lock()
	defer element.mu.Unlock()
	element.styles = append(element.styles, style)
}

func (element *fakeStyledElement) Styles() []Style {
	element.mu.Lock()
	defer element.mu.Unlock()
	return append([]Style(nil), element.styles...)
}
