package indicator

import "loadbar/internal/core/keyframe"

// Element is the host-supplied surface the indicator animates. The controller
// never creates or owns the element; it only drives opacity and horizontal
// travel on it. Apply may be invoked from a playback goroutine, so
// implementations marshal to their render thread as needed and must not call
// back into the controller.
type Element interface {
	// Apply drives the element's opacity and translation to the given frame.
	Apply(frame keyframe.Frame)
	// Snapshot reports the currently applied values. A handle captures it
	// when bound to the element and restores it on cancel.
	Snapshot() keyframe.Frame
}

// Styler is an optional Element capability for direct style assignment. The
// controller uses it at construction to apply the merged style configuration;
// elements without it are left fully under caller control.
type Styler interface {
	SetStyle(style Style)
}
