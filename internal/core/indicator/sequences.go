package indicator

import (
	"time"

	"loadbar/internal/core/keyframe"
)

// SequenceFunc produces a keyframe sequence for an element. The controller
// accepts substitute implementations so custom visuals never require touching
// the transition logic.
type SequenceFunc func(element Element) keyframe.Sequence

// Default total durations for the built-in sequences.
const (
	DefaultProgressDuration = 16 * time.Second
	DefaultDoneDuration     = time.Second
)

// ProgressSequence returns the default indeterminate progress keyframes:
// fast visible motion within the first fraction of the run, then a long
// deceleration that stops at 96% of the travel distance, so an indicator
// left running keeps crawling without ever arriving. Offsets are derived
// from the semantic time intervals of the motion phases.
func ProgressSequence(element Element) keyframe.Sequence {
	ms := time.Millisecond
	offsets := keyframe.Offsets(0, 500*ms, 2500*ms, 500*ms, 2500*ms, 10000*ms)

	return keyframe.Sequence{
		Frames: []keyframe.Frame{
			{Offset: offsets[0], Opacity: 0, Translate: -1},
			{Offset: offsets[1], Opacity: 1, Translate: -0.65},
			{Offset: offsets[2], Opacity: 1, Translate: -0.4},
			{Offset: offsets[3], Opacity: 1, Translate: -0.35},
			{Offset: offsets[4], Opacity: 1, Translate: -0.2},
			{Offset: offsets[5], Opacity: 1, Translate: -0.04},
		},
		Duration: DefaultProgressDuration,
		Curve:    keyframe.Linear,
		Fill:     keyframe.FillForwards,
	}
}

// DoneSequence returns the default completion keyframes: opacity held at
// full until 40% through, a snap to the fully-arrived position at 50%, then
// a fade to zero while the position stays fixed.
func DoneSequence(element Element) keyframe.Sequence {
	return keyframe.Sequence{
		Frames: []keyframe.Frame{
			{Offset: 0, Opacity: 1, Translate: -0.04},
			{Offset: 0.4, Opacity: 1, Translate: -0.04},
			{Offset: 0.5, Opacity: 1, Translate: 0},
			{Offset: 1, Opacity: 0, Translate: 0},
		},
		Duration: DefaultDoneDuration,
		Curve:    keyframe.EaseInOut,
		Fill:     keyframe.FillForwards,
	}
}
