package keyframe

import (
	"fmt"
	"time"
)

// Frame is a single style snapshot within a sequence.
type Frame struct {
	// Offset is the frame's normalized position within the sequence, in [0,1].
	Offset float64
	// Opacity of the element, in [0,1].
	Opacity float64
	// Translate is the horizontal offset as a fraction of the travel
	// distance: -1 is fully off-screen, 0 is fully arrived.
	Translate float64
}

// FillMode controls what happens to applied styles after playback ends.
type FillMode int

const (
	// FillNone reverts the element to its pre-animation state on completion.
	FillNone FillMode = iota
	// FillForwards retains the final computed frame after the active
	// interval ends.
	FillForwards
)

// Sequence is an immutable ordered set of frames together with its timing
// configuration. Frame offsets must be non-decreasing and span exactly [0,1].
type Sequence struct {
	Frames   []Frame
	Duration time.Duration
	Curve    Curve
	Fill     FillMode
}

// At returns the interpolated frame for a linear playback fraction in [0,1].
// The sequence's curve is applied before interpolation; a nil curve is linear.
func (sequence Sequence) At(progress float64) Frame {
	if len(sequence.Frames) == 0 {
		return Frame{}
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	if sequence.Curve != nil {
		progress = sequence.Curve(progress)
	}

	frames := sequence.Frames
	if progress <= frames[0].Offset {
		return frames[0]
	}
	last := frames[len(frames)-1]
	if progress >= last.Offset {
		return last
	}

	for i := 1; i < len(frames); i++ {
		if progress > frames[i].Offset {
			continue
		}
		return lerp(frames[i-1], frames[i], progress)
	}
	return last
}

// Valid reports whether the sequence satisfies the offset invariant.
func (sequence Sequence) Valid() error {
	if len(sequence.Frames) < 2 {
		return fmt.Errorf("sequence needs at least two frames, got %d", len(sequence.Frames))
	}
	if sequence.Frames[0].Offset != 0 {
		return fmt.Errorf("first frame offset must be 0, got %g", sequence.Frames[0].Offset)
	}
	if last := sequence.Frames[len(sequence.Frames)-1].Offset; last != 1 {
		return fmt.Errorf("last frame offset must be 1, got %g", last)
	}
	for i := 1; i < len(sequence.Frames); i++ {
		if sequence.Frames[i].Offset < sequence.Frames[i-1].Offset {
			return fmt.Errorf("frame offsets decrease at index %d", i)
		}
	}
	return nil
}

// Offsets converts semantic time intervals into cumulative normalized
// offsets. The first interval is usually zero so the sequence starts at 0;
// the final offset is always 1.
func Offsets(intervals ...time.Duration) []float64 {
	var total time.Duration
	for _, interval := range intervals {
		total += interval
	}

	offsets := make([]float64, len(intervals))
	var elapsed time.Duration
	for i, interval := range intervals {
		elapsed += interval
		if total > 0 {
			offsets[i] = float64(elapsed) / float64(total)
		}
	}
	return offsets
}

func lerp(from Frame, to Frame, progress float64) Frame {
	span := to.Offset - from.Offset
	if span <= 0 {
		return to
	}
	fraction := (progress - from.Offset) / span
	return Frame{
		Offset:    progress,
		Opacity:   from.Opacity + (to.Opacity-from.Opacity)*fraction,
		Translate: from.Translate + (to.Translate-from.Translate)*fraction,
	}
}
