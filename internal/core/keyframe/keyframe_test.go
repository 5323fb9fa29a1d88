package keyframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoFrameSequence() Sequence {
	return Sequence{
		Frames: []Frame{
			{Offset: 0, Opacity: 0, Translate: -1},
			{Offset: 1, Opacity: 1, Translate: 0},
		},
		Duration: time.Second,
	}
}

func TestOffsetsFromIntervals(t *testing.T) {
	ms := time.Millisecond
	offsets := Offsets(0, 500*ms, 2500*ms, 500*ms, 2500*ms, 10000*ms)

	expected := []float64{0, 0.03125, 0.1875, 0.21875, 0.375, 1}
	require.Len(t, offsets, len(expected))
	for i, offset := range offsets {
		assert.InDelta(t, expected[i], offset, 1e-9, "offset %d", i)
	}
}

func TestOffsetsAreNonDecreasing(t *testing.T) {
	offsets := Offsets(0, time.Second, 0, 2*time.Second)
	for i := 1; i < len(offsets); i++ {
		assert.GreaterOrEqual(t, offsets[i], offsets[i-1])
	}
	assert.Equal(t, 1.0, offsets[len(offsets)-1])
}

func TestOffsetsEmptyAndZeroTotal(t *testing.T) {
	assert.Empty(t, Offsets())
	assert.Equal(t, []float64{0, 0}, Offsets(0, 0))
}

func TestAtInterpolatesBetweenFrames(t *testing.T) {
	sequence := twoFrameSequence()

	frame := sequence.At(0.5)
	assert.InDelta(t, 0.5, frame.Opacity, 1e-9)
	assert.InDelta(t, -0.5, frame.Translate, 1e-9)
}

func TestAtClampsProgress(t *testing.T) {
	sequence := twoFrameSequence()

	assert.Equal(t, sequence.Frames[0], sequence.At(-0.3))
	assert.Equal(t, sequence.Frames[1], sequence.At(1.7))
}

func TestAtAppliesCurve(t *testing.T) {
	sequence := twoFrameSequence()
	sequence.Curve = EaseInOut

	frame := sequence.At(0.25)
	assert.InDelta(t, 0.125, frame.Opacity, 1e-9)
}

func TestAtHandlesSnapFrames(t *testing.T) {
	sequence := Sequence{
		Frames: []Frame{
			{Offset: 0, Opacity: 1, Translate: -1},
			{Offset: 0.5, Opacity: 1, Translate: -1},
			{Offset: 0.5, Opacity: 1, Translate: 0},
			{Offset: 1, Opacity: 0, Translate: 0},
		},
	}

	before := sequence.At(0.49)
	assert.InDelta(t, -1, before.Translate, 0.05)

	after := sequence.At(0.51)
	assert.InDelta(t, 0, after.Translate, 1e-9)
}

func TestAtEmptySequence(t *testing.T) {
	assert.Equal(t, Frame{}, Sequence{}.At(0.5))
}

func TestValid(t *testing.T) {
	require.NoError(t, twoFrameSequence().Valid())

	tooFew := Sequence{Frames: []Frame{{Offset: 0}}}
	assert.Error(t, tooFew.Valid())

	badStart := Sequence{Frames: []Frame{{Offset: 0.1}, {Offset: 1}}}
	assert.Error(t, badStart.Valid())

	badEnd := Sequence{Frames: []Frame{{Offset: 0}, {Offset: 0.9}}}
	assert.Error(t, badEnd.Valid())

	decreasing := Sequence{Frames: []Frame{{Offset: 0}, {Offset: 0.6}, {Offset: 0.4}, {Offset: 1}}}
	assert.Error(t, decreasing.Valid())
}
