package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadbar/internal/core/keyframe"
)

func TestProgressSequenceShape(t *testing.T) {
	sequence := ProgressSequence(newFakeElement(keyframe.Frame{}))

	require.NoError(t, sequence.Valid())
	require.Len(t, sequence.Frames, 6)
	assert.Equal(t, 16*time.Second, sequence.Duration)
	assert.Equal(t, keyframe.FillForwards, sequence.Fill)

	// Full opacity and the first visible translation land within the first
	// ~3% of the run.
	second := sequence.Frames[1]
	assert.InDelta(t, 0.03125, second.Offset, 1e-9)
	assert.Equal(t, 1.0, second.Opacity)
	assert.Greater(t, second.Translate, -1.0)

	// The indicator decelerates but never arrives: 96% of the travel at the end.
	final := sequence.Frames[5]
	assert.Equal(t, 1.0, final.Offset)
	assert.InDelta(t, -0.04, final.Translate, 1e-9)
	assert.Equal(t, 1.0, final.Opacity)
}

func TestProgressSequenceDecelerates(t *testing.T) {
	sequence := ProgressSequence(newFakeElement(keyframe.Frame{}))

	for i := 1; i < len(sequence.Frames); i++ {
		assert.Greater(t, sequence.Frames[i].Translate, sequence.Frames[i-1].Translate,
			"travel must keep advancing at frame %d", i)
	}
}

func TestDoneSequenceShape(t *testing.T) {
	sequence := DoneSequence(newFakeElement(keyframe.Frame{}))

	require.NoError(t, sequence.Valid())
	require.Len(t, sequence.Frames, 4)
	assert.Equal(t, time.Second, sequence.Duration)
	assert.Equal(t, keyframe.FillForwards, sequence.Fill)
	assert.NotNil(t, sequence.Curve, "completion uses a non-linear timing curve")

	// Opacity holds at full until 40% through.
	assert.Equal(t, 1.0, sequence.Frames[0].Opacity)
	assert.Equal(t, 0.4, sequence.Frames[1].Offset)
	assert.Equal(t, 1.0, sequence.Frames[1].Opacity)

	// The element snaps to the fully-arrived position at 50%.
	assert.Equal(t, 0.5, sequence.Frames[2].Offset)
	assert.Equal(t, 0.0, sequence.Frames[2].Translate)

	// Faded out by the end, position fixed.
	assert.Equal(t, 0.0, sequence.Frames[3].Opacity)
	assert.Equal(t, 0.0, sequence.Frames[3].Translate)
}

func TestDoneSequenceStartsWhereProgressEnds(t *testing.T) {
	element := newFakeElement(keyframe.Frame{})
	progress := ProgressSequence(element)
	done := DoneSequence(element)

	assert.Equal(t, progress.Frames[len(progress.Frames)-1].Translate, done.Frames[0].Translate,
		"completion picks up at the progress animation's resting travel")
}
