package keyframe_test

import (
	"testing"
	"time"

	"github.com/matt-g-everett/ledkey/keyframe"
	"github.com/stretchr/testify/assert"
)

type shake struct {
	offset   keyframe.Scalar
	rotation keyframe.Angle
}

var (
	offsetField = keyframe.NewField("offset",
		func(s shake) keyframe.Scalar { return s.offset },
		func(s shake, v keyframe.Scalar) shake { s.offset = v; return s })
	rotationField = keyframe.NewField("rotation",
		func(s shake) keyframe.Angle { return s.rotation },
		func(s shake, v keyframe.Angle) shake { s.rotation = v; return s })
)

func shakeTimeline() keyframe.Timeline[shake] {
	return keyframe.New[shake](shake{},
		keyframe.NewTrack(offsetField,
			keyframe.Linear(keyframe.Scalar(100), 1),
			keyframe.Linear(keyframe.Scalar(150), 1),
			keyframe.Move(keyframe.Scalar(200), 1),
		),
		keyframe.NewTrack(rotationField,
			keyframe.Linear(keyframe.Degrees(10), 0.5),
			keyframe.Linear(keyframe.Degrees(50), 1),
		),
	)
}

func TestTimeline_Offset(t *testing.T) {
	tl := shakeTimeline()
	assert.Equal(t, keyframe.Scalar(50), tl.ValueAt(0.5).offset)
	assert.Equal(t, keyframe.Scalar(125), tl.ValueAt(1.5).offset)
	assert.Equal(t, keyframe.Scalar(200), tl.ValueAt(3).offset)
}

func TestTimeline_Rotation(t *testing.T) {
	tl := shakeTimeline()
	assert.InDelta(t, 5, tl.ValueAt(0.25).rotation.Degrees(), 0.01)
	assert.InDelta(t, 30, tl.ValueAt(1).rotation.Degrees(), 0.01)
	assert.InDelta(t, 50, tl.ValueAt(3).rotation.Degrees(), 0.01)
}

func TestTimeline_TracksDoNotInterfere(t *testing.T) {
	full := shakeTimeline()
	rotationOnly := keyframe.New[shake](shake{},
		keyframe.NewTrack(rotationField,
			keyframe.Linear(keyframe.Degrees(10), 0.5),
			keyframe.Linear(keyframe.Degrees(50), 1),
		),
	)

	for _, at := range []float64{0, 0.25, 0.5, 1, 1.5, 2.5, 3} {
		assert.Equal(t, rotationOnly.ValueAt(at).rotation, full.ValueAt(at).rotation, "t=%v", at)
		assert.Equal(t, keyframe.Scalar(0), rotationOnly.ValueAt(at).offset, "t=%v", at)
	}
}

func TestTimeline_Duration(t *testing.T) {
	assert.Equal(t, 3.0, shakeTimeline().Duration())
	assert.Equal(t, 2, shakeTimeline().Len())
}

func TestTimeline_Deterministic(t *testing.T) {
	tl := shakeTimeline()
	for _, at := range []float64{-1, 0, 0.3, 1, 1.7, 2.9, 3, 10} {
		assert.Equal(t, tl.ValueAt(at), tl.ValueAt(at), "t=%v", at)
	}
}

func TestTimeline_Empty(t *testing.T) {
	initial := shake{offset: 7, rotation: keyframe.Degrees(45)}
	tl := keyframe.New[shake](initial)
	assert.Equal(t, 0.0, tl.Duration())
	assert.Equal(t, initial, tl.ValueAt(0))
	assert.Equal(t, initial, tl.ValueAt(12.5))
}

func TestTimeline_DoesNotMutateInitial(t *testing.T) {
	initial := shake{offset: 1}
	tl := keyframe.New[shake](initial, keyframe.NewTrack(offsetField, keyframe.Linear(keyframe.Scalar(10), 1)))
	_ = tl.ValueAt(1)
	assert.Equal(t, initial, tl.Initial())
}

func TestTimeline_StartsFromInitialFieldValue(t *testing.T) {
	tl := keyframe.New[shake](shake{offset: 20},
		keyframe.NewTrack(offsetField, keyframe.Linear(keyframe.Scalar(40), 2)))
	assert.Equal(t, keyframe.Scalar(30), tl.ValueAt(1).offset)
}

func TestTimeline_LastTrackWins(t *testing.T) {
	tl := keyframe.New[shake](shake{},
		keyframe.NewTrack(offsetField, keyframe.Move(keyframe.Scalar(1), 1)),
		keyframe.NewTrack(offsetField, keyframe.Move(keyframe.Scalar(2), 1)),
	)
	assert.Equal(t, keyframe.Scalar(2), tl.ValueAt(0.5).offset)
}

func TestTimeline_ValueAtDuration(t *testing.T) {
	tl := shakeTimeline()
	assert.Equal(t, tl.ValueAt(1.5), tl.ValueAtDuration(1500*time.Millisecond))
}
