package keyframe

// A Keyframe is one timed segment of a single field's animation.
type Keyframe[V Animatable[V]] interface {
	// Target is the value reached at the end of the segment.
	Target() V
	// Duration of the segment in seconds, never negative.
	Duration() float64
	// Interpolate produces the value elapsed seconds into the segment,
	// starting from the value the previous segment ended on.
	Interpolate(from V, elapsed float64) V
}

func nonNegative(duration float64) float64 {
	if duration < 0 {
		return 0
	}
	return duration
}

// LinearKeyframe blends from the previous value to its target at a constant rate.
type LinearKeyframe[V Animatable[V]] struct {
	target   V
	duration float64
}

// Linear creates a keyframe that moves linearly to target over duration
// seconds. Negative durations are treated as zero.
func Linear[V Animatable[V]](target V, duration float64) Keyframe[V] {
	return LinearKeyframe[V]{target: target, duration: nonNegative(duration)}
}

func (k LinearKeyframe[V]) Target() V {
	return k.target
}

func (k LinearKeyframe[V]) Duration() float64 {
	return k.duration
}

// Interpolate blends from toward the target. A zero length keyframe jumps
// straight to its target.
func (k LinearKeyframe[V]) Interpolate(from V, elapsed float64) V {
	if k.duration == 0 {
		return k.target
	}

	return from.Blend(k.target, elapsed/k.duration)
}

// MoveKeyframe jumps to its target and holds it for the whole segment.
type MoveKeyframe[V Animatable[V]] struct {
	target   V
	duration float64
}

// Move creates a keyframe that is always at target, regardless of where the
// previous segment ended. Negative durations are treated as zero.
func Move[V Animatable[V]](target V, duration float64) Keyframe[V] {
	return MoveKeyframe[V]{target: target, duration: nonNegative(duration)}
}

// Snap is another name for Move.
func Snap[V Animatable[V]](target V, duration float64) Keyframe[V] {
	return Move(target, duration)
}

func (k MoveKeyframe[V]) Target() V {
	return k.target
}

func (k MoveKeyframe[V]) Duration() float64 {
	return k.duration
}

func (k MoveKeyframe[V]) Interpolate(from V, elapsed float64) V {
	return k.target
}
