package keyframe

import "fmt"

// A Track animates some part of a root value. Timelines hold tracks for
// different field types side by side through this interface.
type Track[R any] interface {
	// Duration of the track in seconds.
	Duration() float64
	// Apply returns root with the track's field set to its value at time t.
	Apply(root R, t float64) R
}

// FieldTrack is an ordered list of keyframes driving a single field.
type FieldTrack[R any, V Animatable[V]] struct {
	field     Field[R, V]
	keyframes []Keyframe[V]
	duration  float64
}

// NewTrack creates a FieldTrack. The keyframes are copied, so later changes to
// the caller's slice do not leak into the track.
func NewTrack[R any, V Animatable[V]](field Field[R, V], keyframes ...Keyframe[V]) *FieldTrack[R, V] {
	if field.get == nil || field.set == nil {
		panic(fmt.Sprintf("keyframe: track for field %q has no accessor", field.name))
	}

	t := new(FieldTrack[R, V])
	t.field = field
	t.keyframes = make([]Keyframe[V], len(keyframes))
	copy(t.keyframes, keyframes)
	for _, k := range t.keyframes {
		t.duration += k.Duration()
	}

	return t
}

// Duration is the sum of the keyframe durations.
func (t *FieldTrack[R, V]) Duration() float64 {
	return t.duration
}

func (t *FieldTrack[R, V]) Field() Field[R, V] {
	return t.field
}

// Keyframes returns a copy of the track's keyframes.
func (t *FieldTrack[R, V]) Keyframes() []Keyframe[V] {
	out := make([]Keyframe[V], len(t.keyframes))
	copy(out, t.keyframes)
	return out
}

// ValueAt resolves the field value localTime seconds into the track, given
// the value the field had before the track started.
//
// A keyframe only counts as finished once localTime is strictly past its end,
// so the exact end instant is evaluated by that keyframe at full progress.
// Negative times extrapolate backwards through the first keyframe.
func (t *FieldTrack[R, V]) ValueAt(localTime float64, initial V) V {
	cursor := 0.0
	previous := initial
	for _, k := range t.keyframes {
		relative := localTime - cursor
		if relative > k.Duration() {
			previous = k.Target()
			cursor += k.Duration()
			continue
		}

		return k.Interpolate(previous, relative)
	}

	// Past the end, hold the last target.
	if len(t.keyframes) == 0 {
		return initial
	}
	return t.keyframes[len(t.keyframes)-1].Target()
}

// Apply reads the field from root, evaluates the track and writes the result
// back into a new root.
func (t *FieldTrack[R, V]) Apply(root R, localTime float64) R {
	return t.field.Set(root, t.ValueAt(localTime, t.field.Get(root)))
}
