// Package keyframe evaluates keyframe animations: per-field tracks of timed
// segments composed into a timeline over a single root value.
package keyframe

import "time"

// Timeline composes a set of tracks over one initial root value.
//
// Timelines are values: building one is cheap, and hosts are expected to build
// a new one whenever whatever the animation depends on changes. R should have
// value semantics; tracks return modified copies of it and the initial value
// is never written to.
type Timeline[R any] struct {
	initial  R
	tracks   []Track[R]
	duration float64
}

// New creates a Timeline. Tracks are applied in the order given, so if two of
// them drive the same field the later one wins.
func New[R any](initial R, tracks ...Track[R]) Timeline[R] {
	tl := Timeline[R]{initial: initial}
	tl.tracks = make([]Track[R], len(tracks))
	copy(tl.tracks, tracks)
	for _, track := range tl.tracks {
		if d := track.Duration(); d > tl.duration {
			tl.duration = d
		}
	}

	return tl
}

// Duration is the longest track duration, or 0 without tracks.
func (tl Timeline[R]) Duration() float64 {
	return tl.duration
}

func (tl Timeline[R]) Initial() R {
	return tl.initial
}

// Len is the number of tracks.
func (tl Timeline[R]) Len() int {
	return len(tl.tracks)
}

// ValueAt returns the root value t seconds into the animation.
func (tl Timeline[R]) ValueAt(t float64) R {
	result := tl.initial
	for _, track := range tl.tracks {
		result = track.Apply(result, t)
	}

	return result
}

// ValueAtDuration is ValueAt for an elapsed time.Duration.
func (tl Timeline[R]) ValueAtDuration(d time.Duration) R {
	return tl.ValueAt(d.Seconds())
}
