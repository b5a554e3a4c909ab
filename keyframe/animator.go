package keyframe

import "time"

// State of an Animator.
type State int

const (
	// Idle means the animator has never been triggered.
	Idle State = iota
	// Running means the clock is inside the timeline.
	Running
	// Finished means the clock has run past the end of the timeline.
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Animator drives a Timeline from a clock and a trigger value. Any change of
// trigger restarts the animation from the beginning.
//
// An Animator is not safe for concurrent use; triggers and ticks must come
// from the same goroutine.
type Animator[R any, T comparable] struct {
	timeline Timeline[R]
	trigger  T
	start    time.Time
	state    State
}

// NewAnimator creates an idle Animator. trigger is the starting trigger
// value; only a different value will start the animation.
func NewAnimator[R any, T comparable](timeline Timeline[R], trigger T) *Animator[R, T] {
	a := new(Animator[R, T])
	a.timeline = timeline
	a.trigger = trigger
	a.state = Idle
	return a
}

func (a *Animator[R, T]) State() State {
	return a.state
}

func (a *Animator[R, T]) Timeline() Timeline[R] {
	return a.timeline
}

// SetTimeline swaps in a rebuilt timeline without touching the clock.
func (a *Animator[R, T]) SetTimeline(timeline Timeline[R]) {
	a.timeline = timeline
}

// Trigger records a new trigger value. If it differs from the last one the
// clock restarts at now and Trigger returns true.
func (a *Animator[R, T]) Trigger(value T, now time.Time) bool {
	if value == a.trigger {
		return false
	}

	a.trigger = value
	a.Restart(now)
	return true
}

// Restart starts the animation from the beginning at now.
func (a *Animator[R, T]) Restart(now time.Time) {
	a.start = now
	a.state = Running
}

// Elapsed is the time in seconds since the last restart, or 0 when idle.
func (a *Animator[R, T]) Elapsed(now time.Time) float64 {
	if a.state == Idle {
		return 0
	}
	return now.Sub(a.start).Seconds()
}

// Tick evaluates the timeline at now. The second result reports whether the
// animation is over, and is always true before the first trigger.
func (a *Animator[R, T]) Tick(now time.Time) (R, bool) {
	if a.state == Idle {
		return a.timeline.Initial(), true
	}

	elapsed := a.Elapsed(now)
	value := a.timeline.ValueAt(elapsed)
	finished := elapsed > a.timeline.Duration()
	if finished {
		a.state = Finished
	} else {
		a.state = Running
	}

	return value, finished
}
