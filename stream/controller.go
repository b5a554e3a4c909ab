package stream

import (
	"time"

	"github.com/matt-g-everett/ledkey/keyframe"
)

// Controller owns the running show. Everything except Trigger must be called
// from the goroutine that renders frames.
type Controller struct {
	show       ShowConfig
	background Colour
	animator   *keyframe.Animator[Pulse, int]
	shakes     int
	triggers   chan struct{}
}

// NewController creates an idle Controller.
func NewController(show ShowConfig, background Colour) *Controller {
	c := new(Controller)
	c.show = show
	c.background = background
	c.shakes = 0
	c.animator = keyframe.NewAnimator(NewShow(show, c.shakes), c.shakes)

	// One pending trigger is enough, more would only restart the same show.
	c.triggers = make(chan struct{}, 1)

	return c
}

// Trigger asks for the show to restart. It never blocks and is safe to call
// from any goroutine.
func (c *Controller) Trigger() {
	select {
	case c.triggers <- struct{}{}:
	default:
	}
}

// Triggers delivers pending restart requests.
func (c *Controller) Triggers() <-chan struct{} {
	return c.triggers
}

// Restart rebuilds the show for the next trigger count and starts it at now.
func (c *Controller) Restart(now time.Time) {
	c.shakes++
	c.animator.SetTimeline(NewShow(c.show, c.shakes))
	c.animator.Trigger(c.shakes, now)
}

func (c *Controller) Shakes() int {
	return c.shakes
}

func (c *Controller) State() keyframe.State {
	return c.animator.State()
}

// CalculateFrame renders the show at now and reports whether it is over.
func (c *Controller) CalculateFrame(now time.Time) (*Frame, bool) {
	p, finished := c.animator.Tick(now)
	return p.Render(c.background), finished
}
