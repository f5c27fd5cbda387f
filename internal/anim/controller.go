// Package anim drives the progressive reveal and erase of the maze
// path. The controller is a small state machine advanced by the host
// loop's tick callback; it never blocks and never draws more than one
// segment per accepted tick.
package anim

import (
	"time"

	"github.com/san-kum/mazeviz/internal/render"
)

// State is the animation mode.
type State int

const (
	StateIdle State = iota
	StateForward
	StateReverse
)

func (s State) String() string {
	switch s {
	case StateForward:
		return "forward"
	case StateReverse:
		return "reverse"
	default:
		return "idle"
	}
}

// SegmentDrawer draws or erases one path segment. *render.Pipeline
// satisfies it.
type SegmentDrawer interface {
	DrawSegment(index int, p render.Pixel)
}

// Controller owns the animation state: mode, progress and the
// timestamp of the last accepted tick. All mutation happens inside
// Trigger, Tick and Reset, which the host loop must never run
// concurrently.
type Controller struct {
	drawer   SegmentDrawer
	pathLen  int
	interval time.Duration

	state    State
	progress int
	lastTick time.Time
}

// NewController creates an idle controller at progress 0. interval is
// the minimum wall-clock spacing between accepted ticks.
func NewController(drawer SegmentDrawer, pathLen int, interval time.Duration) *Controller {
	return &Controller{drawer: drawer, pathLen: pathLen, interval: interval}
}

// State reports the current animation mode.
func (c *Controller) State() State { return c.state }

// Progress reports how many path points are currently revealed.
func (c *Controller) Progress() int { return c.progress }

// PathLen reports the total number of path points.
func (c *Controller) PathLen() int { return c.pathLen }

// Trigger handles the animate key. From idle it starts the reveal, or
// the erase when the path is already fully shown. While animating it
// is a no-op, so hammering the key cannot double-run the animation.
func (c *Controller) Trigger(now time.Time) {
	if c.state != StateIdle {
		return
	}
	if c.progress >= c.pathLen {
		c.state = StateReverse
	} else {
		c.state = StateForward
	}
	c.lastTick = now
}

// Tick advances the animation by at most one segment. Ticks arriving
// sooner than the minimum interval after the last accepted one are
// dropped, whatever rate the host loop runs at.
func (c *Controller) Tick(now time.Time) {
	if c.state == StateIdle {
		return
	}
	if now.Sub(c.lastTick) < c.interval {
		return
	}
	c.lastTick = now

	switch c.state {
	case StateForward:
		switch {
		case c.progress == 0:
			// reveal the entry point; there is no segment before it
			c.progress = 1
		case c.progress < c.pathLen:
			c.drawer.DrawSegment(c.progress, render.PixelPath)
			c.progress++
		default:
			c.state = StateIdle
		}
	case StateReverse:
		if c.progress > 1 {
			c.drawer.DrawSegment(c.progress-1, render.PixelErase)
			c.progress--
		} else {
			c.state = StateIdle
		}
	}
}

// Reset returns to idle at progress 0. The caller repaints.
func (c *Controller) Reset() {
	c.state = StateIdle
	c.progress = 0
	c.lastTick = time.Time{}
}
