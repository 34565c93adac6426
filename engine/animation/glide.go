package animation

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide moves a position from a start point to a target over a fixed duration along
// an easing curve, one tween per axis. Unlike MoveTo the timing is measured against
// the original duration, so ease.Linear gives constant speed.
type Glide struct {
	tweens [3]*gween.Tween
	target mgl32.Vec3
	easing ease.TweenFunc
	active bool
}

var _ Mover = &Glide{}

// NewGlide creates an idle Glide using easing for future movements.
//
// Parameters:
//   - easing: the easing curve; nil selects ease.Linear
//
// Returns:
//   - *Glide: the new mover
func NewGlide(easing ease.TweenFunc) *Glide {
	if easing == nil {
		easing = ease.Linear
	}
	return &Glide{easing: easing}
}

// SetTarget starts a movement from from to to over duration. A nil easing keeps the
// current curve. A non-positive duration leaves the mover idle.
//
// Parameters:
//   - from: the start point
//   - to: the destination point
//   - duration: time to arrive
//   - easing: the easing curve for this movement, or nil
func (g *Glide) SetTarget(from, to mgl32.Vec3, duration time.Duration, easing ease.TweenFunc) {
	if easing != nil {
		g.easing = easing
	}
	g.target = to
	if duration <= 0 {
		g.active = false
		return
	}
	d := float32(duration.Seconds())
	for i := range g.tweens {
		g.tweens[i] = gween.New(from[i], to[i], d, g.easing)
	}
	g.active = true
}

// Target returns the destination of the current or last movement.
func (g *Glide) Target() mgl32.Vec3 {
	return g.target
}

// Advance steps every axis tween by elapsed and writes the eased position.
// The position is set exactly to the target once the tweens finish.
func (g *Glide) Advance(position *mgl32.Vec3, elapsed time.Duration) bool {
	if position == nil || !g.active || elapsed <= 0 {
		return false
	}

	dt := float32(elapsed.Seconds())
	finished := true
	for i, tw := range g.tweens {
		v, done := tw.Update(dt)
		position[i] = v
		finished = finished && done
	}
	if finished {
		*position = g.target
		g.active = false
	}
	return true
}

// Active reports whether a movement is in progress.
func (g *Glide) Active() bool {
	return g.active
}

// Stop cancels the movement in progress.
func (g *Glide) Stop() {
	g.active = false
}
