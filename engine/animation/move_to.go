// Package animation moves entity positions toward target points over time.
package animation

import (
	"time"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Mover advances a position toward a goal once per frame.
// Implementations are not safe for concurrent use; the owning entity serializes access.
type Mover interface {
	// Advance moves position toward the goal by one frame.
	//
	// Parameters:
	//   - position: the position to update in place
	//   - elapsed: frame time
	//
	// Returns:
	//   - bool: true if position was changed
	Advance(position *mgl32.Vec3, elapsed time.Duration) bool

	// Active reports whether the mover still has time left.
	//
	// Returns:
	//   - bool: true while moving
	Active() bool

	// Stop cancels the current movement, leaving the position where it is.
	Stop()
}

// MoveTo moves a position toward Target while Remaining is positive.
//
// Each frame covers elapsed/Remaining of the distance that is left, measured against
// the remaining time at the start of that frame. Left alone, that keeps a constant
// speed whatever the frame pacing. When something else moves the entity mid-flight the
// mover re-aims from the new position and still lands on Target exactly when Remaining
// reaches zero. The zero value is idle.
type MoveTo struct {
	Target    mgl32.Vec3
	Remaining time.Duration
}

var _ Mover = &MoveTo{}

// NewMoveTo creates a MoveTo heading for target over duration.
//
// Parameters:
//   - target: the destination point
//   - duration: time to arrive; <= 0 creates an idle mover
//
// Returns:
//   - *MoveTo: the new mover
func NewMoveTo(target mgl32.Vec3, duration time.Duration) *MoveTo {
	m := &MoveTo{}
	m.SetTarget(target, duration)
	return m
}

// SetTarget replaces the destination and the remaining time.
// Any movement in progress is abandoned; the new movement starts from wherever the
// position is on the next Advance. A non-positive duration leaves the mover idle.
//
// Parameters:
//   - target: the destination point
//   - duration: time to arrive
func (m *MoveTo) SetTarget(target mgl32.Vec3, duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	m.Target = target
	m.Remaining = duration
}

// Advance moves position toward Target. Idle movers and non-positive elapsed times
// leave position untouched.
func (m *MoveTo) Advance(position *mgl32.Vec3, elapsed time.Duration) bool {
	if position == nil || m.Remaining <= 0 || elapsed <= 0 {
		return false
	}

	if elapsed >= m.Remaining {
		*position = m.Target
		m.Remaining = 0
		return true
	}

	alpha := float32(elapsed.Seconds() / m.Remaining.Seconds())
	*position = common.LerpVec3(*position, m.Target, alpha)
	m.Remaining -= elapsed
	return true
}

// Active reports whether time remains on the current movement.
func (m *MoveTo) Active() bool {
	return m.Remaining > 0
}

// Stop zeroes the remaining time.
func (m *MoveTo) Stop() {
	m.Remaining = 0
}
