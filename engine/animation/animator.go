package animation

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Animated is anything that owns a position and a Mover and can advance itself by one frame.
type Animated interface {
	// Animate advances the owned mover against the owned position.
	//
	// Parameters:
	//   - elapsed: frame time
	//
	// Returns:
	//   - bool: true if the position changed
	Animate(elapsed time.Duration) bool
}

// Animate is the move-to system: it advances every item once and returns how many moved.
// Items are independent, so callers may split the list and run the parts concurrently.
//
// Parameters:
//   - items: the entities to advance; nil entries are skipped
//   - elapsed: frame time
//
// Returns:
//   - int: the number of items whose position changed
func Animate(items []Animated, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	moved := 0
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.Animate(elapsed) {
			moved++
		}
	}
	return moved
}

// Body is a bare position with an optional Mover.
type Body struct {
	Position mgl32.Vec3
	Mover    Mover
}

var _ Animated = &Body{}

// Animate advances the body's mover, if any.
func (b *Body) Animate(elapsed time.Duration) bool {
	if b.Mover == nil {
		return false
	}
	return b.Mover.Advance(&b.Position, elapsed)
}
