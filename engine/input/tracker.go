package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMotionCapacity bounds the queued cursor deltas between two frames.
const DefaultMotionCapacity = 256

// Tracker accumulates input events delivered by the window thread and hands out
// per-frame State snapshots to the tick thread. Thread-safe for concurrent access.
type Tracker struct {
	mu *sync.Mutex

	state State

	hasCursor   bool
	motionLimit int
}

// NewTracker creates a Tracker with an empty state.
//
// Parameters:
//   - motionCapacity: maximum queued cursor deltas per frame; values <= 0 use DefaultMotionCapacity
//
// Returns:
//   - *Tracker: the newly created tracker
func NewTracker(motionCapacity int) *Tracker {
	if motionCapacity <= 0 {
		motionCapacity = DefaultMotionCapacity
	}
	return &Tracker{
		mu:          &sync.Mutex{},
		motionLimit: motionCapacity,
	}
}

// KeyDown records a key press. Auto-repeat presses of an already held key do not
// produce a new just-pressed edge.
func (t *Tracker) KeyDown(key common.Key) {
	if key >= common.MaxKey {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.state.keys[key] {
		t.state.keysJustPressed[key] = true
	}
	t.state.keys[key] = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(key common.Key) {
	if key >= common.MaxKey {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.keys[key] = false
}

// ButtonDown records a mouse button press.
func (t *Tracker) ButtonDown(btn common.MouseButton) {
	if btn >= common.MaxMouseButton {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.state.buttons[btn] {
		t.state.buttonsJustPressed[btn] = true
	}
	t.state.buttons[btn] = true
}

// ButtonUp records a mouse button release.
func (t *Tracker) ButtonUp(btn common.MouseButton) {
	if btn >= common.MaxMouseButton {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.buttons[btn] = false
}

// CursorMoved records the new cursor position and queues the delta from the previous one.
// The first position after construction only seeds the cursor. When the queue is full the
// oldest delta is dropped.
//
// Parameters:
//   - x, y: cursor position in window pixels
func (t *Tracker) CursorMoved(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos := mgl32.Vec2{x, y}
	if t.hasCursor {
		delta := pos.Sub(t.state.cursor)
		if delta[0] != 0 || delta[1] != 0 {
			if len(t.state.motion) >= t.motionLimit {
				t.state.motion = append(t.state.motion[:0], t.state.motion[1:]...)
			}
			t.state.motion = append(t.state.motion, delta)
		}
	}
	t.state.cursor = pos
	t.hasCursor = true
}

// Frame returns the snapshot for the current frame and consumes the just-pressed
// edges and the queued cursor deltas. Held keys and buttons carry over.
//
// Returns:
//   - State: the frame's input snapshot
func (t *Tracker) Frame() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := t.state
	if len(t.state.motion) > 0 {
		snapshot.motion = append([]mgl32.Vec2(nil), t.state.motion...)
	}

	t.state.keysJustPressed = [common.MaxKey]bool{}
	t.state.buttonsJustPressed = [common.MaxMouseButton]bool{}
	t.state.motion = t.state.motion[:0]
	return snapshot
}

// Reset releases every key and button and drops queued motion, e.g. when the window loses focus.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	cursor := t.state.cursor
	t.state = State{cursor: cursor}
}
