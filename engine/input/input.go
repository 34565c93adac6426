// Package input turns window callbacks into per-frame snapshots of keyboard and mouse state.
package input

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// State is an immutable snapshot of input devices for a single frame.
// The zero value reports nothing pressed and no motion.
type State struct {
	keys            [common.MaxKey]bool
	keysJustPressed [common.MaxKey]bool

	buttons            [common.MaxMouseButton]bool
	buttonsJustPressed [common.MaxMouseButton]bool

	cursor mgl32.Vec2
	motion []mgl32.Vec2
}

// Pressed reports whether key is currently held.
//
// Parameters:
//   - key: the virtual key code
//
// Returns:
//   - bool: true if held
func (s State) Pressed(key common.Key) bool {
	if key >= common.MaxKey {
		return false
	}
	return s.keys[key]
}

// JustPressed reports whether key went down since the previous frame.
//
// Parameters:
//   - key: the virtual key code
//
// Returns:
//   - bool: true if pressed this frame
func (s State) JustPressed(key common.Key) bool {
	if key >= common.MaxKey {
		return false
	}
	return s.keysJustPressed[key]
}

// AnyPressed reports whether any of keys is held.
func (s State) AnyPressed(keys ...common.Key) bool {
	for _, k := range keys {
		if s.Pressed(k) {
			return true
		}
	}
	return false
}

// ButtonPressed reports whether the mouse button is currently held.
//
// Parameters:
//   - btn: the mouse button
//
// Returns:
//   - bool: true if held
func (s State) ButtonPressed(btn common.MouseButton) bool {
	if btn >= common.MaxMouseButton {
		return false
	}
	return s.buttons[btn]
}

// ButtonJustPressed reports whether the mouse button went down since the previous frame.
//
// Parameters:
//   - btn: the mouse button
//
// Returns:
//   - bool: true if pressed this frame
func (s State) ButtonJustPressed(btn common.MouseButton) bool {
	if btn >= common.MaxMouseButton {
		return false
	}
	return s.buttonsJustPressed[btn]
}

// Cursor returns the cursor position in window pixels at the time of the snapshot.
func (s State) Cursor() mgl32.Vec2 {
	return s.cursor
}

// MouseMotion returns the queued cursor deltas since the previous frame, oldest first.
// The slice is owned by the snapshot and must not be modified.
func (s State) MouseMotion() []mgl32.Vec2 {
	return s.motion
}

// DragDelta sums the queued cursor deltas.
//
// Returns:
//   - mgl32.Vec2: total cursor movement in pixels since the previous frame
func (s State) DragDelta() mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, d := range s.motion {
		sum = sum.Add(d)
	}
	return sum
}

// Builder constructs State values directly. It is used by tests and by hosts that
// do not run a Tracker.
type Builder struct {
	s State
}

// Press marks keys as held and just pressed.
func (b *Builder) Press(keys ...common.Key) *Builder {
	for _, k := range keys {
		if k < common.MaxKey {
			b.s.keys[k] = true
			b.s.keysJustPressed[k] = true
		}
	}
	return b
}

// Hold marks keys as held without an edge this frame.
func (b *Builder) Hold(keys ...common.Key) *Builder {
	for _, k := range keys {
		if k < common.MaxKey {
			b.s.keys[k] = true
		}
	}
	return b
}

// HoldButton marks a mouse button as held without an edge this frame.
func (b *Builder) HoldButton(btn common.MouseButton) *Builder {
	if btn < common.MaxMouseButton {
		b.s.buttons[btn] = true
	}
	return b
}

// Click marks a mouse button as held and just pressed.
func (b *Builder) Click(btn common.MouseButton) *Builder {
	if btn < common.MaxMouseButton {
		b.s.buttons[btn] = true
		b.s.buttonsJustPressed[btn] = true
	}
	return b
}

// Cursor sets the cursor position.
func (b *Builder) Cursor(x, y float32) *Builder {
	b.s.cursor = mgl32.Vec2{x, y}
	return b
}

// Move queues a cursor delta.
func (b *Builder) Move(dx, dy float32) *Builder {
	b.s.motion = append(b.s.motion, mgl32.Vec2{dx, dy})
	return b
}

// State returns the built snapshot.
func (b *Builder) State() State {
	return b.s
}
