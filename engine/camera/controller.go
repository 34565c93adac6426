package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Controls holds the tunable input-to-motion mapping of a Controller.
type Controls struct {
	// RotateStep is the yaw change in degrees for one press of a rotate key.
	RotateStep float32
	// MouseSensitivity is degrees of yaw/pitch per pixel of drag.
	MouseSensitivity float32
	// MoveSpeed is translation speed in world units per second.
	MoveSpeed float32
	// SprintMultiplier scales MoveSpeed while a sprint key is held.
	SprintMultiplier float32
}

// DefaultControls returns the mapping used by the demo scenes: 90 degree key steps,
// 0.3 degrees per dragged pixel, 10 units/s movement and a 10x sprint.
func DefaultControls() Controls {
	return Controls{
		RotateStep:       90,
		MouseSensitivity: 0.3,
		MoveSpeed:        10,
		SprintMultiplier: 10,
	}
}

// Bindings maps controller actions to keys and mouse buttons.
type Bindings struct {
	RotateLeft  common.Key
	RotateRight common.Key
	Forward     common.Key
	Back        common.Key
	Left        common.Key
	Right       common.Key
	Up          common.Key
	Down        common.Key
	Sprint      []common.Key
	Look        common.MouseButton
}

// DefaultBindings returns X/Z for 90 degree turns, WASD for movement, E/Q for up/down,
// shift to sprint, and right-mouse drag to look.
func DefaultBindings() Bindings {
	return Bindings{
		RotateLeft:  common.KeyX,
		RotateRight: common.KeyZ,
		Forward:     common.KeyW,
		Back:        common.KeyS,
		Left:        common.KeyA,
		Right:       common.KeyD,
		Up:          common.KeyE,
		Down:        common.KeyQ,
		Sprint:      []common.Key{common.KeyLeftShift, common.KeyRightShift},
		Look:        common.MouseButtonRight,
	}
}

type controllerImpl struct {
	mu *sync.Mutex

	rig      Rig
	controls Controls
	bindings Bindings
}

// Controller applies per-frame input to a Rig and then advances it.
// Input mapping is policy; the Rig holds all camera state.
type Controller interface {
	// Rig returns the controlled rig.
	//
	// Returns:
	//   - Rig: the rig
	Rig() Rig

	// Controls returns the current input mapping values.
	//
	// Returns:
	//   - Controls: the mapping values
	Controls() Controls

	// SetControls replaces the input mapping values. Safe to call while Update runs
	// on another goroutine.
	//
	// Parameters:
	//   - c: the new mapping values
	SetControls(c Controls)

	// Bindings returns the action bindings.
	//
	// Returns:
	//   - Bindings: the bindings
	Bindings() Bindings

	// SetLookButton rebinds drag-to-look. Safe to call while Update runs on another goroutine.
	//
	// Parameters:
	//   - btn: the mouse button to hold while dragging
	SetLookButton(btn common.MouseButton)

	// Update applies this frame's input to the rig and advances it by elapsed seconds.
	//  1. a just-pressed rotate key turns the rig by RotateStep (left wins over right)
	//  2. dragging with the look button held turns by MouseSensitivity per pixel, Y inverted
	//  3. held movement keys translate along the camera's local axes, scaled by elapsed,
	//     MoveSpeed and SprintMultiplier while sprinting
	//  4. the rig's smoothing filters advance and the new pose is returned
	//
	// Parameters:
	//   - elapsed: frame time in seconds
	//   - state: the frame's input snapshot
	//
	// Returns:
	//   - Pose: the new camera pose
	Update(elapsed float32, state input.State) Pose
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller for rig with default controls and bindings.
// Panics if rig is nil.
//
// Parameters:
//   - rig: the rig to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(rig Rig, options ...ControllerOption) Controller {
	if rig == nil {
		panic("camera: NewController requires a non-nil Rig")
	}
	c := &controllerImpl{
		mu:       &sync.Mutex{},
		rig:      rig,
		controls: DefaultControls(),
		bindings: DefaultBindings(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) Rig() Rig {
	return c.rig
}

func (c *controllerImpl) Controls() Controls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controls
}

func (c *controllerImpl) SetControls(ctrl Controls) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controls = ctrl
}

func (c *controllerImpl) Bindings() Bindings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindings
}

func (c *controllerImpl) SetLookButton(btn common.MouseButton) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings.Look = btn
}

func (c *controllerImpl) Update(elapsed float32, state input.State) Pose {
	if !common.Finite(elapsed) || elapsed < 0 {
		elapsed = 0
	}

	c.mu.Lock()
	ctrl := c.controls
	b := c.bindings
	c.mu.Unlock()

	if state.JustPressed(b.RotateLeft) {
		c.rig.Rotate(-ctrl.RotateStep, 0)
	} else if state.JustPressed(b.RotateRight) {
		c.rig.Rotate(ctrl.RotateStep, 0)
	}

	if state.ButtonPressed(b.Look) {
		if d := state.DragDelta(); d[0] != 0 || d[1] != 0 {
			c.rig.Rotate(-d[0]*ctrl.MouseSensitivity, -d[1]*ctrl.MouseSensitivity)
		}
	}

	if move := c.moveDirection(state, b); move != (mgl32.Vec3{}) && elapsed > 0 {
		speed := ctrl.MoveSpeed
		if state.AnyPressed(b.Sprint...) {
			speed *= ctrl.SprintMultiplier
		}
		c.rig.Translate(move.Mul(elapsed * speed))
	}

	return c.rig.Update(elapsed)
}

// moveDirection combines held movement keys into a unit direction along the camera's
// local axes, or zero when nothing (or opposing keys) is held. Orbit rigs move their
// pivot on the ground plane, so forward and right are flattened first. Looking straight
// down or up flattens forward to zero; the camera's up vector then points along the
// horizontal heading (or against it when looking up).
func (c *controllerImpl) moveDirection(state input.State, b Bindings) mgl32.Vec3 {
	axis := func(pos, neg common.Key) float32 {
		var v float32
		if state.Pressed(pos) {
			v++
		}
		if state.Pressed(neg) {
			v--
		}
		return v
	}

	fwdAmount := axis(b.Forward, b.Back)
	rightAmount := axis(b.Right, b.Left)
	upAmount := axis(b.Up, b.Down)
	if fwdAmount == 0 && rightAmount == 0 && upAmount == 0 {
		return mgl32.Vec3{}
	}

	pose := c.rig.Pose()
	forward := pose.Forward()
	right := pose.Right()
	if c.rig.Mode() == ModeOrbit {
		flat := common.NormalizeOrZero(mgl32.Vec3{forward[0], 0, forward[2]})
		if flat == (mgl32.Vec3{}) {
			up := pose.Up()
			flat = common.NormalizeOrZero(mgl32.Vec3{up[0], 0, up[2]})
			if forward[1] > 0 {
				flat = flat.Mul(-1)
			}
		}
		forward = flat
		right = common.NormalizeOrZero(mgl32.Vec3{right[0], 0, right[2]})
	}

	dir := forward.Mul(fwdAmount).
		Add(right.Mul(rightAmount)).
		Add(common.WorldUp.Mul(upAmount))
	return common.NormalizeOrZero(dir)
}
