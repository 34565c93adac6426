package camera

import "github.com/Carmen-Shannon/oxy-rig/common"

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithControls sets the input mapping values.
//
// Parameters:
//   - c: rotate step, mouse sensitivity, move speed and sprint multiplier
//
// Returns:
//   - ControllerOption: functional option to set the controls
func WithControls(c Controls) ControllerOption {
	return func(cc *controllerImpl) {
		cc.controls = c
	}
}

// WithBindings sets the action key and button bindings.
//
// Parameters:
//   - b: the bindings
//
// Returns:
//   - ControllerOption: functional option to set the bindings
func WithBindings(b Bindings) ControllerOption {
	return func(cc *controllerImpl) {
		cc.bindings = b
	}
}

// WithMouseSensitivity sets the drag sensitivity in degrees per pixel.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - ControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.controls.MouseSensitivity = sensitivity
	}
}

// WithMoveSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - ControllerOption: functional option to set move speed
func WithMoveSpeed(speed float32) ControllerOption {
	return func(cc *controllerImpl) {
		cc.controls.MoveSpeed = speed
	}
}

// WithLookButton sets the mouse button that must be held for drag-to-look.
//
// Parameters:
//   - btn: the mouse button
//
// Returns:
//   - ControllerOption: functional option to set the look button
func WithLookButton(btn common.MouseButton) ControllerOption {
	return func(cc *controllerImpl) {
		cc.bindings.Look = btn
	}
}
