package camera

import "github.com/go-gl/mathgl/mgl32"

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithMode sets whether the rig orbits a pivot or flies freely.
//
// Parameters:
//   - mode: ModeOrbit or ModeFly
//
// Returns:
//   - RigOption: functional option to set the mode
func WithMode(mode Mode) RigOption {
	return func(r *rigImpl) {
		r.mode = mode
	}
}

// WithYawPitch sets the initial orientation.
//
// Parameters:
//   - yawDeg: yaw in degrees around world up
//   - pitchDeg: pitch in degrees around the local right axis
//
// Returns:
//   - RigOption: functional option to set the orientation
func WithYawPitch(yawDeg, pitchDeg float32) RigOption {
	return func(r *rigImpl) {
		r.yaw = yawDeg
		r.pitch = pitchDeg
	}
}

// WithArm sets the orbit arm offset in rig-local space (+Z points back toward the camera).
//
// Parameters:
//   - arm: the local offset from the pivot
//
// Returns:
//   - RigOption: functional option to set the arm
func WithArm(arm mgl32.Vec3) RigOption {
	return func(r *rigImpl) {
		r.arm = arm
	}
}

// WithPivot sets the initial orbit pivot.
//
// Parameters:
//   - pivot: world-space point the orbit arm is attached to
//
// Returns:
//   - RigOption: functional option to set the pivot
func WithPivot(pivot mgl32.Vec3) RigOption {
	return func(r *rigImpl) {
		r.pivot = pivot
	}
}

// WithPosition sets the initial absolute position used in fly mode.
//
// Parameters:
//   - position: world-space camera position
//
// Returns:
//   - RigOption: functional option to set the position
func WithPosition(position mgl32.Vec3) RigOption {
	return func(r *rigImpl) {
		r.position = position
	}
}

// WithRotationSmoothing sets the rotation filter time constant.
// After tau seconds the smoothed rotation covers ~63% of the way to its target.
//
// Parameters:
//   - tau: time constant in seconds (<= 0 disables smoothing)
//
// Returns:
//   - RigOption: functional option to set rotation smoothing
func WithRotationSmoothing(tau float32) RigOption {
	return func(r *rigImpl) {
		r.rotationSmoothing = tau
	}
}

// WithPositionSmoothing sets the position (fly) or pivot (orbit) filter time constant.
//
// Parameters:
//   - tau: time constant in seconds (<= 0 disables smoothing)
//
// Returns:
//   - RigOption: functional option to set position smoothing
func WithPositionSmoothing(tau float32) RigOption {
	return func(r *rigImpl) {
		r.positionSmoothing = tau
	}
}

// WithPitchBounds sets the pitch clamp range. Bounds given in reverse order are swapped.
//
// Parameters:
//   - minDeg: lowest pitch in degrees
//   - maxDeg: highest pitch in degrees
//
// Returns:
//   - RigOption: functional option to set pitch bounds
func WithPitchBounds(minDeg, maxDeg float32) RigOption {
	return func(r *rigImpl) {
		r.minPitch = minDeg
		r.maxPitch = maxDeg
	}
}
