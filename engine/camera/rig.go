package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects how a Rig derives the camera position.
type Mode int

const (
	// ModeOrbit places the camera at pivot + rotation * arm, looking back along the arm.
	ModeOrbit Mode = iota
	// ModeFly places the camera at its own smoothed absolute position.
	ModeFly
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFly:
		return "fly"
	default:
		return "unknown"
	}
}

// Default rig values matching the demo scene: an orbit arm 8 units behind the pivot,
// yawed 45 degrees and pitched 30 degrees down.
const (
	DefaultYaw               float32 = 45.0
	DefaultPitch             float32 = -30.0
	DefaultArmLength         float32 = 8.0
	DefaultRotationSmoothing float32 = 1.5
	DefaultPositionSmoothing float32 = 1.0
	DefaultMinPitch          float32 = -90.0
	DefaultMaxPitch          float32 = 90.0
)

type rigImpl struct {
	mu *sync.Mutex

	mode Mode

	// Unsmoothed state mutated by commands between frames
	yaw      float32 // degrees, wrapped to [0, 360)
	pitch    float32 // degrees, clamped to [minPitch, maxPitch]
	pivot    mgl32.Vec3
	position mgl32.Vec3
	arm      mgl32.Vec3

	minPitch float32
	maxPitch float32

	// Time constants are fixed once the rig is built
	rotationSmoothing float32
	positionSmoothing float32

	rotation    *ExpSmoothed[mgl32.Quat]
	translation *ExpSmoothed[mgl32.Vec3]

	pose Pose
}

// Rig converts yaw/pitch and translation commands into a smoothed camera Pose.
// Commands mutate the unsmoothed state immediately; Update advances the smoothing
// filters and recomputes the pose. Thread-safe for concurrent access.
type Rig interface {
	// Mode returns whether the rig orbits a pivot or flies freely.
	//
	// Returns:
	//   - Mode: the rig mode
	Mode() Mode

	// Yaw returns the unsmoothed yaw angle in degrees, in [0, 360).
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the unsmoothed pitch angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Rotate adds yaw and pitch deltas to the unsmoothed orientation.
	// Yaw wraps around; pitch is clamped to the rig's pitch bounds.
	//
	// Parameters:
	//   - yawDeg: yaw delta in degrees (positive turns left, counter-clockwise seen from above)
	//   - pitchDeg: pitch delta in degrees (positive tilts up)
	Rotate(yawDeg, pitchDeg float32)

	// SetYawPitch replaces the unsmoothed orientation.
	//
	// Parameters:
	//   - yawDeg: yaw in degrees
	//   - pitchDeg: pitch in degrees
	SetYawPitch(yawDeg, pitchDeg float32)

	// Translate moves the unsmoothed position (fly mode) or pivot (orbit mode).
	// Non-finite deltas are ignored.
	//
	// Parameters:
	//   - delta: world-space offset
	Translate(delta mgl32.Vec3)

	// Position returns the unsmoothed absolute position used in fly mode.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition replaces the unsmoothed absolute position used in fly mode.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// Pivot returns the unsmoothed orbit pivot.
	//
	// Returns:
	//   - mgl32.Vec3: the pivot
	Pivot() mgl32.Vec3

	// SetPivot replaces the unsmoothed orbit pivot.
	//
	// Parameters:
	//   - p: the new pivot
	SetPivot(p mgl32.Vec3)

	// Arm returns the orbit arm offset in the rig's local space.
	//
	// Returns:
	//   - mgl32.Vec3: the arm offset
	Arm() mgl32.Vec3

	// SetArm replaces the orbit arm offset. The arm is not smoothed.
	//
	// Parameters:
	//   - arm: the arm offset in local space
	SetArm(arm mgl32.Vec3)

	// RotationSmoothing returns the rotation filter's time constant in seconds.
	//
	// Returns:
	//   - float32: time constant
	RotationSmoothing() float32

	// PositionSmoothing returns the position filter's time constant in seconds.
	//
	// Returns:
	//   - float32: time constant
	PositionSmoothing() float32

	// Update advances the smoothing filters by elapsed seconds and recomputes the pose.
	// Negative or NaN elapsed times are treated as zero.
	//
	// Parameters:
	//   - elapsed: frame time in seconds
	//
	// Returns:
	//   - Pose: the new camera pose
	Update(elapsed float32) Pose

	// Pose returns the pose computed by the most recent Update (or construction).
	//
	// Returns:
	//   - Pose: the last computed pose
	Pose() Pose
}

var _ Rig = &rigImpl{}

// NewRig creates a Rig. Without options it reproduces the demo's orbit rig:
// yaw 45, pitch -30, arm 8 along local +Z, rotation smoothing 1.5s.
// The smoothing filters start at their targets, so the initial pose has no lag.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigOption) Rig {
	r := &rigImpl{
		mu:                &sync.Mutex{},
		mode:              ModeOrbit,
		yaw:               DefaultYaw,
		pitch:             DefaultPitch,
		arm:               mgl32.Vec3{0, 0, DefaultArmLength},
		minPitch:          DefaultMinPitch,
		maxPitch:          DefaultMaxPitch,
		rotationSmoothing: DefaultRotationSmoothing,
		positionSmoothing: DefaultPositionSmoothing,
	}

	for _, option := range options {
		option(r)
	}
	r.replaceNonFinite()

	if r.minPitch > r.maxPitch {
		r.minPitch, r.maxPitch = r.maxPitch, r.minPitch
	}
	r.yaw = common.WrapDegrees(r.yaw)
	r.pitch = mgl32.Clamp(r.pitch, r.minPitch, r.maxPitch)

	r.rotation = NewSmoothedQuat(r.rotationSmoothing)
	r.translation = NewSmoothedVec3(r.positionSmoothing)
	r.rotation.Seed(r.targetRotation())
	r.translation.Seed(r.targetBase())
	r.pose = r.composePose(r.rotation.Value(), r.translation.Value())

	return r
}

// --- internal helpers ---

// replaceNonFinite resets option values that are NaN or infinite to their defaults.
// The filters never recover from a NaN seed.
func (r *rigImpl) replaceNonFinite() {
	if !common.Finite(r.yaw) {
		r.yaw = DefaultYaw
	}
	if !common.Finite(r.pitch) {
		r.pitch = DefaultPitch
	}
	if !common.Finite(r.minPitch) {
		r.minPitch = DefaultMinPitch
	}
	if !common.Finite(r.maxPitch) {
		r.maxPitch = DefaultMaxPitch
	}
	if !common.FiniteVec3(r.arm) {
		r.arm = mgl32.Vec3{0, 0, DefaultArmLength}
	}
	if !common.FiniteVec3(r.pivot) {
		r.pivot = mgl32.Vec3{}
	}
	if !common.FiniteVec3(r.position) {
		r.position = mgl32.Vec3{}
	}
	if !common.Finite(r.rotationSmoothing) {
		r.rotationSmoothing = DefaultRotationSmoothing
	}
	if !common.Finite(r.positionSmoothing) {
		r.positionSmoothing = DefaultPositionSmoothing
	}
}

// targetRotation is the unsmoothed orientation. Caller must hold the mutex.
func (r *rigImpl) targetRotation() mgl32.Quat {
	return common.YawPitchRotation(r.yaw, r.pitch)
}

// targetBase is the unsmoothed point the position filter follows: the pivot when orbiting,
// the absolute position when flying. Caller must hold the mutex.
func (r *rigImpl) targetBase() mgl32.Vec3 {
	if r.mode == ModeFly {
		return r.position
	}
	return r.pivot
}

// composePose derives the output pose from smoothed rotation and base. Caller must hold the mutex.
func (r *rigImpl) composePose(rot mgl32.Quat, base mgl32.Vec3) Pose {
	pos := base
	if r.mode == ModeOrbit {
		pos = base.Add(rot.Rotate(r.arm))
	}
	return Pose{Position: pos, Rotation: rot}
}

// --- Rig implementation ---

func (r *rigImpl) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *rigImpl) Yaw() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.yaw
}

func (r *rigImpl) Pitch() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pitch
}

func (r *rigImpl) Rotate(yawDeg, pitchDeg float32) {
	if !common.Finite(yawDeg) || !common.Finite(pitchDeg) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.yaw = common.WrapDegrees(r.yaw + yawDeg)
	r.pitch = mgl32.Clamp(r.pitch+pitchDeg, r.minPitch, r.maxPitch)
}

func (r *rigImpl) SetYawPitch(yawDeg, pitchDeg float32) {
	if !common.Finite(yawDeg) || !common.Finite(pitchDeg) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.yaw = common.WrapDegrees(yawDeg)
	r.pitch = mgl32.Clamp(pitchDeg, r.minPitch, r.maxPitch)
}

func (r *rigImpl) Translate(delta mgl32.Vec3) {
	if !common.FiniteVec3(delta) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mode == ModeFly {
		r.position = r.position.Add(delta)
		return
	}
	r.pivot = r.pivot.Add(delta)
}

func (r *rigImpl) Position() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

func (r *rigImpl) SetPosition(p mgl32.Vec3) {
	if !common.FiniteVec3(p) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = p
}

func (r *rigImpl) Pivot() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pivot
}

func (r *rigImpl) SetPivot(p mgl32.Vec3) {
	if !common.FiniteVec3(p) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pivot = p
}

func (r *rigImpl) Arm() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.arm
}

func (r *rigImpl) SetArm(arm mgl32.Vec3) {
	if !common.FiniteVec3(arm) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.arm = arm
}

func (r *rigImpl) RotationSmoothing() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rotationSmoothing
}

func (r *rigImpl) PositionSmoothing() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.positionSmoothing
}

func (r *rigImpl) Update(elapsed float32) Pose {
	if !common.Finite(elapsed) || elapsed < 0 {
		elapsed = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rot := r.rotation.Step(r.targetRotation(), elapsed)
	base := r.translation.Step(r.targetBase(), elapsed)
	r.pose = r.composePose(rot, base)
	return r.pose
}

func (r *rigImpl) Pose() Pose {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pose
}
