package camera

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the derived camera transform produced by a Rig each frame.
// Cameras look down their local -Z axis with +Y up.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Forward returns the world-space viewing direction.
func (p Pose) Forward() mgl32.Vec3 {
	return p.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up returns the world-space up direction of the camera.
func (p Pose) Up() mgl32.Vec3 {
	return p.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Right returns the world-space right direction of the camera.
func (p Pose) Right() mgl32.Vec3 {
	return p.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Target returns the point one unit in front of the camera.
func (p Pose) Target() mgl32.Vec3 {
	return p.Position.Add(p.Forward())
}

// ViewMatrix builds the world-to-view matrix looking from Position toward Target.
// A degenerate up vector falls back to world up.
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func (p Pose) ViewMatrix() mgl32.Mat4 {
	up := common.NormalizeOrZero(p.Up())
	if up == (mgl32.Vec3{}) {
		up = common.WorldUp
	}
	return mgl32.LookAtV(p.Position, p.Target(), up)
}
