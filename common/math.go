package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// epsilon is the squared-length threshold below which a vector is treated as zero.
const epsilon = 1e-12

// WorldUp is the engine's world-space up axis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// Perspective creates a right-handed perspective projection matrix that maps depth
// into the WebGPU clip range [0, 1]. mgl32.Perspective targets OpenGL's [-1, 1] range
// and cannot be used with the WebGPU depth buffer directly.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1.0
	m[14] = (near * far) / (near - far)
	return m
}

// Lerp linearly interpolates between a and b. t is not clamped.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation fraction
//
// Returns:
//   - float32: a + (b-a)*t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two points component-wise. t is not clamped.
//
// Parameters:
//   - a: start point
//   - b: end point
//   - t: interpolation fraction
//
// Returns:
//   - mgl32.Vec3: the interpolated point
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// NormalizeOrZero returns the unit vector of v, or the zero vector if v is degenerate.
// mgl32's Normalize divides by the length unconditionally and yields NaN for zero input.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: v normalized, or zero
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	lenSq := v.Dot(v)
	if lenSq < epsilon || math.IsNaN(float64(lenSq)) || math.IsInf(float64(lenSq), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / float32(math.Sqrt(float64(lenSq))))
}

// ClampLength scales v down so its length does not exceed max. Shorter vectors are returned unchanged.
//
// Parameters:
//   - v: the vector to clamp
//   - max: the maximum allowed length
//
// Returns:
//   - mgl32.Vec3: the clamped vector
func ClampLength(v mgl32.Vec3, max float32) mgl32.Vec3 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// ExpSmoothingFactor returns the blend fraction for an exponential filter with time
// constant tau after elapsed seconds: 1 - e^(-elapsed/tau). After one time constant the
// filtered value has covered ~63% of the remaining distance to its target.
// Non-positive elapsed yields 0 and non-positive tau yields 1 (snap).
//
// Parameters:
//   - elapsed: elapsed time in seconds
//   - tau: time constant in seconds
//
// Returns:
//   - float32: blend fraction in [0, 1]
func ExpSmoothingFactor(elapsed, tau float32) float32 {
	if elapsed <= 0 || math.IsNaN(float64(elapsed)) {
		return 0
	}
	if tau <= 0 {
		return 1
	}
	return 1 - float32(math.Exp(float64(-elapsed/tau)))
}

// WrapDegrees wraps an angle into [0, 360).
//
// Parameters:
//   - deg: the angle in degrees
//
// Returns:
//   - float32: the wrapped angle
func WrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w -= 360
	}
	return w
}

// YawPitchRotation composes a rotation of yaw degrees about world up followed by
// pitch degrees about the resulting local right axis (Ry * Rx).
//
// Parameters:
//   - yawDeg: yaw angle in degrees
//   - pitchDeg: pitch angle in degrees
//
// Returns:
//   - mgl32.Quat: the composed unit quaternion
func YawPitchRotation(yawDeg, pitchDeg float32) mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(yawDeg), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(mgl32.DegToRad(pitchDeg), mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch).Normalize()
}

// SlerpShortest spherically interpolates from a to b along the shortest arc.
// mgl32.QuatSlerp does not flip hemispheres, so b is negated when the quaternions
// point away from each other.
//
// Parameters:
//   - a: start rotation
//   - b: end rotation
//   - t: interpolation fraction in [0, 1]
//
// Returns:
//   - mgl32.Quat: the interpolated unit quaternion
func SlerpShortest(a, b mgl32.Quat, t float32) mgl32.Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, t).Normalize()
}
