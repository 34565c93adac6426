package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in world space. Direction is expected to be unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectGround intersects the ray with the horizontal plane y = height.
// Rays parallel to the plane or pointing away from it do not hit.
//
// Parameters:
//   - height: the plane's Y coordinate
//
// Returns:
//   - mgl32.Vec3: the hit point
//   - float32: the distance along the ray
//   - bool: true if the ray hits the plane in front of its origin
func (r Ray) IntersectGround(height float32) (mgl32.Vec3, float32, bool) {
	if float32(math.Abs(float64(r.Direction[1]))) < 1e-6 {
		return mgl32.Vec3{}, 0, false
	}
	t := (height - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return mgl32.Vec3{}, 0, false
	}
	return r.At(t), t, true
}

// IntersectAABB intersects the ray with an axis-aligned box using the slab method.
// A ray starting inside the box hits at distance 0.
//
// Parameters:
//   - min: the box's minimum corner
//   - max: the box's maximum corner
//
// Returns:
//   - float32: distance to the entry point
//   - bool: true if the ray hits the box
func (r Ray) IntersectAABB(min, max mgl32.Vec3) (float32, bool) {
	tNear := float32(math.Inf(-1))
	tFar := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if float32(math.Abs(float64(d))) < 1e-8 {
			if o < min[axis] || o > max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (min[axis] - o) / d
		t2 := (max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar || tFar < 0 {
			return 0, false
		}
	}

	if tNear < 0 {
		return 0, true
	}
	return tNear, true
}
