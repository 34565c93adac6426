// package common contains the plain value types and math helpers shared across the engine.
// They are not interface-wrapped structs, just plain data.
package common

import "github.com/go-gl/mathgl/mgl32"

// MeshKind selects one of the renderer's built-in meshes.
type MeshKind uint8

const (
	// MeshBox is a unit cube centered on the origin.
	MeshBox MeshKind = iota
	// MeshPlane is a unit square in the XZ plane facing +Y.
	MeshPlane
)

func (m MeshKind) String() string {
	switch m {
	case MeshBox:
		return "box"
	case MeshPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Color is a linear RGBA color.
type Color [4]float32

// Common colors used by the demo scenes.
var (
	ColorWhite     = Color{1, 1, 1, 1}
	ColorGround    = Color{0.3, 0.5, 0.3, 1}
	ColorBox       = Color{0.8, 0.7, 0.6, 1}
	ColorHighlight = Color{1.0, 0.85, 0.2, 1}
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates a box centered on center with the given half extents.
// Negative extents are treated as positive.
func NewAABB(center, halfExtents mgl32.Vec3) AABB {
	for i := range halfExtents {
		if halfExtents[i] < 0 {
			halfExtents[i] = -halfExtents[i]
		}
	}
	return AABB{Min: center.Sub(halfExtents), Max: center.Add(halfExtents)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extents returns the half size of the box on each axis.
func (b AABB) Extents() mgl32.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Instance is one draw of a built-in mesh.
type Instance struct {
	Mesh  MeshKind
	Model mgl32.Mat4
	Color Color
}
