package renderer

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one mesh vertex as laid out in the vertex buffer.
type Vertex struct {
	Position [3]float32 // location 0
	Normal   [3]float32 // location 1
}

const (
	// vertexStride is the byte size of one Vertex.
	vertexStride = 24

	// instanceStride is the byte size of one GPUInstance.
	instanceStride = 80
)

// GPUInstance is the per-instance vertex data: the model matrix as four columns
// (locations 2 to 5) followed by the RGBA color (location 6).
type GPUInstance struct {
	Model [16]float32
	Color [4]float32
}

// Batch is a contiguous run of packed instances sharing one mesh.
type Batch struct {
	Mesh  common.MeshKind
	First uint32
	Count uint32
}

// face describes one side of the box: its outward normal and two in-plane axes
// ordered so that u x v == normal, which keeps the winding counter-clockwise.
type face struct {
	normal, u, v mgl32.Vec3
}

var boxFaces = [6]face{
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{1, 0, 0}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{1, 0, 0}},
}

// appendQuad appends the four corners and two triangles of a unit quad centered at
// center and spanned by f.u and f.v.
func appendQuad(verts []Vertex, indices []uint32, center mgl32.Vec3, f face) ([]Vertex, []uint32) {
	base := uint32(len(verts))
	u, v := f.u.Mul(0.5), f.v.Mul(0.5)
	corners := [4]mgl32.Vec3{
		center.Sub(u).Sub(v),
		center.Add(u).Sub(v),
		center.Add(u).Add(v),
		center.Sub(u).Add(v),
	}
	for _, c := range corners {
		verts = append(verts, Vertex{Position: [3]float32(c), Normal: [3]float32(f.normal)})
	}
	indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	return verts, indices
}

// BoxMesh returns a unit cube centered on the origin with one flat-shaded quad per side.
//
// Returns:
//   - []Vertex: 24 vertices
//   - []uint32: 36 indices, counter-clockwise front faces
func BoxMesh() ([]Vertex, []uint32) {
	verts := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range boxFaces {
		verts, indices = appendQuad(verts, indices, f.normal.Mul(0.5), f)
	}
	return verts, indices
}

// PlaneMesh returns a unit square in the XZ plane centered on the origin, facing +Y.
//
// Returns:
//   - []Vertex: 4 vertices
//   - []uint32: 6 indices
func PlaneMesh() ([]Vertex, []uint32) {
	return appendQuad(nil, nil, mgl32.Vec3{}, boxFaces[2])
}

// MeshData returns the geometry for a mesh kind. Unknown kinds fall back to the box.
func MeshData(kind common.MeshKind) ([]Vertex, []uint32) {
	if kind == common.MeshPlane {
		return PlaneMesh()
	}
	return BoxMesh()
}

// VertexBytes serializes vertices into a little-endian buffer for GPU upload.
func VertexBytes(verts []Vertex) []byte {
	buf := make([]byte, len(verts)*vertexStride)
	for i, v := range verts {
		off := i * vertexStride
		putFloats(buf[off:], v.Position[:])
		putFloats(buf[off+12:], v.Normal[:])
	}
	return buf
}

// IndexBytes serializes 32-bit indices into a little-endian buffer for GPU upload.
func IndexBytes(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// PackInstances groups instances by mesh and serializes them into one instance buffer.
// Instances keep their relative order within a mesh group.
//
// Parameters:
//   - instances: the draw list
//
// Returns:
//   - []byte: the packed GPUInstance data
//   - []Batch: one batch per mesh kind present, in mesh kind order
func PackInstances(instances []common.Instance) ([]byte, []Batch) {
	buf := make([]byte, len(instances)*instanceStride)
	var batches []Batch
	n := 0
	for _, kind := range []common.MeshKind{common.MeshBox, common.MeshPlane} {
		first := n
		for _, inst := range instances {
			if meshOrBox(inst.Mesh) != kind {
				continue
			}
			gi := GPUInstance{Model: [16]float32(inst.Model), Color: [4]float32(inst.Color)}
			gi.put(buf[n*instanceStride:])
			n++
		}
		if n > first {
			batches = append(batches, Batch{Mesh: kind, First: uint32(first), Count: uint32(n - first)})
		}
	}
	return buf, batches
}

func meshOrBox(kind common.MeshKind) common.MeshKind {
	if kind == common.MeshPlane {
		return common.MeshPlane
	}
	return common.MeshBox
}

func (g GPUInstance) put(buf []byte) {
	putFloats(buf, g.Model[:])
	putFloats(buf[64:], g.Color[:])
}

func putFloats(buf []byte, vals []float32) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
