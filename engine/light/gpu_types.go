package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightUniformSource is the WGSL definition matching GPULightUniform.
const GPULightUniformSource = `struct LightUniform {
    direction: vec3<f32>,
    _pad0: f32,
    radiance: vec3<f32>,
    _pad1: f32,
    ambient: vec3<f32>,
    _pad2: f32,
};
`

// GPULightUniform is the GPU-aligned representation of the scene light.
// Each vec3 is padded to 16 bytes. Size: 48 bytes.
type GPULightUniform struct {
	Direction [3]float32 // offset  0: normalized travel direction
	_pad0     float32    // offset 12
	Radiance  [3]float32 // offset 16: color * intensity, zero when disabled
	_pad1     float32    // offset 28
	Ambient   [3]float32 // offset 32: ambient RGB
	_pad2     float32    // offset 44
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a little-endian byte buffer for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	put := func(offset int, v [3]float32) {
		for i, f := range v {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(f))
		}
	}
	put(0, g.Direction)
	put(16, g.Radiance)
	put(32, g.Ambient)
	return buf
}
