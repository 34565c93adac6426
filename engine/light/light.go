package light

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Defaults matching the demo scene: a white sun shining down at an angle and a
// 20% white ambient term.
var (
	DefaultDirection = mgl32.Vec3{-0.4, -1, -0.3}
	DefaultColor     = mgl32.Vec3{1, 1, 1}
	DefaultAmbient   = mgl32.Vec3{0.2, 0.2, 0.2}
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	direction mgl32.Vec3
	color     mgl32.Vec3
	intensity float32
	ambient   mgl32.Vec3
	enabled   bool
}

// Light is the scene's directional light plus its ambient term.
// Directional lights have no position; they affect all fragments uniformly with
// no distance attenuation. Thread-safe for concurrent access.
type Light interface {
	// Direction returns the normalized direction the light travels in.
	//
	// Returns:
	//   - mgl32.Vec3: unit direction
	Direction() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Ambient returns the ambient RGB term added to every lit fragment.
	//
	// Returns:
	//   - mgl32.Vec3: ambient color
	Ambient() mgl32.Vec3

	// Enabled returns whether the directional term contributes. The ambient term always does.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetDirection sets the light direction. Zero-length directions are ignored.
	//
	// Parameters:
	//   - dir: the new direction, normalized before storing
	SetDirection(dir mgl32.Vec3)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: color as (r, g, b)
	SetColor(c mgl32.Vec3)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetAmbient sets the ambient RGB term.
	//
	// Parameters:
	//   - ambient: ambient color
	SetAmbient(ambient mgl32.Vec3)

	// SetEnabled enables or disables the directional term.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Uniform returns the GPU representation of the light.
	//
	// Returns:
	//   - GPULightUniform: the light data ready for upload
	Uniform() GPULightUniform
}

var _ Light = &lightImpl{}

// NewLight creates a directional Light with the demo defaults.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		direction: common.NormalizeOrZero(DefaultDirection),
		color:     DefaultColor,
		intensity: 1.0,
		ambient:   DefaultAmbient,
		enabled:   true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction
}

func (l *lightImpl) Color() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Ambient() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ambient
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) SetDirection(dir mgl32.Vec3) {
	n := common.NormalizeOrZero(dir)
	if n == (mgl32.Vec3{}) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.direction = n
}

func (l *lightImpl) SetColor(c mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetAmbient(ambient mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ambient = ambient
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) Uniform() GPULightUniform {
	l.mu.Lock()
	defer l.mu.Unlock()
	var radiance mgl32.Vec3
	if l.enabled {
		radiance = l.color.Mul(l.intensity)
	}
	return GPULightUniform{
		Direction: [3]float32(l.direction),
		Radiance:  [3]float32(radiance),
		Ambient:   [3]float32(l.ambient),
	}
}
