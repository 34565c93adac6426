package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/light"
	"github.com/Carmen-Shannon/oxy-rig/engine/window"
)

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Camera    camera.GPUCameraUniform
	Light     light.GPULightUniform
	Instances []common.Instance
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           common.Color
}

// Renderer draws lit, instanced boxes and planes into the window surface.
//
// Each call to Render uploads the camera and light uniforms and the frame's instances,
// then clears, draws one instanced call per mesh and presents.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// A zero size (minimized window) is ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Render draws one frame.
	//
	// Parameters:
	//   - frame: uniforms and draw list
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	Render(frame Frame) error

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer drawing into the given window's surface.
// Panics if the GPU device or pipeline cannot be created.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - w: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  common.Color{0.1, 0.1, 0.1, 1},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, r.clearColor)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(w.Width(), w.Height())
	if err := r.backend.InitScene(); err != nil {
		panic(fmt.Sprintf("failed to initialize scene pipeline: %v", err))
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Render(frame Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, batches := PackInstances(frame.Instances)
	b := r.backend
	if err := b.WriteUniforms(frame.Camera.Marshal(), frame.Light.Marshal()); err != nil {
		return err
	}
	if err := b.WriteInstances(data); err != nil {
		return err
	}

	if err := b.BeginFrame(); err != nil {
		return err
	}
	for _, batch := range batches {
		b.DrawBatch(batch)
	}
	b.EndFrame()
	b.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
