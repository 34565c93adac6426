package renderer

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/light"
)

//go:embed assets/scene.wgsl
var sceneShaderBody string

const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// SceneShaderSource returns the WGSL module for the lit instanced pipeline: the camera
// and light uniform structs followed by the vertex and fragment stages.
//
// Returns:
//   - string: the complete WGSL source
func SceneShaderSource() string {
	return camera.GPUCameraUniformSource + "\n" + light.GPULightUniformSource + "\n" + sceneShaderBody
}
