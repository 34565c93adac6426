package scene

import (
	"time"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rig/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCamera sets the scene's active camera.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithLight sets the scene's light.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		if l != nil {
			s.lgt = l
		}
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj != nil {
				s.addLocked(obj)
			}
		}
	}
}

// WithGroundHeight sets the Y coordinate of the ground plane used for click-to-move.
//
// Parameters:
//   - y: the ground height
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGroundHeight(y float32) SceneBuilderOption {
	return func(s *scene) {
		s.groundHeight = y
	}
}

// WithRestHeight sets how far above the ground click-to-move targets are placed.
// Defaults to 0.5, the half height of a unit box.
//
// Parameters:
//   - h: height above the ground
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRestHeight(h float32) SceneBuilderOption {
	return func(s *scene) {
		s.restHeight = h
	}
}

// WithMoveDuration sets how long click-to-move movements take. Defaults to 2s.
//
// Parameters:
//   - d: the move duration
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMoveDuration(d time.Duration) SceneBuilderOption {
	return func(s *scene) {
		s.moveDuration = d
	}
}

// WithUpdateWorkers sets the number of worker goroutines used by the move-to system
// in Update. The default of 1 runs it on the calling goroutine; higher values only pay
// off with many moving objects.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUpdateWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.updateWorkers = n
	}
}

// WithCullingDisabled disables frustum culling in DrawList.
// By default culling is enabled (disabled = false).
//
// Parameters:
//   - disabled: true to disable frustum culling, false to enable it (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}
