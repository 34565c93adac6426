package game_object

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/animation"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject. Scenes assign IDs to objects added with ID 0.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering and picking.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl32.Vec3{x, y, z}
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithRotation sets the initial orientation of the GameObject.
//
// Parameters:
//   - q: the rotation
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(q mgl32.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = q.Normalize()
	}
}

// WithMesh selects the built-in mesh used to draw the GameObject.
// Planes get flat bounds so that they do not swallow picks meant for objects resting on them.
//
// Parameters:
//   - mesh: the mesh kind
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mesh
func WithMesh(mesh common.MeshKind) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mesh = mesh
		if mesh == common.MeshPlane {
			obj.halfExtents = mgl32.Vec3{0.5, 0, 0.5}
		}
	}
}

// WithColor sets the base color of the GameObject.
//
// Parameters:
//   - c: the RGBA color
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the color
func WithColor(c common.Color) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.color = c
	}
}

// WithHalfExtents overrides the unscaled half size used for picking bounds.
//
// Parameters:
//   - half: half size on each axis before scaling
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the half extents
func WithHalfExtents(half mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.halfExtents = half
	}
}

// WithSelectable sets whether the GameObject can be selected.
//
// Parameters:
//   - selectable: false to exclude the object from selection
//
// Returns:
//   - GameObjectBuilderOption: functional option to set selectability
func WithSelectable(selectable bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.selectable = selectable
	}
}

// WithSelected sets the initial selection state.
//
// Parameters:
//   - selected: true to start selected
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the selection
func WithSelected(selected bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.selected = selected
	}
}

// WithMover attaches a Mover that drives the GameObject's position.
//
// Parameters:
//   - m: the mover
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mover
func WithMover(m animation.Mover) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mover = m
	}
}
