package game_object

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/animation"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	enabled atomic.Bool

	position mgl32.Vec3
	scale    mgl32.Vec3
	rotation mgl32.Quat

	mesh        common.MeshKind
	color       common.Color
	halfExtents mgl32.Vec3

	selectable bool
	selected   bool

	mover animation.Mover
}

// GameObject defines the interface for a scene entity: a transform, a built-in mesh,
// a selection flag, and an optional Mover that drives its position.
// Thread-safe for concurrent access.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering and picking.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the object's world position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Scale returns the object's scale factors.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// Rotation returns the object's orientation.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	Rotation() mgl32.Quat

	// Mesh returns which built-in mesh draws this object.
	//
	// Returns:
	//   - common.MeshKind: the mesh kind
	Mesh() common.MeshKind

	// Color returns the object's base color.
	//
	// Returns:
	//   - common.Color: the RGBA color
	Color() common.Color

	// Selectable returns whether the object can be selected.
	//
	// Returns:
	//   - bool: true if selectable
	Selectable() bool

	// Selected returns whether the object is currently selected.
	//
	// Returns:
	//   - bool: true if selected
	Selected() bool

	// Mover returns the object's Mover, or nil.
	//
	// Returns:
	//   - animation.Mover: the mover or nil
	Mover() animation.Mover

	// Bounds returns the world-space bounding box: half extents scaled by Scale, centered on Position.
	// Rotation is ignored.
	//
	// Returns:
	//   - common.AABB: the bounding box
	Bounds() common.AABB

	// ModelMatrix returns the translate * rotate * scale matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the object without touching its Mover.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// SetScale sets the object's scale factors.
	//
	// Parameters:
	//   - s: the new scale
	SetScale(s mgl32.Vec3)

	// SetRotation sets the object's orientation.
	//
	// Parameters:
	//   - q: the new rotation
	SetRotation(q mgl32.Quat)

	// SetColor sets the object's base color.
	//
	// Parameters:
	//   - c: the RGBA color
	SetColor(c common.Color)

	// SetSelected marks the object selected. Ignored for objects that are not selectable.
	//
	// Parameters:
	//   - selected: the new selection state
	SetSelected(selected bool)

	// SetMover replaces the object's Mover. Pass nil to detach.
	//
	// Parameters:
	//   - m: the mover
	SetMover(m animation.Mover)

	// MoveTo sends the object toward target over duration. A MoveTo is retargeted and a Glide
	// restarts from the current position; any other (or no) Mover is replaced with a new MoveTo.
	//
	// Parameters:
	//   - target: the destination point
	//   - duration: time to arrive
	MoveTo(target mgl32.Vec3, duration time.Duration)

	// Animate advances the Mover against the object's position by one frame.
	//
	// Parameters:
	//   - elapsed: frame time
	//
	// Returns:
	//   - bool: true if the position changed
	Animate(elapsed time.Duration) bool
}

var (
	_ GameObject         = &gameObject{}
	_ animation.Animated = &gameObject{}
)

// NewGameObject creates a new enabled, selectable unit box at the origin configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:          &sync.Mutex{},
		scale:       mgl32.Vec3{1, 1, 1},
		rotation:    mgl32.QuatIdent(),
		mesh:        common.MeshBox,
		color:       common.ColorWhite,
		halfExtents: mgl32.Vec3{0.5, 0.5, 0.5},
		selectable:  true,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	if !obj.selectable {
		obj.selected = false
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) Scale() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) Rotation() mgl32.Quat {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) Mesh() common.MeshKind {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mesh
}

func (g *gameObject) Color() common.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.color
}

func (g *gameObject) Selectable() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectable
}

func (g *gameObject) Selected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selected
}

func (g *gameObject) Mover() animation.Mover {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mover
}

func (g *gameObject) Bounds() common.AABB {
	g.mu.Lock()
	defer g.mu.Unlock()
	half := mgl32.Vec3{
		g.halfExtents[0] * g.scale[0],
		g.halfExtents[1] * g.scale[1],
		g.halfExtents[2] * g.scale[2],
	}
	return common.NewAABB(g.position, half)
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	t := mgl32.Translate3D(g.position[0], g.position[1], g.position[2])
	s := mgl32.Scale3D(g.scale[0], g.scale[1], g.scale[2])
	return t.Mul4(g.rotation.Mat4()).Mul4(s)
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = p
}

func (g *gameObject) SetScale(s mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = s
}

func (g *gameObject) SetRotation(q mgl32.Quat) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = q.Normalize()
}

func (g *gameObject) SetColor(c common.Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.color = c
}

func (g *gameObject) SetSelected(selected bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.selectable {
		return
	}
	g.selected = selected
}

func (g *gameObject) SetMover(m animation.Mover) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mover = m
}

func (g *gameObject) MoveTo(target mgl32.Vec3, duration time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch m := g.mover.(type) {
	case *animation.MoveTo:
		m.SetTarget(target, duration)
	case *animation.Glide:
		m.SetTarget(g.position, target, duration, nil)
	default:
		g.mover = animation.NewMoveTo(target, duration)
	}
}

func (g *gameObject) Animate(elapsed time.Duration) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.mover == nil {
		return false
	}
	return g.mover.Advance(&g.position, elapsed)
}
