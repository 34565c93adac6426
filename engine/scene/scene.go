package scene

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/animation"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMoveDuration is how long a right-click move takes.
const DefaultMoveDuration = 2 * time.Second

// Scene manages a registry of GameObjects, an optional active Camera, and the scene light.
// Each frame Update runs the camera controller and the move-to system; the click glue
// turns mouse clicks into selection changes and move commands.
// Scenes can be hot-swapped via the Active flag to switch between different views.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera, or nil.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera. Pass nil to run without one.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Light returns the scene's light.
	Light() light.Light

	// SetLight replaces the scene's light. A nil light restores the defaults.
	//
	// Parameters:
	//   - l: the new light
	SetLight(l light.Light)

	// GroundHeight returns the Y coordinate of the ground plane used by PickGround.
	GroundHeight() float32

	// Count returns the number of GameObjects in the registry.
	//
	// Returns:
	//   - int: count of registered GameObjects
	Count() int

	// Add adds a GameObject to the registry, assigning an ID if it has none.
	// Adding an object whose ID is already registered replaces the old object.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene.
	Clear()

	// Objects returns the registered objects ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: snapshot of the registry
	Objects() []game_object.GameObject

	// Update advances the scene by one frame:
	//  1. the camera, if any, applies input and advances its rig
	//  2. every object with a Mover advances toward its target
	// The two steps touch disjoint state.
	//
	// Parameters:
	//   - elapsed: frame time in seconds
	//   - state: the frame's input snapshot
	//
	// Returns:
	//   - int: the number of objects that moved
	Update(elapsed float32, state input.State) int

	// Select makes id the only selected object. An unknown or unselectable id clears the selection.
	//
	// Parameters:
	//   - id: the object to select
	Select(id uint64)

	// ToggleSelect flips the selection state of one object, leaving the others alone.
	//
	// Parameters:
	//   - id: the object to toggle
	ToggleSelect(id uint64)

	// ClearSelection deselects every object.
	ClearSelection()

	// Selected returns the selected objects ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: the selection
	Selected() []game_object.GameObject

	// PickObject finds the nearest enabled, selectable object whose bounds the ray hits.
	//
	// Parameters:
	//   - ray: the world-space ray
	//
	// Returns:
	//   - game_object.GameObject: the hit object, or nil
	//   - float32: distance along the ray
	PickObject(ray common.Ray) (game_object.GameObject, float32)

	// PickGround intersects the ray with the ground plane.
	//
	// Parameters:
	//   - ray: the world-space ray
	//
	// Returns:
	//   - mgl32.Vec3: the hit point
	//   - bool: true if the ray hits the ground in front of its origin
	PickGround(ray common.Ray) (mgl32.Vec3, bool)

	// MoveSelectedTo sends every selected object toward point over duration.
	// Movements already in progress are overwritten.
	//
	// Parameters:
	//   - point: the destination
	//   - duration: time to arrive
	//
	// Returns:
	//   - int: the number of objects commanded
	MoveSelectedTo(point mgl32.Vec3, duration time.Duration) int

	// HandleClicks applies the frame's mouse clicks: a left click selects the object under
	// the cursor (shift toggles, empty space clears), a right click sends the selection to
	// the ground point under the cursor. Requires a camera; does nothing without one.
	//
	// Parameters:
	//   - state: the frame's input snapshot
	//   - width, height: framebuffer size in pixels
	HandleClicks(state input.State, width, height float32)

	// DrawList returns one instance per enabled object, with selected objects highlighted.
	// Objects outside the camera frustum are skipped unless culling is disabled.
	//
	// Returns:
	//   - []common.Instance: the instances to draw
	DrawList() []common.Instance

	// CullingDisabled returns whether frustum culling is disabled for DrawList.
	CullingDisabled() bool

	// SetCullingDisabled enables or disables frustum culling for DrawList.
	//
	// Parameters:
	//   - disabled: true to disable culling
	SetCullingDisabled(disabled bool)
}

type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	cam camera.Camera
	lgt light.Light

	registry map[uint64]game_object.GameObject
	nextID   uint64

	groundHeight    float32
	restHeight      float32
	moveDuration    time.Duration
	cullingDisabled bool

	// updateWorkers > 1 splits the move-to system across a worker pool. The pool is
	// created on first use so sequential scenes never start goroutines.
	updateWorkers int
	updatePool    worker.DynamicWorkerPool
	poolStarted   bool
}

var _ Scene = &scene{}

// NewScene creates an active Scene with no camera, the default light, and the ground at y = 0.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:            &sync.Mutex{},
		active:        true,
		lgt:           light.NewLight(),
		registry:      make(map[uint64]game_object.GameObject),
		nextID:        1,
		restHeight:    0.5,
		moveDuration:  DefaultMoveDuration,
		updateWorkers: 1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// --- internal helpers ---

// addLocked registers obj. Caller must hold the mutex.
func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	id := obj.ID()
	if id == 0 {
		id = s.nextID
		obj.SetID(id)
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.registry[id] = obj
	return id
}

// snapshot returns the registry ordered by ID. Caller must hold the mutex.
func (s *scene) snapshot() []game_object.GameObject {
	objs := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		objs = append(objs, obj)
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID() < objs[j].ID() })
	return objs
}

// animate runs the move-to system over objs, splitting it across the worker pool when
// more than one worker is configured.
func (s *scene) animate(objs []game_object.GameObject, elapsed time.Duration) int {
	items := make([]animation.Animated, 0, len(objs))
	for _, obj := range objs {
		if obj.Mover() != nil {
			items = append(items, obj)
		}
	}
	if len(items) == 0 {
		return 0
	}

	s.mu.Lock()
	workers := s.updateWorkers
	if workers > 1 && !s.poolStarted {
		// Queue size of 256 leaves headroom over the one task per worker submitted each frame.
		s.updatePool = worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)
		s.poolStarted = true
	}
	pool := s.updatePool
	s.mu.Unlock()

	if workers <= 1 || len(items) < 2 {
		return animation.Animate(items, elapsed)
	}

	// Workers are reused across frames; the WaitGroup is the per-frame barrier.
	batch := (len(items) + workers - 1) / workers
	moved := make([]int, 0, workers)
	var wg sync.WaitGroup
	var movedMu sync.Mutex
	for id, start := 0, 0; start < len(items); id, start = id+1, start+batch {
		end := min(start+batch, len(items))
		chunk := items[start:end]
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				n := animation.Animate(chunk, elapsed)
				movedMu.Lock()
				moved = append(moved, n)
				movedMu.Unlock()
				return nil, nil
			},
		})
	}
	wg.Wait()

	total := 0
	for _, n := range moved {
		total += n
	}
	return total
}

// --- Scene implementation ---

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Light() light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lgt
}

func (s *scene) SetLight(l light.Light) {
	if l == nil {
		l = light.NewLight()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lgt = l
}

func (s *scene) GroundHeight() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groundHeight
}

func (s *scene) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if obj == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *scene) Update(elapsed float32, state input.State) int {
	s.mu.Lock()
	cam := s.cam
	objs := s.snapshot()
	s.mu.Unlock()

	if cam != nil {
		cam.Update(elapsed, state)
	}

	if elapsed <= 0 {
		return 0
	}
	return s.animate(objs, time.Duration(float64(elapsed)*float64(time.Second)))
}

func (s *scene) Select(id uint64) {
	s.mu.Lock()
	objs := s.snapshot()
	s.mu.Unlock()

	for _, obj := range objs {
		obj.SetSelected(obj.ID() == id)
	}
}

func (s *scene) ToggleSelect(id uint64) {
	if obj := s.Get(id); obj != nil {
		obj.SetSelected(!obj.Selected())
	}
}

func (s *scene) ClearSelection() {
	for _, obj := range s.Objects() {
		obj.SetSelected(false)
	}
}

func (s *scene) Selected() []game_object.GameObject {
	var selected []game_object.GameObject
	for _, obj := range s.Objects() {
		if obj.Selected() {
			selected = append(selected, obj)
		}
	}
	return selected
}

func (s *scene) PickObject(ray common.Ray) (game_object.GameObject, float32) {
	var (
		best     game_object.GameObject
		bestDist float32
	)
	for _, obj := range s.Objects() {
		if !obj.Enabled() || !obj.Selectable() {
			continue
		}
		b := obj.Bounds()
		dist, ok := ray.IntersectAABB(b.Min, b.Max)
		if !ok {
			continue
		}
		if best == nil || dist < bestDist {
			best, bestDist = obj, dist
		}
	}
	return best, bestDist
}

func (s *scene) PickGround(ray common.Ray) (mgl32.Vec3, bool) {
	hit, _, ok := ray.IntersectGround(s.GroundHeight())
	return hit, ok
}

func (s *scene) MoveSelectedTo(point mgl32.Vec3, duration time.Duration) int {
	n := 0
	for _, obj := range s.Selected() {
		obj.MoveTo(point, duration)
		n++
	}
	return n
}

func (s *scene) HandleClicks(state input.State, width, height float32) {
	left := state.ButtonJustPressed(common.MouseButtonLeft)
	right := state.ButtonJustPressed(common.MouseButtonRight)
	if !left && !right {
		return
	}

	s.mu.Lock()
	cam := s.cam
	rest := s.restHeight
	duration := s.moveDuration
	s.mu.Unlock()
	if cam == nil {
		return
	}

	cursor := state.Cursor()
	ray := cam.ScreenRay(cursor[0], cursor[1], width, height)

	if left {
		obj, _ := s.PickObject(ray)
		switch {
		case obj == nil:
			s.ClearSelection()
		case state.AnyPressed(common.KeyLeftShift, common.KeyRightShift):
			s.ToggleSelect(obj.ID())
		default:
			s.Select(obj.ID())
		}
	}

	if right {
		hit, ok := s.PickGround(ray)
		if !ok {
			return
		}
		// Objects rest on the ground instead of sinking their center into it.
		target := hit.Add(mgl32.Vec3{0, rest, 0})
		if n := s.MoveSelectedTo(target, duration); n > 0 {
			log.Printf("[Scene] moving %d object(s) to (%.2f, %.2f, %.2f)", n, target[0], target[1], target[2])
		}
	}
}

func (s *scene) DrawList() []common.Instance {
	s.mu.Lock()
	cam := s.cam
	culling := !s.cullingDisabled
	objs := s.snapshot()
	s.mu.Unlock()

	var frustum *common.Frustum
	if culling && cam != nil {
		f := common.ExtractFrustum(cam.ViewProjectionMatrix())
		frustum = &f
	}

	instances := make([]common.Instance, 0, len(objs))
	for _, obj := range objs {
		if !obj.Enabled() {
			continue
		}
		if frustum != nil && !frustum.IntersectsAABB(obj.Bounds()) {
			continue
		}
		color := obj.Color()
		if obj.Selected() {
			color = common.ColorHighlight
		}
		instances = append(instances, common.Instance{
			Mesh:  obj.Mesh(),
			Model: obj.ModelMatrix(),
			Color: color,
		})
	}
	return instances
}

func (s *scene) CullingDisabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}
