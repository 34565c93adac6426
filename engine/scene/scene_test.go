package scene

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/animation"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func box(x, y, z float32, options ...game_object.GameObjectBuilderOption) game_object.GameObject {
	return game_object.NewGameObject(append([]game_object.GameObjectBuilderOption{game_object.WithPosition(x, y, z)}, options...)...)
}

func near(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-3 {
			return false
		}
	}
	return true
}

func orbitCamera() camera.Camera {
	return camera.NewCamera(camera.WithController(camera.NewController(camera.NewRig())))
}

func TestSceneRegistry(t *testing.T) {
	s := NewScene()
	a := s.Add(box(0, 0, 0))
	b := s.Add(box(1, 0, 0))
	c := s.Add(box(2, 0, 0, game_object.WithID(10)))

	if a != 1 || b != 2 || c != 10 {
		t.Errorf("ids = %d, %d, %d", a, b, c)
	}
	if d := s.Add(box(0, 0, 0)); d != 11 {
		t.Errorf("next id after explicit 10 = %d, want 11", d)
	}
	if s.Count() != 4 || s.Get(b) == nil {
		t.Fatalf("count = %d", s.Count())
	}

	objs := s.Objects()
	for i := 1; i < len(objs); i++ {
		if objs[i-1].ID() >= objs[i].ID() {
			t.Errorf("Objects not ordered by ID")
		}
	}

	s.Remove(b)
	if s.Get(b) != nil || s.Count() != 3 {
		t.Errorf("remove failed")
	}
	s.Clear()
	if s.Count() != 0 {
		t.Errorf("clear failed")
	}
	if s.Add(nil) != 0 {
		t.Errorf("adding nil should return 0")
	}
}

func TestSceneUpdateWithoutCamera(t *testing.T) {
	obj := box(0, 0, 0, game_object.WithMover(animation.NewMoveTo(mgl32.Vec3{10, 0, 0}, time.Second)))
	idle := box(5, 0, 5, game_object.WithMover(&animation.MoveTo{}))
	s := NewScene(WithObjects(obj, idle, box(1, 1, 1)))

	if moved := s.Update(0.5, input.State{}); moved != 1 {
		t.Errorf("moved = %d, want 1", moved)
	}
	if !near(obj.Position(), mgl32.Vec3{5, 0, 0}) {
		t.Errorf("position = %v, want (5,0,0)", obj.Position())
	}
	if moved := s.Update(0, input.State{}); moved != 0 {
		t.Errorf("zero elapsed moved %d", moved)
	}
}

func TestSceneUpdateRunsCamera(t *testing.T) {
	cam := orbitCamera()
	s := NewScene(WithCamera(cam))
	s.Update(1.0/60, new(input.Builder).Press(common.KeyZ).State())
	if yaw := cam.Controller().Rig().Yaw(); yaw != 135 {
		t.Errorf("yaw = %v, want 135", yaw)
	}

	s.SetCamera(nil)
	if s.Camera() != nil {
		t.Errorf("camera should be cleared")
	}
	s.Update(1.0/60, new(input.Builder).Press(common.KeyZ).State())
	if yaw := cam.Controller().Rig().Yaw(); yaw != 135 {
		t.Errorf("detached camera was updated, yaw = %v", yaw)
	}
}

func TestSceneUpdateWorkers(t *testing.T) {
	s := NewScene(WithUpdateWorkers(4))
	var objs []game_object.GameObject
	for i := 0; i < 37; i++ {
		obj := box(0, 0, float32(i), game_object.WithMover(animation.NewMoveTo(mgl32.Vec3{8, 0, float32(i)}, time.Second)))
		objs = append(objs, obj)
		s.Add(obj)
	}

	if moved := s.Update(0.25, input.State{}); moved != 37 {
		t.Errorf("moved = %d, want 37", moved)
	}
	for _, obj := range objs {
		if !near(obj.Position(), mgl32.Vec3{2, 0, obj.Position()[2]}) {
			t.Fatalf("object %d at %v, want x = 2", obj.ID(), obj.Position())
		}
	}

	for i := 0; i < 3; i++ {
		s.Update(0.25, input.State{})
	}
	for _, obj := range objs {
		if obj.Position()[0] != 8 || obj.Mover().Active() {
			t.Fatalf("object %d at %v, want arrived at x = 8", obj.ID(), obj.Position())
		}
	}
}

func TestSceneSelection(t *testing.T) {
	s := NewScene()
	a := s.Add(box(0, 0, 0))
	b := s.Add(box(1, 0, 0))
	ground := s.Add(box(0, 0, 0, game_object.WithSelectable(false)))

	s.Select(a)
	if sel := s.Selected(); len(sel) != 1 || sel[0].ID() != a {
		t.Fatalf("selected = %v", sel)
	}
	s.ToggleSelect(b)
	if len(s.Selected()) != 2 {
		t.Errorf("toggle should add to the selection")
	}
	s.ToggleSelect(a)
	if sel := s.Selected(); len(sel) != 1 || sel[0].ID() != b {
		t.Errorf("toggle should remove from the selection")
	}
	s.Select(ground)
	if len(s.Selected()) != 0 {
		t.Errorf("selecting an unselectable object should clear the selection")
	}
	s.Select(b)
	s.ClearSelection()
	if len(s.Selected()) != 0 {
		t.Errorf("ClearSelection left objects selected")
	}
}

func TestScenePickObjectNearest(t *testing.T) {
	s := NewScene()
	far := s.Add(box(0, 0.5, 4))
	nearID := s.Add(box(0, 0.5, 0))
	s.Add(box(0, 0.5, -3, game_object.WithEnabled(false)))
	s.Add(box(0, 0.5, -1, game_object.WithSelectable(false)))

	ray := common.Ray{Origin: mgl32.Vec3{0, 0.5, -10}, Direction: mgl32.Vec3{0, 0, 1}}
	obj, dist := s.PickObject(ray)
	if obj == nil || obj.ID() != nearID {
		t.Fatalf("picked %v, want object %d", obj, nearID)
	}
	if math.Abs(float64(dist-9.5)) > 1e-4 {
		t.Errorf("distance = %v, want 9.5", dist)
	}

	ray.Origin = mgl32.Vec3{0, 0.5, 2}
	if obj, _ := s.PickObject(ray); obj == nil || obj.ID() != far {
		t.Errorf("picked %v, want object %d", obj, far)
	}

	ray.Direction = mgl32.Vec3{0, 1, 0}
	if obj, _ := s.PickObject(ray); obj != nil {
		t.Errorf("ray pointing up should miss, got %d", obj.ID())
	}
}

func TestScenePickGround(t *testing.T) {
	s := NewScene(WithGroundHeight(1))
	ray := common.Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, -1, 0}}
	hit, ok := s.PickGround(ray)
	if !ok || !near(hit, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("hit = %v ok = %v", hit, ok)
	}
	ray.Direction = mgl32.Vec3{1, 0, 0}
	if _, ok := s.PickGround(ray); ok {
		t.Errorf("horizontal ray should miss the ground")
	}
}

func TestSceneMoveSelectedTo(t *testing.T) {
	s := NewScene()
	a := s.Add(box(0, 0.5, 0))
	b := s.Add(box(4, 0.5, 0))
	s.Select(a)

	target := mgl32.Vec3{3, 0.5, 3}
	if n := s.MoveSelectedTo(target, 2*time.Second); n != 1 {
		t.Fatalf("commanded %d objects, want 1", n)
	}
	for i := 0; i < 4; i++ {
		s.Update(0.5, input.State{})
	}
	if got := s.Get(a).Position(); got != target {
		t.Errorf("selected object at %v, want exactly %v", got, target)
	}
	if got := s.Get(b).Position(); got != (mgl32.Vec3{4, 0.5, 0}) {
		t.Errorf("unselected object moved to %v", got)
	}
}

func TestSceneHandleClicks(t *testing.T) {
	s := NewScene(WithCamera(orbitCamera()))
	center := s.Add(box(0, 0.5, 0))
	other := s.Add(box(20, 0.5, 20))

	click := func(btn common.MouseButton, keys ...common.Key) input.State {
		return new(input.Builder).Cursor(400, 300).Click(btn).Hold(keys...).State()
	}

	// The default rig looks straight at the origin, so the center pixel lands on the box there.
	s.HandleClicks(click(common.MouseButtonLeft), 800, 600)
	if sel := s.Selected(); len(sel) != 1 || sel[0].ID() != center {
		t.Fatalf("selected = %v, want object %d", sel, center)
	}

	// Shift-click toggles; the center box is deselected.
	s.HandleClicks(click(common.MouseButtonLeft, common.KeyLeftShift), 800, 600)
	if len(s.Selected()) != 0 {
		t.Fatalf("shift-click should deselect")
	}

	s.Select(other)
	s.HandleClicks(click(common.MouseButtonRight), 800, 600)
	mover, ok := s.Get(other).Mover().(*animation.MoveTo)
	if !ok {
		t.Fatalf("right click should give the selection a MoveTo, got %T", s.Get(other).Mover())
	}
	if !near(mover.Target, mgl32.Vec3{0, 0.5, 0}) || mover.Remaining != DefaultMoveDuration {
		t.Errorf("target = %v remaining = %v", mover.Target, mover.Remaining)
	}

	// Clicking empty sky clears the selection.
	s.HandleClicks(new(input.Builder).Cursor(400, 0).Click(common.MouseButtonLeft).State(), 800, 600)
	if len(s.Selected()) != 0 {
		t.Errorf("clicking empty space should clear the selection")
	}
}

func TestSceneHandleClicksWithoutCamera(t *testing.T) {
	s := NewScene()
	id := s.Add(box(0, 0.5, 0))
	s.Select(id)
	s.HandleClicks(new(input.Builder).Click(common.MouseButtonLeft).State(), 800, 600)
	if len(s.Selected()) != 1 {
		t.Errorf("clicks without a camera should be ignored")
	}
}

func TestSceneDrawList(t *testing.T) {
	s := NewScene(WithCamera(orbitCamera()))
	a := s.Add(box(0, 0.5, 0, game_object.WithColor(common.ColorBox)))
	s.Add(box(1, 0.5, 0, game_object.WithEnabled(false)))
	s.Add(box(40, 0.5, 40)) // behind the camera
	s.Select(a)

	list := s.DrawList()
	if len(list) != 1 {
		t.Fatalf("draw list has %d instances, want 1", len(list))
	}
	if list[0].Color != common.ColorHighlight {
		t.Errorf("selected object color = %v, want highlight", list[0].Color)
	}
	if list[0].Model != s.Get(a).ModelMatrix() {
		t.Errorf("instance model matrix does not match the object")
	}

	s.SetCullingDisabled(true)
	if got := len(s.DrawList()); got != 2 {
		t.Errorf("with culling disabled draw list has %d instances, want 2", got)
	}
}

func TestPopulate(t *testing.T) {
	s := NewScene()
	ids := Populate(s, DefaultGridLayout())
	if len(ids) != 25 || s.Count() != 26 {
		t.Fatalf("boxes = %d, objects = %d", len(ids), s.Count())
	}
	last := s.Get(ids[len(ids)-1])
	if last.Position() != (mgl32.Vec3{8, 0.5, 8}) {
		t.Errorf("last box at %v, want (8,0.5,8)", last.Position())
	}
	if last.Mover() == nil || last.Mover().Active() {
		t.Errorf("boxes should start with an idle mover")
	}
}
