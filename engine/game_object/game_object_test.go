package game_object

import (
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/animation"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	if !obj.Enabled() || !obj.Selectable() || obj.Selected() {
		t.Errorf("enabled=%v selectable=%v selected=%v", obj.Enabled(), obj.Selectable(), obj.Selected())
	}
	if obj.Scale() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("scale = %v", obj.Scale())
	}
	if obj.Mesh() != common.MeshBox || obj.Mover() != nil {
		t.Errorf("mesh = %v mover = %v", obj.Mesh(), obj.Mover())
	}
}

func TestGameObjectBounds(t *testing.T) {
	tests := []struct {
		name    string
		options []GameObjectBuilderOption
		want    common.AABB
	}{
		{
			name:    "unit box",
			options: []GameObjectBuilderOption{WithPosition(2, 0.5, 4)},
			want:    common.AABB{Min: mgl32.Vec3{1.5, 0, 3.5}, Max: mgl32.Vec3{2.5, 1, 4.5}},
		},
		{
			name:    "scaled",
			options: []GameObjectBuilderOption{WithScale(2, 4, 2)},
			want:    common.AABB{Min: mgl32.Vec3{-1, -2, -1}, Max: mgl32.Vec3{1, 2, 1}},
		},
		{
			name:    "plane is flat",
			options: []GameObjectBuilderOption{WithMesh(common.MeshPlane), WithScale(100, 1, 100)},
			want:    common.AABB{Min: mgl32.Vec3{-50, 0, -50}, Max: mgl32.Vec3{50, 0, 50}},
		},
		{
			name:    "custom extents",
			options: []GameObjectBuilderOption{WithHalfExtents(mgl32.Vec3{1, 1, 1})},
			want:    common.AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewGameObject(tt.options...).Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGameObjectSelection(t *testing.T) {
	obj := NewGameObject()
	obj.SetSelected(true)
	if !obj.Selected() {
		t.Errorf("object should be selected")
	}

	fixed := NewGameObject(WithSelectable(false), WithSelected(true))
	if fixed.Selected() {
		t.Errorf("unselectable object started selected")
	}
	fixed.SetSelected(true)
	if fixed.Selected() {
		t.Errorf("unselectable object became selected")
	}
}

func TestGameObjectMoveToCreatesMover(t *testing.T) {
	obj := NewGameObject()
	obj.MoveTo(mgl32.Vec3{10, 0, 0}, time.Second)

	m, ok := obj.Mover().(*animation.MoveTo)
	if !ok {
		t.Fatalf("mover = %T, want *animation.MoveTo", obj.Mover())
	}
	if !obj.Animate(500 * time.Millisecond) {
		t.Fatalf("Animate should report movement")
	}
	if obj.Position() != (mgl32.Vec3{5, 0, 0}) {
		t.Errorf("position = %v, want (5,0,0)", obj.Position())
	}

	obj.MoveTo(mgl32.Vec3{0, 0, 0}, 2*time.Second)
	if obj.Mover() != m || m.Remaining != 2*time.Second {
		t.Errorf("existing MoveTo should be retargeted in place")
	}
}

func TestGameObjectMoveToRestartsGlide(t *testing.T) {
	g := animation.NewGlide(nil)
	obj := NewGameObject(WithPosition(2, 0, 0), WithMover(g))
	obj.MoveTo(mgl32.Vec3{4, 0, 0}, time.Second)

	obj.Animate(500 * time.Millisecond)
	got := obj.Position()
	if got[0] < 2.99 || got[0] > 3.01 {
		t.Errorf("position = %v, want x = 3", got)
	}
}

func TestGameObjectAnimateWithoutMover(t *testing.T) {
	obj := NewGameObject(WithPosition(1, 2, 3))
	if obj.Animate(time.Second) || obj.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("object without a mover moved")
	}
}

func TestGameObjectModelMatrix(t *testing.T) {
	obj := NewGameObject(WithPosition(1, 2, 3), WithScale(2, 2, 2))
	m := obj.ModelMatrix()
	p := m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1})
	if !p.ApproxEqual(mgl32.Vec4{2, 2, 3, 1}) {
		t.Errorf("transformed point = %v, want (2,2,3,1)", p)
	}
}

func TestGameObjectConcurrentAnimateAndRead(t *testing.T) {
	obj := NewGameObject(WithMover(animation.NewMoveTo(mgl32.Vec3{10, 0, 0}, time.Second)))
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			obj.Animate(time.Millisecond)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = obj.Bounds()
			_ = obj.Position()
		}
	}()
	wg.Wait()
}
