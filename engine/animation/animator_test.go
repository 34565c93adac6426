package animation

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAnimate(t *testing.T) {
	moving := &Body{Mover: NewMoveTo(mgl32.Vec3{4, 0, 0}, time.Second)}
	idle := &Body{Position: mgl32.Vec3{1, 1, 1}, Mover: &MoveTo{}}
	bare := &Body{Position: mgl32.Vec3{2, 2, 2}}

	items := []Animated{moving, idle, bare, nil}
	if got := Animate(items, 250*time.Millisecond); got != 1 {
		t.Errorf("moved = %d, want 1", got)
	}
	if !approxVec3(moving.Position, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("moving position = %v, want (1,0,0)", moving.Position)
	}
	if idle.Position != (mgl32.Vec3{1, 1, 1}) || bare.Position != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("idle bodies moved")
	}
}

func TestAnimateEmptyAndZeroElapsed(t *testing.T) {
	if got := Animate(nil, time.Second); got != 0 {
		t.Errorf("empty list moved %d", got)
	}
	b := &Body{Mover: NewMoveTo(mgl32.Vec3{4, 0, 0}, time.Second)}
	if got := Animate([]Animated{b}, 0); got != 0 || b.Position != (mgl32.Vec3{}) {
		t.Errorf("zero elapsed moved %d, position %v", got, b.Position)
	}
}
