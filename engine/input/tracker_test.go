package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestTrackerJustPressedLastsOneFrame(t *testing.T) {
	tr := NewTracker(0)
	tr.KeyDown(common.KeyZ)

	first := tr.Frame()
	if !first.Pressed(common.KeyZ) || !first.JustPressed(common.KeyZ) {
		t.Fatalf("first frame: pressed=%v just=%v, want both true", first.Pressed(common.KeyZ), first.JustPressed(common.KeyZ))
	}

	second := tr.Frame()
	if !second.Pressed(common.KeyZ) {
		t.Errorf("second frame: key should still be held")
	}
	if second.JustPressed(common.KeyZ) {
		t.Errorf("second frame: just-pressed edge should be consumed")
	}

	tr.KeyUp(common.KeyZ)
	if tr.Frame().Pressed(common.KeyZ) {
		t.Errorf("key should be released")
	}
}

func TestTrackerRepeatDoesNotRetrigger(t *testing.T) {
	tr := NewTracker(0)
	tr.KeyDown(common.KeyX)
	_ = tr.Frame()
	tr.KeyDown(common.KeyX) // auto-repeat
	if tr.Frame().JustPressed(common.KeyX) {
		t.Errorf("auto-repeat should not produce a new edge")
	}
}

func TestTrackerButtons(t *testing.T) {
	tr := NewTracker(0)
	tr.ButtonDown(common.MouseButtonRight)
	s := tr.Frame()
	if !s.ButtonPressed(common.MouseButtonRight) || !s.ButtonJustPressed(common.MouseButtonRight) {
		t.Fatalf("right button should be pressed and just pressed")
	}
	tr.ButtonUp(common.MouseButtonRight)
	s = tr.Frame()
	if s.ButtonPressed(common.MouseButtonRight) || s.ButtonJustPressed(common.MouseButtonRight) {
		t.Errorf("right button should be released")
	}
}

func TestTrackerMotionQueue(t *testing.T) {
	tr := NewTracker(0)
	tr.CursorMoved(100, 100) // seeds only
	tr.CursorMoved(110, 95)
	tr.CursorMoved(110, 95) // no movement, not queued
	tr.CursorMoved(115, 90)

	s := tr.Frame()
	want := []mgl32.Vec2{{10, -5}, {5, -5}}
	got := s.MouseMotion()
	if len(got) != len(want) {
		t.Fatalf("motion len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("motion[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if d := s.DragDelta(); d != (mgl32.Vec2{15, -10}) {
		t.Errorf("DragDelta = %v, want [15 -10]", d)
	}
	if c := s.Cursor(); c != (mgl32.Vec2{115, 90}) {
		t.Errorf("Cursor = %v, want [115 90]", c)
	}

	if next := tr.Frame(); len(next.MouseMotion()) != 0 {
		t.Errorf("motion should be consumed, got %v", next.MouseMotion())
	}
	// the snapshot keeps its own copy after the tracker queue is reused
	tr.CursorMoved(200, 200)
	if got[0] != want[0] {
		t.Errorf("snapshot motion mutated: %v", got[0])
	}
}

func TestTrackerMotionCapacityDropsOldest(t *testing.T) {
	tr := NewTracker(2)
	tr.CursorMoved(0, 0)
	tr.CursorMoved(1, 0)
	tr.CursorMoved(3, 0)
	tr.CursorMoved(6, 0)

	got := tr.Frame().MouseMotion()
	want := []mgl32.Vec2{{2, 0}, {3, 0}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("motion = %v, want %v", got, want)
	}
}

func TestTrackerOutOfRangeCodesIgnored(t *testing.T) {
	tr := NewTracker(0)
	tr.KeyDown(common.MaxKey + 10)
	tr.ButtonDown(common.MaxMouseButton + 1)
	s := tr.Frame()
	if s.Pressed(common.MaxKey+10) || s.ButtonPressed(common.MaxMouseButton+1) {
		t.Errorf("out-of-range codes should be ignored")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(0)
	tr.KeyDown(common.KeyW)
	tr.ButtonDown(common.MouseButtonLeft)
	tr.CursorMoved(5, 5)
	tr.CursorMoved(8, 5)
	tr.Reset()

	s := tr.Frame()
	if s.Pressed(common.KeyW) || s.ButtonPressed(common.MouseButtonLeft) || len(s.MouseMotion()) != 0 {
		t.Errorf("reset should clear held state and motion")
	}
	if s.Cursor() != (mgl32.Vec2{8, 5}) {
		t.Errorf("reset should keep the cursor position, got %v", s.Cursor())
	}
}

func TestTrackerConcurrentProducers(t *testing.T) {
	tr := NewTracker(0)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			tr.CursorMoved(float32(i), 0)
			tr.KeyDown(common.KeyW)
			tr.KeyUp(common.KeyW)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = tr.Frame()
		}
	}()
	wg.Wait()
}

func TestBuilder(t *testing.T) {
	var b Builder
	s := b.Press(common.KeyZ).Hold(common.KeyW).Click(common.MouseButtonLeft).Move(1, 2).Move(3, 4).Cursor(7, 8).State()

	if !s.JustPressed(common.KeyZ) || !s.Pressed(common.KeyW) || s.JustPressed(common.KeyW) {
		t.Errorf("unexpected key state")
	}
	if !s.ButtonJustPressed(common.MouseButtonLeft) {
		t.Errorf("left click missing")
	}
	if !s.AnyPressed(common.KeyA, common.KeyW) || s.AnyPressed(common.KeyA) {
		t.Errorf("AnyPressed mismatch")
	}
	if s.DragDelta() != (mgl32.Vec2{4, 6}) {
		t.Errorf("DragDelta = %v", s.DragDelta())
	}
}
