package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func flyController(options ...ControllerOption) Controller {
	rig := NewRig(WithMode(ModeFly), WithYawPitch(0, 0), WithPositionSmoothing(0), WithRotationSmoothing(0))
	return NewController(rig, options...)
}

func TestControllerRotateKeys(t *testing.T) {
	tests := []struct {
		name    string
		state   input.State
		wantYaw float32
	}{
		{"right key", new(input.Builder).Press(common.KeyZ).State(), 135},
		{"left key", new(input.Builder).Press(common.KeyX).State(), 315},
		{"both keys left wins", new(input.Builder).Press(common.KeyX, common.KeyZ).State(), 315},
		{"held without edge", new(input.Builder).Hold(common.KeyZ).State(), 45},
		{"nothing", input.State{}, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(NewRig())
			c.Update(1.0/60, tt.state)
			if got := c.Rig().Yaw(); !approx(got, tt.wantYaw) {
				t.Errorf("yaw = %v, want %v", got, tt.wantYaw)
			}
		})
	}
}

func TestControllerRotateRoundTrip(t *testing.T) {
	c := NewController(NewRig())
	c.Update(1.0/60, new(input.Builder).Press(common.KeyZ).State())
	c.Update(1.0/60, new(input.Builder).Press(common.KeyX).State())
	if got := c.Rig().Yaw(); !approx(got, 45) {
		t.Errorf("yaw = %v, want 45", got)
	}
}

func TestControllerMouseLook(t *testing.T) {
	c := NewController(NewRig())
	state := new(input.Builder).
		HoldButton(common.MouseButtonRight).
		Move(10, 0).
		Move(0, 5).
		State()
	c.Update(1.0/60, state)

	if got := c.Rig().Yaw(); !approx(got, 42) {
		t.Errorf("yaw = %v, want 42", got)
	}
	if got := c.Rig().Pitch(); !approx(got, -31.5) {
		t.Errorf("pitch = %v, want -31.5", got)
	}
}

func TestControllerMouseLookRequiresButton(t *testing.T) {
	c := NewController(NewRig())
	c.Update(1.0/60, new(input.Builder).Move(100, 100).State())
	if c.Rig().Yaw() != 45 || c.Rig().Pitch() != -30 {
		t.Errorf("drag without look button rotated the rig to %v/%v", c.Rig().Yaw(), c.Rig().Pitch())
	}

	c = NewController(NewRig(), WithLookButton(common.MouseButtonMiddle))
	c.Update(1.0/60, new(input.Builder).HoldButton(common.MouseButtonRight).Move(100, 0).State())
	if c.Rig().Yaw() != 45 {
		t.Errorf("rebound look button still reacts to right drag")
	}
}

func TestControllerFlyMovement(t *testing.T) {
	s2 := float32(math.Sqrt2) / 2
	tests := []struct {
		name string
		keys []common.Key
		want mgl32.Vec3
	}{
		{"forward", []common.Key{common.KeyW}, mgl32.Vec3{0, 0, -5}},
		{"back", []common.Key{common.KeyS}, mgl32.Vec3{0, 0, 5}},
		{"strafe right", []common.Key{common.KeyD}, mgl32.Vec3{5, 0, 0}},
		{"up", []common.Key{common.KeyE}, mgl32.Vec3{0, 5, 0}},
		{"down", []common.Key{common.KeyQ}, mgl32.Vec3{0, -5, 0}},
		{"diagonal is normalized", []common.Key{common.KeyW, common.KeyD}, mgl32.Vec3{5 * s2, 0, -5 * s2}},
		{"opposing keys cancel", []common.Key{common.KeyW, common.KeyS}, mgl32.Vec3{}},
		{"sprint", []common.Key{common.KeyW, common.KeyLeftShift}, mgl32.Vec3{0, 0, -50}},
		{"right shift sprints", []common.Key{common.KeyA, common.KeyRightShift}, mgl32.Vec3{-50, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := flyController()
			pose := c.Update(0.5, new(input.Builder).Hold(tt.keys...).State())
			if !approxVec3(c.Rig().Position(), tt.want) {
				t.Errorf("position = %v, want %v", c.Rig().Position(), tt.want)
			}
			if !approxVec3(pose.Position, tt.want) {
				t.Errorf("pose position = %v, want %v", pose.Position, tt.want)
			}
		})
	}
}

func TestControllerZeroElapsedDoesNotMove(t *testing.T) {
	c := flyController()
	c.Update(0, new(input.Builder).Hold(common.KeyW).State())
	c.Update(-1, new(input.Builder).Hold(common.KeyW).State())
	if c.Rig().Position() != (mgl32.Vec3{}) {
		t.Errorf("position = %v, want origin", c.Rig().Position())
	}
}

func TestControllerOrbitMovesPivotOnGround(t *testing.T) {
	c := NewController(NewRig())
	c.Update(0.1, new(input.Builder).Hold(common.KeyW).State())

	s2 := float32(math.Sqrt2) / 2
	want := mgl32.Vec3{-s2, 0, -s2}
	if got := c.Rig().Pivot(); !approxVec3(got, want) {
		t.Errorf("pivot = %v, want %v", got, want)
	}
}

func TestControllerSetControls(t *testing.T) {
	c := flyController()
	ctrl := c.Controls()
	if ctrl != DefaultControls() {
		t.Fatalf("controls = %+v, want defaults", ctrl)
	}

	ctrl.MoveSpeed = 2
	ctrl.RotateStep = 45
	c.SetControls(ctrl)

	c.Update(1, new(input.Builder).Hold(common.KeyW).Press(common.KeyZ).State())
	if got := c.Rig().Yaw(); !approx(got, 45) {
		t.Errorf("yaw = %v, want 45", got)
	}
	if got := c.Rig().Position(); !approxVec3(got, mgl32.Vec3{0, 0, -2}) {
		t.Errorf("position = %v, want (0,0,-2)", got)
	}
}

func TestControllerOptions(t *testing.T) {
	b := DefaultBindings()
	b.Forward = common.KeyR
	c := flyController(WithBindings(b), WithMoveSpeed(1), WithMouseSensitivity(1))

	c.Update(1, new(input.Builder).Hold(common.KeyR).State())
	if got := c.Rig().Position(); !approxVec3(got, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("position = %v, want (0,0,-1)", got)
	}
	if c.Controls().MouseSensitivity != 1 {
		t.Errorf("mouse sensitivity = %v, want 1", c.Controls().MouseSensitivity)
	}
}

func TestNewControllerNilRigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	NewController(nil)
}

func TestControllerOrbitMovesWhenLookingStraightDownOrUp(t *testing.T) {
	for _, pitch := range []float32{-90, 90} {
		rig := NewRig(WithYawPitch(0, pitch), WithRotationSmoothing(0), WithPositionSmoothing(0))
		c := NewController(rig)
		c.Update(0.1, new(input.Builder).Hold(common.KeyW).State())
		if got := rig.Pivot(); !approxVec3(got, mgl32.Vec3{0, 0, -1}) {
			t.Errorf("pitch %v: pivot = %v, want (0,0,-1)", pitch, got)
		}
	}
}

func TestControllerSetLookButton(t *testing.T) {
	c := NewController(NewRig())
	c.SetLookButton(common.MouseButtonMiddle)
	if c.Bindings().Look != common.MouseButtonMiddle {
		t.Fatalf("look = %v, want middle", c.Bindings().Look)
	}

	c.Update(1.0/60, new(input.Builder).HoldButton(common.MouseButtonRight).Move(10, 0).State())
	if c.Rig().Yaw() != 45 {
		t.Errorf("right drag rotated after rebinding, yaw %v", c.Rig().Yaw())
	}
	c.Update(1.0/60, new(input.Builder).HoldButton(common.MouseButtonMiddle).Move(10, 0).State())
	if !approx(c.Rig().Yaw(), 42) {
		t.Errorf("yaw = %v, want 42", c.Rig().Yaw())
	}
}
