package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-3

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func approxVec3(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func TestNewRigDefaultPose(t *testing.T) {
	r := NewRig()

	if r.Mode() != ModeOrbit {
		t.Fatalf("mode = %v, want orbit", r.Mode())
	}
	if r.Yaw() != 45 || r.Pitch() != -30 {
		t.Fatalf("yaw/pitch = %v/%v, want 45/-30", r.Yaw(), r.Pitch())
	}

	pose := r.Update(0)
	want := mgl32.Vec3{4.89898, 4, 4.89898}
	if !approxVec3(pose.Position, want) {
		t.Errorf("position = %v, want %v", pose.Position, want)
	}

	// The camera looks back along the arm at the pivot.
	toPivot := mgl32.Vec3{}.Sub(pose.Position).Normalize()
	if !approxVec3(pose.Forward(), toPivot) {
		t.Errorf("forward = %v, want %v", pose.Forward(), toPivot)
	}
	if pose.Up()[1] <= 0 {
		t.Errorf("up = %v, want positive Y", pose.Up())
	}
}

func TestRigPivotOffset(t *testing.T) {
	pivot := mgl32.Vec3{3, 0, -2}
	r := NewRig(WithPivot(pivot))
	pose := r.Update(0)
	want := pivot.Add(mgl32.Vec3{4.89898, 4, 4.89898})
	if !approxVec3(pose.Position, want) {
		t.Errorf("position = %v, want %v", pose.Position, want)
	}
}

func TestRigRotateRoundTrip(t *testing.T) {
	r := NewRig()
	start := r.Yaw()

	r.Rotate(90, 0)
	if !approx(r.Yaw(), 135) {
		t.Errorf("after +90 yaw = %v, want 135", r.Yaw())
	}
	r.Rotate(-90, 0)
	if !approx(r.Yaw(), start) {
		t.Errorf("after -90 yaw = %v, want %v", r.Yaw(), start)
	}
}

func TestRigYawWrapsAndPitchClamps(t *testing.T) {
	tests := []struct {
		name      string
		yaw       float32
		pitch     float32
		wantYaw   float32
		wantPitch float32
	}{
		{"wrap negative", -90, 0, 270, 0},
		{"wrap over", 405, 0, 45, 0},
		{"full turn", 360, 0, 0, 0},
		{"clamp up", 0, 120, 0, 90},
		{"clamp down", 0, -200, 0, -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig()
			r.SetYawPitch(tt.yaw, tt.pitch)
			if !approx(r.Yaw(), tt.wantYaw) {
				t.Errorf("yaw = %v, want %v", r.Yaw(), tt.wantYaw)
			}
			if !approx(r.Pitch(), tt.wantPitch) {
				t.Errorf("pitch = %v, want %v", r.Pitch(), tt.wantPitch)
			}
		})
	}
}

func TestRigPitchBoundsSwapped(t *testing.T) {
	r := NewRig(WithPitchBounds(10, -10), WithYawPitch(0, 45))
	if r.Pitch() != 10 {
		t.Errorf("pitch = %v, want clamped to 10", r.Pitch())
	}
	r.Rotate(0, -100)
	if r.Pitch() != -10 {
		t.Errorf("pitch = %v, want clamped to -10", r.Pitch())
	}
}

func forwardYaw(p Pose) float32 {
	fwd := p.Forward()
	return mgl32.RadToDeg(float32(math.Atan2(float64(-fwd[0]), float64(-fwd[2]))))
}

func TestRigRotationConvergesWithoutOvershoot(t *testing.T) {
	r := NewRig(WithYawPitch(0, 0))
	r.Rotate(90, 0)

	prev := float32(0)
	frames := []float32{1.0 / 60, 0.1, 1.0 / 30, 0.25, 1.0 / 144, 0.5, 1.0 / 60}

	for i := 0; i < 200; i++ {
		yaw := forwardYaw(r.Update(frames[i%len(frames)]))
		if yaw < prev-tolerance {
			t.Fatalf("frame %d: yaw went backwards from %v to %v", i, prev, yaw)
		}
		if yaw > 90+tolerance {
			t.Fatalf("frame %d: yaw %v overshot 90", i, yaw)
		}
		prev = yaw
	}
	if math.Abs(float64(prev-90)) > 0.01 {
		t.Errorf("rotation did not converge, yaw %v", prev)
	}
}

func TestRigRotationSmoothingLag(t *testing.T) {
	r := NewRig(WithYawPitch(0, 0))
	r.Rotate(90, 0)

	// One time constant covers 1 - 1/e of the arc.
	got := forwardYaw(r.Update(DefaultRotationSmoothing))
	want := float32(90 * (1 - math.Exp(-1)))
	if math.Abs(float64(got-want)) > 0.1 {
		t.Errorf("yaw after one time constant = %v, want %v", got, want)
	}
}

func TestRigFlyModeSmoothsPosition(t *testing.T) {
	r := NewRig(WithMode(ModeFly), WithPosition(mgl32.Vec3{0, 2, 0}), WithPositionSmoothing(0.5))
	if pose := r.Update(0); !approxVec3(pose.Position, mgl32.Vec3{0, 2, 0}) {
		t.Fatalf("initial position = %v", pose.Position)
	}

	r.Translate(mgl32.Vec3{10, 0, 0})
	if !approxVec3(r.Position(), mgl32.Vec3{10, 2, 0}) {
		t.Errorf("unsmoothed position = %v", r.Position())
	}

	prev := float32(0)
	for i := 0; i < 120; i++ {
		x := r.Update(1.0 / 60).Position[0]
		if x < prev || x > 10 {
			t.Fatalf("frame %d: x = %v, previous %v", i, x, prev)
		}
		prev = x
	}
	if !approx(prev, 10*(1-float32(math.Exp(-4)))) {
		t.Errorf("x after 2s = %v", prev)
	}
}

func TestRigOrbitTranslateMovesPivot(t *testing.T) {
	r := NewRig(WithPositionSmoothing(0))
	r.Translate(mgl32.Vec3{1, 0, 0})
	if !approxVec3(r.Pivot(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("pivot = %v", r.Pivot())
	}
	pose := r.Update(1.0 / 60)
	want := mgl32.Vec3{5.89898, 4, 4.89898}
	if !approxVec3(pose.Position, want) {
		t.Errorf("position = %v, want %v", pose.Position, want)
	}
}

func TestRigUpdateZeroIsNoop(t *testing.T) {
	r := NewRig()
	r.Rotate(90, 0)
	before := r.Pose()
	after := r.Update(0)
	if after != before {
		t.Errorf("Update(0) changed pose: %v -> %v", before, after)
	}
}

func TestRigIgnoresNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	r := NewRig()
	before := r.Update(0)

	r.Rotate(nan, 0)
	r.SetYawPitch(0, inf)
	r.Translate(mgl32.Vec3{nan, 0, 0})
	r.SetPivot(mgl32.Vec3{0, inf, 0})
	r.SetArm(mgl32.Vec3{nan, nan, nan})

	got := r.Update(nan)
	if got != before {
		t.Errorf("non-finite input changed pose: %v -> %v", before, got)
	}
	if got = r.Update(-1); got != before {
		t.Errorf("negative elapsed changed pose: %v -> %v", before, got)
	}
}

func TestRigSetArm(t *testing.T) {
	r := NewRig(WithYawPitch(0, 0))
	r.SetArm(mgl32.Vec3{0, 0, 3})
	pose := r.Update(0)
	if !approxVec3(pose.Position, mgl32.Vec3{0, 0, 3}) {
		t.Errorf("position = %v, want (0,0,3)", pose.Position)
	}
}

func TestModeString(t *testing.T) {
	if ModeOrbit.String() != "orbit" || ModeFly.String() != "fly" || Mode(9).String() != "unknown" {
		t.Errorf("unexpected mode strings")
	}
}

func TestNewRigReplacesNonFiniteOptions(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	want := NewRig().Update(1.0 / 60)

	tests := []struct {
		name string
		opt  RigOption
	}{
		{"rotation smoothing", WithRotationSmoothing(nan)},
		{"position smoothing", WithPositionSmoothing(inf)},
		{"yaw", WithYawPitch(nan, DefaultPitch)},
		{"pitch", WithYawPitch(DefaultYaw, inf)},
		{"pitch bounds", WithPitchBounds(nan, nan)},
		{"arm", WithArm(mgl32.Vec3{nan, 0, 0})},
		{"pivot", WithPivot(mgl32.Vec3{0, inf, 0})},
		{"position", WithPosition(mgl32.Vec3{0, 0, nan})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig(tt.opt)
			got := r.Update(1.0 / 60)
			if !approxVec3(got.Position, want.Position) {
				t.Errorf("position = %v, want %v", got.Position, want.Position)
			}
			if !approxVec3(got.Forward(), want.Forward()) {
				t.Errorf("forward = %v, want %v", got.Forward(), want.Forward())
			}
		})
	}
}
