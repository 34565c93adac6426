package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestExpSmoothedSeedsOnFirstStep(t *testing.T) {
	s := NewSmoothedVec3(1)
	got := s.Step(mgl32.Vec3{1, 2, 3}, 0.5)
	if got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("first step = %v, want target", got)
	}
}

func TestExpSmoothedStep(t *testing.T) {
	tests := []struct {
		name    string
		tau     float32
		elapsed float32
		want    float32
	}{
		{"zero elapsed", 1, 0, 0},
		{"negative elapsed", 1, -1, 0},
		{"one time constant", 1, 1, 10 * (1 - float32(math.Exp(-1)))},
		{"two time constants", 0.5, 1, 10 * (1 - float32(math.Exp(-2)))},
		{"snap", 0, 0.016, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoothedVec3(tt.tau)
			s.Seed(mgl32.Vec3{})
			got := s.Step(mgl32.Vec3{10, 0, 0}, tt.elapsed)
			if !approx(got[0], tt.want) {
				t.Errorf("x = %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestExpSmoothedFrameRateIndependent(t *testing.T) {
	coarse := NewSmoothedVec3(1.5)
	fine := NewSmoothedVec3(1.5)
	coarse.Seed(mgl32.Vec3{})
	fine.Seed(mgl32.Vec3{})
	target := mgl32.Vec3{0, 0, 8}

	coarse.Step(target, 1)
	for i := 0; i < 100; i++ {
		fine.Step(target, 0.01)
	}
	if !approxVec3(coarse.Value(), fine.Value()) {
		t.Errorf("1 x 1s = %v, 100 x 10ms = %v", coarse.Value(), fine.Value())
	}
}

func TestSmoothedQuatTakesShortestArc(t *testing.T) {
	start := mgl32.QuatRotate(mgl32.DegToRad(10), mgl32.Vec3{0, 1, 0})
	// -q is the same rotation as q; the filter must not spin the long way around.
	target := mgl32.QuatRotate(mgl32.DegToRad(20), mgl32.Vec3{0, 1, 0}).Scale(-1)

	s := NewSmoothedQuat(1)
	s.Seed(start)
	got := s.Step(target, 0.1)

	fwd := got.Rotate(mgl32.Vec3{0, 0, -1})
	yaw := mgl32.RadToDeg(float32(math.Atan2(float64(-fwd[0]), float64(-fwd[2]))))
	if yaw < 10 || yaw > 20 {
		t.Errorf("yaw = %v, want between 10 and 20", yaw)
	}
}

func TestExpSmoothedTimeConstant(t *testing.T) {
	if got := NewSmoothedQuat(1.5).TimeConstant(); got != 1.5 {
		t.Errorf("TimeConstant = %v, want 1.5", got)
	}
}
