package camera

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ExpSmoothed is an exponential filter that pulls a value toward a moving target.
// Each step covers 1 - e^(-elapsed/tau) of the remaining distance, so the value never
// overshoots and converges asymptotically for any sequence of frame times.
// The filter starts empty and snaps to the first target it sees.
type ExpSmoothed[T any] struct {
	value  T
	seeded bool
	tau    float32
	interp func(from, to T, t float32) T
}

// NewExpSmoothed creates a filter with the given time constant and interpolation function.
//
// Parameters:
//   - tau: time constant in seconds; <= 0 disables smoothing
//   - interp: interpolation between two values at fraction t in [0, 1]
//
// Returns:
//   - *ExpSmoothed[T]: the new filter
func NewExpSmoothed[T any](tau float32, interp func(from, to T, t float32) T) *ExpSmoothed[T] {
	return &ExpSmoothed[T]{tau: tau, interp: interp}
}

// NewSmoothedVec3 creates a position filter using component-wise linear interpolation.
func NewSmoothedVec3(tau float32) *ExpSmoothed[mgl32.Vec3] {
	return NewExpSmoothed(tau, common.LerpVec3)
}

// NewSmoothedQuat creates a rotation filter using shortest-arc spherical interpolation.
func NewSmoothedQuat(tau float32) *ExpSmoothed[mgl32.Quat] {
	return NewExpSmoothed(tau, common.SlerpShortest)
}

// Seed sets the filtered value directly, discarding any lag.
func (s *ExpSmoothed[T]) Seed(v T) {
	s.value = v
	s.seeded = true
}

// Step advances the filter toward target and returns the filtered value.
//
// Parameters:
//   - target: the unsmoothed value to approach
//   - elapsed: elapsed time in seconds; <= 0 leaves the value unchanged
//
// Returns:
//   - T: the filtered value
func (s *ExpSmoothed[T]) Step(target T, elapsed float32) T {
	if !s.seeded {
		s.Seed(target)
		return s.value
	}
	t := common.ExpSmoothingFactor(elapsed, s.tau)
	if t == 0 {
		return s.value
	}
	s.value = s.interp(s.value, target, t)
	return s.value
}

// Value returns the current filtered value.
func (s *ExpSmoothed[T]) Value() T {
	return s.value
}

// TimeConstant returns the filter's time constant in seconds.
func (s *ExpSmoothed[T]) TimeConstant() float32 {
	return s.tau
}
