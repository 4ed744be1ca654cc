package service

import (
	"errors"
	"iter"
	"math"

	"github.com/guttosm/rocket-sim/internal/domain/model"
)

// Gravity is the gravitational acceleration in m/s².
const Gravity = 9.81

// ErrInvalidInterval is returned when the sampling interval is not positive.
var ErrInvalidInterval = errors.New("simulation interval must be positive")

// Height returns the height of the projectile after t seconds.
func Height(t, v0, angle float64) float64 {
	return -0.5*Gravity*(t*t) + v0*math.Sin(angle)*t
}

// Simulate samples the projectile every interval up to totalTime.
//
// The sample at time 0 is always yielded with height 0. Later samples are
// yielded only while the unrounded height is positive; the whole step range
// is visited even after the projectile has landed.
func Simulate(totalTime, interval int, v0, angle float64) (iter.Seq[model.TrajectorySample], error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	steps := totalTime / interval
	return func(yield func(model.TrajectorySample) bool) {
		if !yield(model.TrajectorySample{Time: 0, Height: 0}) {
			return
		}
		for step := 1; step <= steps; step++ {
			t := step * interval
			h := Height(float64(t), v0, angle)
			if h <= 0 {
				continue
			}
			if !yield(model.TrajectorySample{Time: t, Height: round2(h)}) {
				return
			}
		}
	}, nil
}
