package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rocket-sim/internal/domain/model"
)

func TestBurnRate(t *testing.T) {
	tests := []struct {
		name     string
		mass     float64
		expected float64
	}{
		{name: "light rocket", mass: 82.1, expected: BurnRateLow},
		{name: "just below low limit", mass: 79999.99, expected: BurnRateLow},
		{name: "at low limit", mass: 80000, expected: BurnRateMedium},
		{name: "just below high limit", mass: 349999.99, expected: BurnRateMedium},
		{name: "at high limit", mass: 350000, expected: BurnRateHigh},
		{name: "heavy rocket", mass: 2345618585.84, expected: BurnRateHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BurnRate(tt.mass))
		})
	}
}

func TestFuel(t *testing.T) {
	t.Run("small rocket", func(t *testing.T) {
		g := model.RocketGeometry{Radius: 2.0, ConeHeight: 3.0, CylinderHeight: 4.0}

		fuel, err := Fuel(g, 250.0, 1000.0, 1.0)

		require.NoError(t, err)
		assert.Equal(t, 4893.45, fuel)
	})

	t.Run("medium rocket", func(t *testing.T) {
		g := model.RocketGeometry{Radius: 10.39, ConeHeight: 47.1, CylinderHeight: 2.7}

		fuel, err := Fuel(g, 460.0, 700.0, 3.0)

		require.NoError(t, err)
		assert.Equal(t, 29671.78, fuel)
	})

	t.Run("heavy rocket uses high burn rate", func(t *testing.T) {
		g := model.RocketGeometry{Radius: 1022.394, ConeHeight: 283.131, CylinderHeight: 488.712}

		fuel, err := Fuel(g, 80.0, 1200.0, 10)

		require.NoError(t, err)
		assert.Equal(t, 7667865560701253.0, fuel)
	})

	t.Run("zero velocity only burns cruise fuel", func(t *testing.T) {
		g := model.RocketGeometry{Radius: 2.0, ConeHeight: 3.0, CylinderHeight: 4.0}

		fuel, err := Fuel(g, 250.0, 0, 2.0)

		require.NoError(t, err)
		assert.Equal(t, 2*BurnRateLow*1.0, fuel)
	})

	t.Run("zero exhaust velocity is a domain error", func(t *testing.T) {
		g := model.RocketGeometry{Radius: 2.0, ConeHeight: 3.0, CylinderHeight: 4.0}

		fuel, err := Fuel(g, 0, 1000.0, 1.0)

		assert.ErrorIs(t, err, ErrZeroExhaustVelocity)
		assert.Zero(t, fuel)
	})

	t.Run("overflow is reported", func(t *testing.T) {
		g := model.RocketGeometry{Radius: 2.0, ConeHeight: 3.0, CylinderHeight: 4.0}

		_, err := Fuel(g, 1, 1e6, 1.0)

		assert.ErrorIs(t, err, ErrNonFiniteResult)
	})
}

func TestPowE(t *testing.T) {
	tests := []struct {
		name     string
		exponent float64
		expected float64
	}{
		{name: "zero", exponent: 0, expected: 1},
		{name: "one", exponent: 1, expected: math.E},
		{name: "whole exponent is rounded once", exponent: 15, expected: 3269017.372472108},
		{name: "negative whole exponent", exponent: -1, expected: 0.36787944117144233},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, powE(tt.exponent))
		})
	}

	t.Run("fractional exponent", func(t *testing.T) {
		assert.InEpsilon(t, math.Pow(math.E, 1.5), powE(1.5), 1e-15)
		assert.InEpsilon(t, math.Pow(math.E, -0.25), powE(-0.25), 1e-15)
	})

	t.Run("overflow", func(t *testing.T) {
		assert.True(t, math.IsInf(powE(1e6), 1))
		assert.True(t, math.IsInf(powE(1e9), 1))
		assert.Zero(t, powE(-1e6))
	})
}
