package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rocket-sim/internal/domain/model"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name     string
		geometry model.RocketGeometry
		params   model.LaunchParameters
		expected float64
	}{
		{
			name:     "small rocket with tax",
			geometry: model.RocketGeometry{Radius: 2.0, ConeHeight: 3.0, CylinderHeight: 4.0},
			params:   model.LaunchParameters{ExhaustVelocity: 250.0, InitialVelocity: 1000.0, TripTime: 1.0, TaxEnabled: true},
			expected: 41688.31,
		},
		{
			name:     "medium rocket without tax",
			geometry: model.RocketGeometry{Radius: 22.7, ConeHeight: 52.2, CylinderHeight: 68.1},
			params:   model.LaunchParameters{ExhaustVelocity: 323.3, InitialVelocity: 1029.9, TripTime: 0.8},
			expected: 28891245.55,
		},
		{
			name:     "large rocket with tax",
			geometry: model.RocketGeometry{Radius: 233.1, ConeHeight: 211.2, CylinderHeight: 33.0},
			params:   model.LaunchParameters{ExhaustVelocity: 2322.0, InitialVelocity: 9888.9, TripTime: 1.6, TaxEnabled: true},
			expected: 12709263675.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := Cost(tt.geometry, tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cost)
		})
	}
}

func TestCostBreakdownFor(t *testing.T) {
	g := model.RocketGeometry{Radius: 2.0, ConeHeight: 3.0, CylinderHeight: 4.0}
	params := model.LaunchParameters{ExhaustVelocity: 250.0, InitialVelocity: 1000.0, TripTime: 1.0}

	t.Run("without tax", func(t *testing.T) {
		b, err := CostBreakdownFor(g, params)

		require.NoError(t, err)
		assert.InDelta(t, Area(g)*MaterialCostRate, b.MaterialCost, 1e-9)
		assert.InDelta(t, 4893.45*FuelCostRate, b.FuelCost, 1e-9)
		assert.Zero(t, b.TaxAmount)
		assert.Equal(t, round2(b.MaterialCost+b.FuelCost), b.TotalCost)
	})

	t.Run("with tax", func(t *testing.T) {
		withTax := params
		withTax.TaxEnabled = true

		b, err := CostBreakdownFor(g, withTax)

		require.NoError(t, err)
		assert.InDelta(t, TaxRatio*(b.MaterialCost+b.FuelCost), b.TaxAmount, 1e-9)
		assert.Equal(t, round2(b.MaterialCost+b.FuelCost+b.TaxAmount), b.TotalCost)
		assert.Equal(t, 41688.31, b.TotalCost)
	})

	t.Run("propagates fuel errors", func(t *testing.T) {
		broken := params
		broken.ExhaustVelocity = 0

		_, err := CostBreakdownFor(g, broken)

		assert.ErrorIs(t, err, ErrZeroExhaustVelocity)
	})
}
