package service

import (
	"fmt"

	"github.com/guttosm/rocket-sim/internal/domain/model"
)

const (
	// MaterialCostRate is the cost per square meter of surface.
	MaterialCostRate = 4.5
	// FuelCostRate is the cost per unit of fuel.
	FuelCostRate = 7.331
	// TaxRatio applies to material and fuel cost when tax is enabled.
	TaxRatio = 0.14975
)

// CostBreakdownFor itemises the cost of building and launching the rocket.
func CostBreakdownFor(g model.RocketGeometry, p model.LaunchParameters) (model.CostBreakdown, error) {
	fuel, err := Fuel(g, p.ExhaustVelocity, p.InitialVelocity, p.TripTime)
	if err != nil {
		return model.CostBreakdown{}, fmt.Errorf("fuel: %w", err)
	}

	return costBreakdown(Area(g), fuel, p.TaxEnabled), nil
}

// costBreakdown prices a rocket from its surface area and the fuel it needs.
func costBreakdown(area, fuel float64, taxEnabled bool) model.CostBreakdown {
	b := model.CostBreakdown{
		MaterialCost: area * MaterialCostRate,
		FuelCost:     fuel * FuelCostRate,
	}
	if taxEnabled {
		b.TaxAmount = TaxRatio * (b.MaterialCost + b.FuelCost)
	}
	b.TotalCost = round2(b.MaterialCost + b.FuelCost + b.TaxAmount)
	return b
}

// Cost returns the rounded total cost of building and launching the rocket.
func Cost(g model.RocketGeometry, p model.LaunchParameters) (float64, error) {
	b, err := CostBreakdownFor(g, p)
	if err != nil {
		return 0, err
	}
	return b.TotalCost, nil
}
