// Package service contains the business logic for the rocket simulator.
package service

import (
	"math"
	"strconv"

	"github.com/guttosm/rocket-sim/internal/domain/model"
)

const (
	// FeetPerMeter converts lengths entered in feet.
	FeetPerMeter = 3.28
	// RocketDensity is the density of the rocket solid in kg/m³.
	RocketDensity = 1.225
)

// round2 rounds x to the nearest value with 2 decimals. Rounding works on
// the exact binary value of x, so 2.675 (stored as 2.67499...) gives 2.67
// and exact ties go to even.
func round2(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// FeetToMeters converts a length in feet to meters, rounded to 2 decimals.
// Negative lengths are converted like any other value.
func FeetToMeters(length float64) float64 {
	return round2(length / FeetPerMeter)
}

// Volume returns the volume of the cone-on-cylinder solid.
func Volume(g model.RocketGeometry) float64 {
	base := math.Pi * (g.Radius * g.Radius)
	cone := base * g.ConeHeight / 3
	cylinder := base * g.CylinderHeight
	return round2(cone + cylinder)
}

// Area returns the exposed surface area: the cone and the cylinder without
// the disk at the join and without the open bottom.
func Area(g model.RocketGeometry) float64 {
	r := g.Radius
	slant := math.Sqrt(g.ConeHeight*g.ConeHeight + r*r)
	cone := math.Pi * r * (r + slant)
	cylinder := 2 * math.Pi * r * (g.CylinderHeight + r)
	circle := math.Pi * (r * r)
	return round2(cone + cylinder - 2*circle)
}

// Mass returns the mass of the rocket from its rounded volume.
func Mass(g model.RocketGeometry) float64 {
	return round2(Volume(g) * RocketDensity)
}

// Profile computes volume, area and mass in one go.
func Profile(g model.RocketGeometry) model.PhysicalProfile {
	return model.PhysicalProfile{
		Volume: Volume(g),
		Area:   Area(g),
		Mass:   Mass(g),
	}
}
