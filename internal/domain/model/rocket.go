// Package model defines the core domain entities for the rocket simulator.
package model

// RocketGeometry describes the cone-on-cylinder solid, in meters.
type RocketGeometry struct {
	// Radius is shared by the cone base and the cylinder
	Radius float64 `json:"radius"`
	// ConeHeight is the height of the nose cone
	ConeHeight float64 `json:"cone_height"`
	// CylinderHeight is the height of the body tube
	CylinderHeight float64 `json:"cylinder_height"`
}

// PhysicalProfile holds the quantities derived from a RocketGeometry.
type PhysicalProfile struct {
	// Volume in cubic meters
	Volume float64 `json:"volume"`
	// Area is the exposed surface area in square meters
	Area float64 `json:"area"`
	// Mass in kilograms
	Mass float64 `json:"mass"`
}

// LaunchParameters holds the trip inputs that are not part of the geometry.
type LaunchParameters struct {
	ExhaustVelocity float64 `json:"exhaust_velocity"`
	InitialVelocity float64 `json:"initial_velocity"`
	// Angle is the launch angle in radians
	Angle      float64 `json:"angle"`
	TripTime   float64 `json:"trip_time"`
	TaxEnabled bool    `json:"tax_enabled"`
}

// CostBreakdown itemises the cost of building and launching a rocket.
// TotalCost is rounded to cents, the other fields are not.
type CostBreakdown struct {
	MaterialCost float64 `json:"material_cost"`
	FuelCost     float64 `json:"fuel_cost"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalCost    float64 `json:"total_cost"`
}

// LaunchReport gathers every figure computed for a launch.
type LaunchReport struct {
	Geometry   RocketGeometry   `json:"geometry"`
	Parameters LaunchParameters `json:"parameters"`
	Profile    PhysicalProfile  `json:"profile"`
	Fuel       float64          `json:"fuel"`
	Cost       CostBreakdown    `json:"cost"`
}
