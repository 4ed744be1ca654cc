package app

import (
	"context"
	"fmt"

	"github.com/guttosm/rocket-sim/internal/console"
	"github.com/guttosm/rocket-sim/internal/domain/model"
	"github.com/guttosm/rocket-sim/internal/i18n"
	"github.com/guttosm/rocket-sim/internal/service"
)

// taxYes is the answer that enables tax.
const taxYes = "1"

// RunRocket asks for the rocket and trip, prints the cost, loads cargo and
// prints the simulated trajectory.
func RunRocket(ctx context.Context, p *console.Prompter, c *ServiceComponents) error {
	p.Say(i18n.KeyRocketWelcome)

	g, params, err := askLaunch(p)
	if err != nil {
		return err
	}

	report, err := c.Launch.Plan(g, params)
	if err != nil {
		return err
	}
	p.Say(i18n.KeyTripCost, console.FormatNumber(report.Cost.TotalCost))

	p.Say(i18n.KeyLoading)
	state, err := c.Cargo.LoadCargo(ctx, report.Profile.Mass, g.Radius, g.CylinderHeight, console.NewItemSource(p))
	if err != nil {
		return err
	}
	p.Say(i18n.KeyLoadedWeight, console.FormatNumber(state.RocketWeight))

	totalTime, err := p.AskInt(i18n.KeyPromptSimulationTime)
	if err != nil {
		return fmt.Errorf("simulation time: %w", err)
	}
	interval, err := p.AskInt(i18n.KeyPromptSimulationInterval)
	if err != nil {
		return fmt.Errorf("simulation interval: %w", err)
	}

	p.Say(i18n.KeySimulating)
	samples, err := c.Launch.Trajectory(totalTime, interval, params.InitialVelocity, params.Angle)
	if err != nil {
		return err
	}
	for s := range samples {
		p.Println(console.FormatNumber(s.Height))
	}
	return nil
}

// askLaunch reads the geometry in feet, converted to meters, and the trip
// parameters.
func askLaunch(p *console.Prompter) (model.RocketGeometry, model.LaunchParameters, error) {
	var (
		g      model.RocketGeometry
		params model.LaunchParameters
	)

	lengths := []struct {
		key string
		dst *float64
	}{
		{i18n.KeyPromptRadius, &g.Radius},
		{i18n.KeyPromptConeHeight, &g.ConeHeight},
		{i18n.KeyPromptCylinderHeight, &g.CylinderHeight},
	}
	for _, l := range lengths {
		feet, err := p.AskFloat(l.key)
		if err != nil {
			return g, params, fmt.Errorf("%s: %w", l.key, err)
		}
		*l.dst = service.FeetToMeters(feet)
	}

	figures := []struct {
		key string
		dst *float64
	}{
		{i18n.KeyPromptExhaustVelocity, &params.ExhaustVelocity},
		{i18n.KeyPromptInitialVelocity, &params.InitialVelocity},
		{i18n.KeyPromptAngle, &params.Angle},
		{i18n.KeyPromptTripTime, &params.TripTime},
	}
	for _, f := range figures {
		v, err := p.AskFloat(f.key)
		if err != nil {
			return g, params, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = v
	}

	tax, err := p.AskString(i18n.KeyPromptTax)
	if err != nil {
		return g, params, fmt.Errorf("%s: %w", i18n.KeyPromptTax, err)
	}
	params.TaxEnabled = tax == taxYes

	return g, params, nil
}
