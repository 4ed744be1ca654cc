package service

import (
	"fmt"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/rocket-sim/internal/domain/model"
	"github.com/guttosm/rocket-sim/internal/logger"
	"github.com/guttosm/rocket-sim/internal/metrics"
)

// Operation labels used for metrics.
const (
	OperationLaunchPlan = "launch_plan"
	OperationTrajectory = "trajectory"
	OperationStudyScore = "study_score"
)

// LaunchPlanner defines the interface for launch planning operations.
type LaunchPlanner interface {
	Plan(g model.RocketGeometry, p model.LaunchParameters) (model.LaunchReport, error)
	Trajectory(totalTime, interval int, v0, angle float64) (iter.Seq[model.TrajectorySample], error)
}

// LaunchOption configures a LaunchService.
type LaunchOption func(*LaunchService)

// LaunchService runs the geometry, mass, fuel and cost chain and the
// trajectory simulation, recording metrics for each.
type LaunchService struct {
	log zerolog.Logger
}

// NewLaunchService creates a new LaunchService with the given options.
func NewLaunchService(opts ...LaunchOption) *LaunchService {
	s := &LaunchService{log: logger.Logger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLaunchLogger sets the logger.
func WithLaunchLogger(l zerolog.Logger) LaunchOption {
	return func(s *LaunchService) {
		s.log = l
	}
}

// Plan computes the physical profile, fuel and cost of a launch.
func (s *LaunchService) Plan(g model.RocketGeometry, p model.LaunchParameters) (report model.LaunchReport, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordCalculation(OperationLaunchPlan, time.Since(start), err)
	}()

	report = model.LaunchReport{
		Geometry:   g,
		Parameters: p,
		Profile:    Profile(g),
	}

	report.Fuel, err = Fuel(g, p.ExhaustVelocity, p.InitialVelocity, p.TripTime)
	if err != nil {
		s.log.Error().Err(err).Float64("exhaust_velocity", p.ExhaustVelocity).Msg("Fuel calculation failed")
		return model.LaunchReport{}, fmt.Errorf("plan launch: %w", err)
	}

	report.Cost = costBreakdown(report.Profile.Area, report.Fuel, p.TaxEnabled)

	s.log.Debug().
		Float64("volume", report.Profile.Volume).
		Float64("area", report.Profile.Area).
		Float64("mass", report.Profile.Mass).
		Float64("fuel", report.Fuel).
		Float64("total_cost", report.Cost.TotalCost).
		Bool("tax", p.TaxEnabled).
		Msg("Launch planned")
	return report, nil
}

// Trajectory wraps Simulate and counts every yielded sample.
func (s *LaunchService) Trajectory(totalTime, interval int, v0, angle float64) (iter.Seq[model.TrajectorySample], error) {
	start := time.Now()
	seq, err := Simulate(totalTime, interval, v0, angle)
	metrics.RecordCalculation(OperationTrajectory, time.Since(start), err)
	if err != nil {
		s.log.Error().Err(err).Int("interval", interval).Msg("Trajectory simulation refused")
		return nil, fmt.Errorf("simulate trajectory: %w", err)
	}

	return func(yield func(model.TrajectorySample) bool) {
		for sample := range seq {
			metrics.RecordTrajectorySample()
			if !yield(sample) {
				return
			}
		}
	}, nil
}

// AdviseStudy scores a questionnaire and records the score.
func AdviseStudy(h model.StudyHabits) model.StudyReport {
	start := time.Now()
	report := ScoreStudyHabits(h)
	metrics.RecordCalculation(OperationStudyScore, time.Since(start), nil)
	metrics.RecordStudyScore(report.Score)
	return report
}
