// Package metrics provides Prometheus metrics collection for the rocket simulator.
//
// There is no scrape endpoint; WriteTextfile dumps the collected values in the
// node-exporter textfile format when a run ends.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation status labels.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Cargo item result labels.
const (
	CargoAccepted  = "accepted"
	CargoRejected  = "rejected"
	CargoMalformed = "malformed"
)

var (
	// CalculationsTotal tracks calculations by operation and status.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rocketsim_calculations_total",
			Help: "Total number of calculations",
		},
		[]string{"operation", "status"},
	)

	// CalculationDuration tracks calculation duration by operation.
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rocketsim_calculation_duration_seconds",
			Help:    "Calculation duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"operation"},
	)

	// CargoItemsTotal tracks cargo items offered to the loader by result.
	CargoItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rocketsim_cargo_items_total",
			Help: "Total number of cargo items offered for loading",
		},
		[]string{"result"},
	)

	// CargoLoadedWeight tracks the rocket weight after the last loading session.
	CargoLoadedWeight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rocketsim_cargo_loaded_weight_kg",
			Help: "Rocket weight including cargo after the last loading session",
		},
	)

	// TrajectorySamplesTotal tracks emitted trajectory samples.
	TrajectorySamplesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rocketsim_trajectory_samples_total",
			Help: "Total number of trajectory samples emitted",
		},
	)

	// StudyScore tracks the distribution of study success scores.
	StudyScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rocketsim_study_score",
			Help:    "Study success score",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)
)

// RecordCalculation records metrics for a single calculation.
func RecordCalculation(operation string, duration time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	CalculationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	CalculationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordCargoItem records the outcome of one offered cargo item.
func RecordCargoItem(result string) {
	CargoItemsTotal.WithLabelValues(result).Inc()
}

// RecordLoadedWeight sets the loaded weight gauge.
func RecordLoadedWeight(weight float64) {
	CargoLoadedWeight.Set(weight)
}

// RecordTrajectorySample counts one emitted trajectory sample.
func RecordTrajectorySample() {
	TrajectorySamplesTotal.Inc()
}

// RecordStudyScore observes a study success score.
func RecordStudyScore(score float64) {
	StudyScore.Observe(score)
}

// WriteTextfile writes every metric of the default gatherer to path.
// An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
