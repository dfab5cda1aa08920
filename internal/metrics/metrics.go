// Package metrics records simulation activity as Prometheus metrics. The CLI
// is short-lived, so the registry is written to a node-exporter textfile
// instead of being scraped.
package metrics

import (
	"fmt"
	"time"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hhplan"

// Recorder owns a private registry and the simulation metrics registered in it.
type Recorder struct {
	Registry *prometheus.Registry

	PathsSimulated   prometheus.Counter
	PathsFailed      prometheus.Counter
	ShortfallYears   prometheus.Counter
	RunsCompleted    prometheus.Counter
	RunDuration      prometheus.Histogram
	LastSuccessRate  prometheus.Gauge
	LastMedianLiquid prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		Registry: reg,
		PathsSimulated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paths_simulated_total",
			Help:      "Total number of simulated Monte Carlo paths",
		}),
		PathsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paths_depleted_total",
			Help:      "Total number of paths ending without liquid assets",
		}),
		ShortfallYears: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shortfall_years_total",
			Help:      "Total number of simulated years with unmet spending need",
		}),
		RunsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_completed_total",
			Help:      "Total number of completed Monte Carlo runs",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of Monte Carlo runs in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		LastSuccessRate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_rate",
			Help:      "Success rate of the most recent Monte Carlo run",
		}),
		LastMedianLiquid: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_median_final_liquid",
			Help:      "Median final liquid assets of the most recent Monte Carlo run",
		}),
	}
}

// PathCompleted implements calculation.Observer.
func (r *Recorder) PathCompleted(path domain.SimulationPath) {
	r.PathsSimulated.Inc()
	if !path.Succeeded() {
		r.PathsFailed.Inc()
	}
	for i := range path {
		if !path[i].NeedFullyMet() {
			r.ShortfallYears.Inc()
		}
	}
}

// RunCompleted implements calculation.Observer.
func (r *Recorder) RunCompleted(result *domain.MonteCarloResult, elapsed time.Duration) {
	r.RunsCompleted.Inc()
	r.RunDuration.Observe(elapsed.Seconds())
	if result == nil {
		return
	}
	r.LastSuccessRate.Set(result.SuccessRate.InexactFloat64())
	if n := len(result.PerYear); n > 0 {
		r.LastMedianLiquid.Set(result.PerYear[n-1].P50.InexactFloat64())
	}
}

// WriteTextfile writes the registry in the Prometheus text format to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
