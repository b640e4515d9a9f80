package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the extraction metrics of one statgraph run
type Registry struct {
	registry *prometheus.Registry

	WindowsTotal         *prometheus.CounterVec
	AttackWindowsTotal   *prometheus.CounterVec
	DroppedRecordsTotal  *prometheus.CounterVec
	VariantDuration      *prometheus.GaugeVec
	LastSuccessTimestamp prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.WindowsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "statgraph_windows_total",
			Help: "Number of windows summarized per variant",
		},
		[]string{"variant"},
	)

	r.AttackWindowsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "statgraph_attack_windows_total",
			Help: "Number of windows labeled as attack per variant",
		},
		[]string{"variant"},
	)

	r.DroppedRecordsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "statgraph_dropped_records_total",
			Help: "Number of trailing records which did not fill a window per variant",
		},
		[]string{"variant"},
	)

	r.VariantDuration = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "statgraph_variant_duration_seconds",
			Help: "Time taken to extract the feature table of a variant",
		},
		[]string{"variant"},
	)

	r.LastSuccessTimestamp = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "statgraph_last_success_timestamp_seconds",
			Help: "Unix time of the last extraction which completed without error",
		},
	)

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordVariant records the outcome of one extracted variant
func (r *Registry) RecordVariant(variant string, windows int, attackWindows int, dropped int, duration time.Duration) {
	r.WindowsTotal.WithLabelValues(variant).Add(float64(windows))
	r.AttackWindowsTotal.WithLabelValues(variant).Add(float64(attackWindows))
	r.DroppedRecordsTotal.WithLabelValues(variant).Add(float64(dropped))
	r.VariantDuration.WithLabelValues(variant).Set(duration.Seconds())
}

// RecordSuccess marks the end of a run which completed without error
func (r *Registry) RecordSuccess(at time.Time) {
	r.LastSuccessTimestamp.Set(float64(at.Unix()))
}

// WriteTextfile writes the registry in the Prometheus text format for the
// node exporter textfile collector. The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
