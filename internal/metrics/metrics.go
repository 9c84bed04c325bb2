package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors exported by the generator, the importers and the record store.
type Metrics struct {
	Runs              *prometheus.CounterVec
	RecordsGenerated  *prometheus.CounterVec
	RecordsImported   *prometheus.CounterVec
	RecordsSkipped    *prometheus.CounterVec
	LastSuccessfulRun *prometheus.GaugeVec
	RunDuration       *prometheus.HistogramVec
	EmailsGenerated   prometheus.Counter
	DBQueryDuration   *prometheus.HistogramVec
}

// NewMetrics registers every collector on reg. Pass a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	appMetrics := &Metrics{
		Runs: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_runs_total",
			Help: "Total times a daily generation cycle completed successfully or unsuccessfully.",
		}, []string{"status"}),
		RecordsGenerated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_records_generated_total",
			Help: "Total number of synthesized records stored",
		}, []string{"kind"}),
		RecordsImported: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_records_imported_total",
			Help: "Total number of imported records stored",
		}, []string{"kind"}),
		RecordsSkipped: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_records_skipped_total",
			Help: "Total number of records dropped by validation or storage failures",
		}, []string{"kind", "reason"}),
		LastSuccessfulRun: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "hestia_last_successful_run_timestamp",
			Help: "Unix time of the last successful run, per run type.",
		}, []string{"type"}),
		RunDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name: "hestia_run_duration_seconds",
			Help: "Measures how long it takes to generate one day of data",
		}, []string{"type"}),
		EmailsGenerated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hestia_emails_generated_total",
			Help: "Total number of employee placeholder emails that were generated.",
		}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_db_query_duration_seconds",
			Help:    "Time spent in record store queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'save_sale', 'sales_summary'
	}

	// both status series exist before the first run
	appMetrics.Runs.WithLabelValues("success")
	appMetrics.Runs.WithLabelValues("failure")

	return appMetrics
}
