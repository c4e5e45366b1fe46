package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the directory service.
type Metrics struct {
	LookupHits      prometheus.Counter
	LookupMisses    prometheus.Counter
	PersonsCreated  prometheus.Counter
	EndpointLatency *prometheus.HistogramVec

	DBOpenConns prometheus.Gauge
	DBIdleConns prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		LookupHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "demonym_lookup_hits_total",
			Help: "Number of nationality name lookups that resolved a name",
		}),
		LookupMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "demonym_lookup_misses_total",
			Help: "Number of nationality name lookups for codes absent from the table",
		}),
		PersonsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "demonym_persons_created_total",
			Help: "Total number of persons created",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "demonym_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		DBOpenConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "demonym_db_open_conns",
			Help: "Number of open connections in the database pool",
		}),
		DBIdleConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "demonym_db_idle_conns",
			Help: "Number of idle connections in the database pool",
		}),
	}
}
