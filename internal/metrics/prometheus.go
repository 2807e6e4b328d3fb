package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusCollector implements Collector on top of Prometheus.
type PrometheusCollector struct {
	durations *prometheus.HistogramVec
	results   *prometheus.CounterVec
	errors    *prometheus.CounterVec
}

func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{
		durations: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cardpay_operation_duration_seconds",
			Help:    "Duration of service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		results: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardpay_operation_results_total",
			Help: "Operation outcomes by result.",
		}, []string{"operation", "result"}),
		errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardpay_operation_errors_total",
			Help: "Operation errors by kind.",
		}, []string{"operation", "kind"}),
	}
}

func (c *PrometheusCollector) RecordOperationDuration(op string, d time.Duration) {
	c.durations.WithLabelValues(op).Observe(d.Seconds())
}

func (c *PrometheusCollector) RecordOperationResult(op, result string) {
	c.results.WithLabelValues(op, result).Inc()
}

func (c *PrometheusCollector) RecordError(op, kind string) {
	c.errors.WithLabelValues(op, kind).Inc()
}

// Serve exposes /metrics on its own listener, off the API port.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("metrics listener stopped: %v", err)
	}
}
