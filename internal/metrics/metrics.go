package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	UpstreamSeconds *prometheus.HistogramVec
	UpstreamErrors  *prometheus.CounterVec
	RoutingFailures prometheus.Counter
	SearchResults   prometheus.Histogram
	ReportsRendered *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		UpstreamSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "place_search_upstream_request_duration_seconds",
			Help:    "Duration of requests to the geocoding/directions provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider", "operation"}),
		UpstreamErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "place_search_upstream_errors_total",
			Help: "Total number of failed requests to the geocoding/directions provider.",
		}, []string{"provider", "operation"}),
		RoutingFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "place_search_routing_failures_total",
			Help: "Candidates reported without route metrics because routing failed.",
		}),
		SearchResults: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "place_search_results_per_search",
			Help:    "Number of result records returned per search.",
			Buckets: []float64{0, 1, 2, 5, 10},
		}),
		ReportsRendered: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "place_search_reports_total",
			Help: "Report generation attempts by outcome.",
		}, []string{"status"}),
	}
}

// ObserveUpstream records one provider call. Safe on a nil *Metrics.
func (m *Metrics) ObserveUpstream(provider, operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.UpstreamSeconds.WithLabelValues(provider, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.UpstreamErrors.WithLabelValues(provider, operation).Inc()
	}
}

func (m *Metrics) RoutingFailed() {
	if m == nil {
		return
	}
	m.RoutingFailures.Inc()
}

func (m *Metrics) SearchCompleted(results int) {
	if m == nil {
		return
	}
	m.SearchResults.Observe(float64(results))
}

func (m *Metrics) ReportRendered(status string) {
	if m == nil {
		return
	}
	m.ReportsRendered.WithLabelValues(status).Inc()
}
