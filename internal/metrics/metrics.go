package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for DaysServed.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeNetworkError    = "network_error"
	OutcomeNoData          = "no_data"
	OutcomeInternal        = "internal"
)

type Metrics struct {
	UpstreamRequests *prometheus.CounterVec
	UpstreamSeconds  *prometheus.HistogramVec
	DaysServed       *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		UpstreamRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "daycast_upstream_requests_total",
			Help: "Total number of requests sent to the forecast API, by status code.",
		}, []string{"code"}),
		UpstreamSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "daycast_upstream_request_duration_seconds",
			Help:    "Duration of requests to the forecast API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"code"}),
		DaysServed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "daycast_day_summaries_total",
			Help: "Total number of day summary requests, by outcome.",
		}, []string{"outcome"}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "daycast_http_requests_total",
			Help: "Total number of HTTP requests handled, by route and status.",
		}, []string{"route", "status"}),
	}
}

// InstrumentTransport wraps next so every upstream round trip is counted and timed.
func (m *Metrics) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(m.UpstreamRequests,
		promhttp.InstrumentRoundTripperDuration(m.UpstreamSeconds, next),
	)
}
