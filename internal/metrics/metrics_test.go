package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"daycast/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.DaysServed.WithLabelValues(metrics.OutcomeOK).Inc()
	m.HTTPRequests.WithLabelValues("/ping", "200").Inc()

	count, err := testutil.GatherAndCount(reg, "daycast_day_summaries_total", "daycast_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		metrics.NewMetrics(reg)
	})
}

func TestInstrumentTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := metrics.NewMetrics(prometheus.NewRegistry())
	client := &http.Client{Transport: m.InstrumentTransport(nil)}

	for _, path := range []string{"/ok", "/ok", "/missing"} {
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("404")), 0)
}
