package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Upstream outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeHTTPError   = "http_error"
	OutcomeTransport   = "transport_error"
	OutcomeDecodeError = "decode_error"
)

// Action run results.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apod_upstream_requests_total",
			Help: "Total number of requests sent to the APOD API.",
		},
		[]string{"outcome"},
	)

	UpstreamRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "apod_upstream_request_duration_seconds",
			Help:    "Duration of requests sent to the APOD API.",
			Buckets: prometheus.DefBuckets,
		},
	)

	ActionRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apod_action_runs_total",
			Help: "Total number of action runs by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		ActionRunsTotal,
	)
}
