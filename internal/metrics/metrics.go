// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retake_submissions_total",
			Help: "Total number of saved retake submissions",
		},
		[]string{"intake"},
	)

	RankingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retake_ranking_requests_total",
			Help: "Total number of ranking report requests",
		},
		[]string{"phone_visible"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
