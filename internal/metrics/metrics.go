package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ClaimsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaimsCreated,
			Help: HelpTextClaimsCreated,
		},
	)

	ClaimsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaimsExpired,
			Help: HelpTextClaimsExpired,
		},
	)

	BetsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsPlaced,
			Help: HelpTextBetsPlaced,
		},
		[]string{LabelPosition},
	)

	TokensStaked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokensStaked,
			Help: HelpTextTokensStaked,
		},
		[]string{LabelPosition},
	)

	BetsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsRejected,
			Help: HelpTextBetsRejected,
		},
		[]string{LabelReason},
	)

	ResolutionsProposed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResolutionsProposed,
			Help: HelpTextResolutionsProposed,
		},
	)

	ResolutionVotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolutionVotesCast,
			Help: HelpTextResolutionVotesCast,
		},
		[]string{LabelVote},
	)
)

// PositionLabel maps a bet position to its metric label value.
func PositionLabel(position bool) string {
	if position {
		return PositionYes
	}
	return PositionNo
}
