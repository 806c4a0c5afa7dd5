package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameClaimsCreated       = "claims_created_total"
	MetricNameClaimsExpired       = "claims_expired_total"
	MetricNameBetsPlaced          = "bets_placed_total"
	MetricNameTokensStaked        = "tokens_staked_total"
	MetricNameBetsRejected        = "bets_rejected_total"
	MetricNameResolutionsProposed = "resolutions_proposed_total"
	MetricNameResolutionVotesCast = "resolution_votes_cast_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextClaimsCreated       = "Total number of claims created"
	HelpTextClaimsExpired       = "Total number of claims transitioned to expired by the sweep"
	HelpTextBetsPlaced          = "Total number of accepted bets"
	HelpTextTokensStaked        = "Total tokens staked across accepted bets"
	HelpTextBetsRejected        = "Total number of rejected bet placements"
	HelpTextResolutionsProposed = "Total number of resolution sources proposed"
	HelpTextResolutionVotesCast = "Total number of resolution votes cast"
)

// Metric label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelPosition = "position"
	LabelReason   = "reason"
	LabelVote     = "vote"
)

// Position label values
const (
	PositionYes = "yes"
	PositionNo  = "no"
)

// HTTPLatencyBuckets are the histogram buckets for request latency (seconds).
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
