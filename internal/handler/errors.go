package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query/path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Claim operation error messages
	ErrMsgGetClaimsFailed    = "Failed to get claims"
	ErrMsgCreateClaimFailed  = "Failed to create claim"
	ErrMsgExpireClaimsFailed = "Failed to expire claims"

	// Bet operation error messages
	ErrMsgPlaceBetFailed = "Failed to place bet"
	ErrMsgGetBetsFailed  = "Failed to get bets"

	// Resolution operation error messages
	ErrMsgCreateResolutionFailed = "Failed to create resolution"
	ErrMsgGetResolutionsFailed   = "Failed to get resolutions"
	ErrMsgVoteFailed             = "Failed to vote on resolution"

	// User operation error messages
	ErrMsgRegisterUserFailed   = "Failed to register user"
	ErrMsgGetUserFailed        = "Failed to get user"
	ErrMsgGetLeaderboardFailed = "Failed to get leaderboard"
)
