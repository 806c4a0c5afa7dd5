package resolution

// Log message constants
const (
	LogMsgProposeCalled      = "ProposeResolution called"
	LogMsgResolutionProposed = "Resolution proposed"
	LogMsgVoteCalled         = "Vote called"
	LogMsgVoteRecorded       = "Vote recorded"
)

// Error context constants
const (
	ErrContextFailedToGetClaim         = "failed to get claim"
	ErrContextFailedToCreateResolution = "failed to create resolution"
	ErrContextFailedToGetResolution    = "failed to get resolution"
	ErrContextFailedToListResolutions  = "failed to list resolutions"
	ErrContextFailedToGetVote          = "failed to get vote"
	ErrContextFailedToCastVote         = "failed to cast vote"
)

// Vote metric label values
const (
	VoteValid   = "valid"
	VoteInvalid = "invalid"
)
