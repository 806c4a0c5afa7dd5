package market

// Log message constants
const (
	LogMsgPlaceBetCalled = "PlaceBet called"
	LogMsgBetPlaced      = "Bet placed"
)

// Error context constants
const (
	ErrContextFailedToGetClaim    = "failed to get claim"
	ErrContextFailedToGetUser     = "failed to get user"
	ErrContextFailedToGetBets     = "failed to get bets"
	ErrContextFailedToApplyBet    = "failed to apply bet placement"
	ErrContextFailedToListByUser  = "failed to list bets by user"
	ErrContextFailedToListByClaim = "failed to list bets by claim"
)

// Bet rejection reasons (metric label values)
const (
	RejectReasonClaimNotFound = "claim_not_found"
	RejectReasonUserNotFound  = "user_not_found"
	RejectReasonNotActive     = "claim_not_active"
	RejectReasonInvalidAmount = "invalid_amount"
	RejectReasonInsufficient  = "insufficient_balance"
)
