package claim

// MaxTextLength bounds the proposition text of a claim.
const MaxTextLength = 280

// Log message constants
const (
	LogMsgCreateClaimCalled   = "CreateClaim called"
	LogMsgClaimCreated        = "Claim created"
	LogMsgExpireOverdueCalled = "ExpireOverdue called"
	LogMsgClaimsExpired       = "Overdue claims transitioned to expired"
)

// Error context constants
const (
	ErrContextFailedToCreateClaim = "failed to create claim"
	ErrContextFailedToGetClaim    = "failed to get claim"
	ErrContextFailedToListClaims  = "failed to list claims"
	ErrContextFailedToUpdateClaim = "failed to update claim"
)
