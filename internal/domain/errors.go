package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Not-found errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgClaimNotFound      = "claim not found"
	ErrMsgBetNotFound        = "bet not found"
	ErrMsgResolutionNotFound = "resolution not found"

	// Validation errors
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgEmptyClaimText    = "claim text must not be empty"
	ErrMsgClaimTextTooLong  = "claim text exceeds maximum length"
	ErrMsgExpiryNotInFuture = "expiry must be in the future"
	ErrMsgAmountNotPositive = "bet amount must be positive"
	ErrMsgEmptySourceLink   = "source link must not be empty"

	// State errors
	ErrMsgClaimNotActive = "claim is no longer active"

	// Balance errors
	ErrMsgInsufficientBalance = "insufficient token balance"

	// Conflict errors
	ErrMsgAlreadyVoted  = "user already voted on this resolution"
	ErrMsgUsernameTaken = "username already taken"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Not-found errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrClaimNotFound      = errors.New(ErrMsgClaimNotFound)
	ErrBetNotFound        = errors.New(ErrMsgBetNotFound)
	ErrResolutionNotFound = errors.New(ErrMsgResolutionNotFound)

	// Validation errors
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrEmptyClaimText    = errors.New(ErrMsgEmptyClaimText)
	ErrClaimTextTooLong  = errors.New(ErrMsgClaimTextTooLong)
	ErrExpiryNotInFuture = errors.New(ErrMsgExpiryNotInFuture)
	ErrAmountNotPositive = errors.New(ErrMsgAmountNotPositive)
	ErrEmptySourceLink   = errors.New(ErrMsgEmptySourceLink)

	// State errors
	ErrClaimNotActive = errors.New(ErrMsgClaimNotActive)

	// Balance errors
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)

	// Conflict errors
	ErrAlreadyVoted  = errors.New(ErrMsgAlreadyVoted)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)
)
