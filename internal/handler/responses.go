package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgClaimNotFoundError      = "Claim not found"
	ErrMsgResolutionNotFoundError = "Resolution not found"

	ErrMsgClaimNotActiveError      = "Claim is no longer active"
	ErrMsgInsufficientBalanceError = "Insufficient token balance"
	ErrMsgAlreadyVotedError        = "You have already voted on this resolution"
	ErrMsgUsernameTakenError       = "Username is already taken"

	ErrMsgEmptyClaimTextError    = "Claim text must not be empty"
	ErrMsgClaimTextTooLongError  = "Claim text is too long"
	ErrMsgExpiryNotInFutureError = "Expiry must be in the future"
	ErrMsgAmountNotPositiveError = "Bet amount must be positive"
	ErrMsgEmptySourceLinkError   = "Source link must not be empty"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// NotFound -> 404, validation -> 400, invalid state and balance -> 400,
// duplicate vote -> 409, anything unrecognized -> 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrClaimNotFound):
		return http.StatusNotFound, ErrMsgClaimNotFoundError
	case errors.Is(err, domain.ErrResolutionNotFound):
		return http.StatusNotFound, ErrMsgResolutionNotFoundError
	case errors.Is(err, domain.ErrClaimNotActive):
		return http.StatusBadRequest, ErrMsgClaimNotActiveError
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, ErrMsgInsufficientBalanceError
	case errors.Is(err, domain.ErrAlreadyVoted):
		return http.StatusConflict, ErrMsgAlreadyVotedError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrEmptyClaimText):
		return http.StatusBadRequest, ErrMsgEmptyClaimTextError
	case errors.Is(err, domain.ErrClaimTextTooLong):
		return http.StatusBadRequest, ErrMsgClaimTextTooLongError
	case errors.Is(err, domain.ErrExpiryNotInFuture):
		return http.StatusBadRequest, ErrMsgExpiryNotInFutureError
	case errors.Is(err, domain.ErrAmountNotPositive):
		return http.StatusBadRequest, ErrMsgAmountNotPositiveError
	case errors.Is(err, domain.ErrEmptySourceLink):
		return http.StatusBadRequest, ErrMsgEmptySourceLinkError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
