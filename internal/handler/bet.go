package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vidyut-veedgav/Call-Beta/internal/market"
)

// BetHandler serves betting market endpoints
type BetHandler struct {
	service market.Service
}

// NewBetHandler creates a new BetHandler
func NewBetHandler(service market.Service) *BetHandler {
	return &BetHandler{service: service}
}

// PlaceBetRequest is the body for placing a bet. Position: true = YES,
// false = NO.
type PlaceBetRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	ClaimID  string `json:"claim_id" validate:"required"`
	Position *bool  `json:"position" validate:"required"`
	Amount   int    `json:"amount" validate:"required,gt=0"`
}

func (h *BetHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	bet, err := h.service.PlaceBet(r.Context(), req.UserID, req.ClaimID, *req.Position, req.Amount)
	if err != nil {
		respondServiceError(w, r, "place bet", err)
		return
	}

	respondJSON(w, http.StatusCreated, bet)
}

func (h *BetHandler) HandleGetUserBets(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	bets, err := h.service.BetsByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "get user bets", err)
		return
	}

	respondJSON(w, http.StatusOK, bets)
}

func (h *BetHandler) HandleGetClaimBets(w http.ResponseWriter, r *http.Request) {
	claimID := chi.URLParam(r, "claimID")

	bets, err := h.service.BetsByClaim(r.Context(), claimID)
	if err != nil {
		respondServiceError(w, r, "get claim bets", err)
		return
	}

	respondJSON(w, http.StatusOK, bets)
}
