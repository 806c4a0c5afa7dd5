package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vidyut-veedgav/Call-Beta/internal/claim"
)

// ClaimHandler serves claim registry endpoints
type ClaimHandler struct {
	service claim.Service
}

// NewClaimHandler creates a new ClaimHandler
func NewClaimHandler(service claim.Service) *ClaimHandler {
	return &ClaimHandler{service: service}
}

// CreateClaimRequest is the body for creating a claim
type CreateClaimRequest struct {
	Text            string    `json:"text" validate:"required,max=280"`
	CreatorID       string    `json:"creator_id" validate:"required"`
	CreatorUsername string    `json:"creator_username" validate:"required"`
	ExpiresAt       time.Time `json:"expires_at" validate:"required"`
}

func (h *ClaimHandler) HandleCreateClaim(w http.ResponseWriter, r *http.Request) {
	var req CreateClaimRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create claim"); err != nil {
		return
	}

	created, err := h.service.CreateClaim(r.Context(), req.Text, req.CreatorID, req.CreatorUsername, req.ExpiresAt)
	if err != nil {
		respondServiceError(w, r, "create claim", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *ClaimHandler) HandleGetClaim(w http.ResponseWriter, r *http.Request) {
	claimID := chi.URLParam(r, "id")

	found, err := h.service.GetClaim(r.Context(), claimID)
	if err != nil {
		respondServiceError(w, r, "get claim", err)
		return
	}

	respondJSON(w, http.StatusOK, found)
}

func (h *ClaimHandler) HandleListClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.service.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, r, "list claims", err)
		return
	}

	respondJSON(w, http.StatusOK, claims)
}

func (h *ClaimHandler) HandleListActiveClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.service.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, r, "list active claims", err)
		return
	}

	respondJSON(w, http.StatusOK, claims)
}

func (h *ClaimHandler) HandleListExpiredClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.service.ListExpired(r.Context())
	if err != nil {
		respondServiceError(w, r, "list expired claims", err)
		return
	}

	respondJSON(w, http.StatusOK, claims)
}

// ExpireClaimsResponse reports how many claims the sweep transitioned.
type ExpireClaimsResponse struct {
	Expired int `json:"expired"`
}

func (h *ClaimHandler) HandleExpireOverdue(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.ExpireOverdue(r.Context())
	if err != nil {
		respondServiceError(w, r, "expire overdue claims", err)
		return
	}

	respondJSON(w, http.StatusOK, ExpireClaimsResponse{Expired: count})
}
