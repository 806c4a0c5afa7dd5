package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vidyut-veedgav/Call-Beta/internal/resolution"
)

// ResolutionHandler serves resolution voting endpoints
type ResolutionHandler struct {
	service resolution.Service
}

// NewResolutionHandler creates a new ResolutionHandler
func NewResolutionHandler(service resolution.Service) *ResolutionHandler {
	return &ResolutionHandler{service: service}
}

// ProposeResolutionRequest is the body for proposing an evidence source.
// Outcome is what the source asserts about the claim, if stated.
type ProposeResolutionRequest struct {
	ClaimID           string `json:"claim_id" validate:"required"`
	ProposedBy        string `json:"proposed_by" validate:"required"`
	SourceLink        string `json:"source_link" validate:"required,url"`
	SourceDescription string `json:"source_description"`
	Outcome           *bool  `json:"outcome"`
}

func (h *ResolutionHandler) HandleProposeResolution(w http.ResponseWriter, r *http.Request) {
	var req ProposeResolutionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Propose resolution"); err != nil {
		return
	}

	created, err := h.service.ProposeResolution(r.Context(), req.ClaimID, req.ProposedBy, req.SourceLink, req.SourceDescription, req.Outcome)
	if err != nil {
		respondServiceError(w, r, "propose resolution", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *ResolutionHandler) HandleListResolutions(w http.ResponseWriter, r *http.Request) {
	claimID := chi.URLParam(r, "claimID")

	resolutions, err := h.service.ListResolutions(r.Context(), claimID)
	if err != nil {
		respondServiceError(w, r, "list resolutions", err)
		return
	}

	respondJSON(w, http.StatusOK, resolutions)
}

// VoteRequest is the body for casting a valid/invalid vote on a resolution
type VoteRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	IsValid *bool  `json:"is_valid" validate:"required"`
}

func (h *ResolutionHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	resolutionID := chi.URLParam(r, "resolutionID")

	var req VoteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Vote on resolution"); err != nil {
		return
	}

	vote, err := h.service.Vote(r.Context(), resolutionID, req.UserID, *req.IsValid)
	if err != nil {
		respondServiceError(w, r, "vote on resolution", err)
		return
	}

	respondJSON(w, http.StatusCreated, vote)
}
