package handler

import (
	"net/http"
	"strconv"

	"github.com/vidyut-veedgav/Call-Beta/internal/logger"
	"github.com/vidyut-veedgav/Call-Beta/internal/ranking"
	"github.com/vidyut-veedgav/Call-Beta/internal/user"
)

// UserHandler serves user registration, lookup and leaderboard endpoints
type UserHandler struct {
	userService    user.Service
	rankingService ranking.Service
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService user.Service, rankingService ranking.Service) *UserHandler {
	return &UserHandler{userService: userService, rankingService: rankingService}
}

// RegisterUserRequest is the body for registering a user
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=32"`
}

func (h *UserHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}

	created, err := h.userService.RegisterUser(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, "register user", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	current, err := h.userService.CurrentUser(r.Context())
	if err != nil {
		respondServiceError(w, r, "get current user", err)
		return
	}

	respondJSON(w, http.StatusOK, current)
}

func (h *UserHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(ranking.DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		logger.FromContext(r.Context()).Warn("Invalid leaderboard limit", "limit", limitStr)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	users, err := h.rankingService.TopUsers(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "get leaderboard", err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}
