package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyut-veedgav/Call-Beta/internal/database/memory"
	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
	"github.com/vidyut-veedgav/Call-Beta/internal/market"
)

func setupBetRouter(t *testing.T) (*chi.Mux, *memory.Store) {
	t.Helper()
	InitValidator()

	store := memory.NewStore()
	h := NewBetHandler(market.NewService(store))

	r := chi.NewRouter()
	r.Post("/bets", h.HandlePlaceBet)
	r.Get("/users/{userID}/bets", h.HandleGetUserBets)
	return r, store
}

func TestHandlePlaceBet(t *testing.T) {
	router, store := setupBetRouter(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{ID: "u1", Username: "alice", TokenBalance: 500}))
	require.NoError(t, store.CreateClaim(ctx, &domain.Claim{
		ID: "c1", Text: "claim", Status: domain.ClaimStatusOpen, ExpiresAt: time.Now().Add(time.Hour),
	}))

	body, _ := json.Marshal(map[string]interface{}{
		"user_id":  "u1",
		"claim_id": "c1",
		"position": true,
		"amount":   100,
	})
	req := httptest.NewRequest(http.MethodPost, "/bets", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var bet domain.Bet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bet))
	assert.Equal(t, "50", bet.Odds)
	assert.Equal(t, 100, bet.Amount)
	assert.True(t, bet.Position)
}

func TestHandlePlaceBet_ValidationFailure(t *testing.T) {
	router, _ := setupBetRouter(t)

	// Missing claim_id and non-positive amount.
	body, _ := json.Marshal(map[string]interface{}{
		"user_id":  "u1",
		"position": true,
		"amount":   0,
	})
	req := httptest.NewRequest(http.MethodPost, "/bets", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "claimid")
}

func TestHandlePlaceBet_InsufficientBalance(t *testing.T) {
	router, store := setupBetRouter(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{ID: "u1", Username: "alice", TokenBalance: 10}))
	require.NoError(t, store.CreateClaim(ctx, &domain.Claim{
		ID: "c1", Text: "claim", Status: domain.ClaimStatusOpen, ExpiresAt: time.Now().Add(time.Hour),
	}))

	body, _ := json.Marshal(map[string]interface{}{
		"user_id":  "u1",
		"claim_id": "c1",
		"position": false,
		"amount":   100,
	})
	req := httptest.NewRequest(http.MethodPost, "/bets", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgInsufficientBalanceError, resp.Error)
}

func TestHandleGetUserBets(t *testing.T) {
	router, store := setupBetRouter(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &domain.User{ID: "u1", Username: "alice", TokenBalance: 500}))
	require.NoError(t, store.CreateClaim(ctx, &domain.Claim{
		ID: "c1", Text: "claim", Status: domain.ClaimStatusOpen, ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, store.PlaceBetAtomic(ctx,
		&domain.Bet{ID: "b1", UserID: "u1", ClaimID: "c1", Amount: 50, Odds: "50"},
		domain.User{ID: "u1", Username: "alice", TokenBalance: 450},
		domain.Claim{ID: "c1", TotalYesBets: 1, TotalYesStake: 50, TotalBettors: 1}))

	req := httptest.NewRequest(http.MethodGet, "/users/u1/bets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var bets []domain.Bet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bets))
	require.Len(t, bets, 1)
	assert.Equal(t, "b1", bets[0].ID)
}
