package repository

import (
	"context"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// Bet defines the interface for bet persistence.
//
// PlaceBetAtomic applies a bet insert together with the debited user and the
// updated claim aggregates as one atomic unit: either all three land or none
// do. Concurrent placements on the same claim or user must not observe a
// partially applied triad.
type Bet interface {
	GetBet(ctx context.Context, betID string) (*domain.Bet, error)
	GetBetsByUser(ctx context.Context, userID string) ([]domain.Bet, error)
	GetBetsByClaim(ctx context.Context, claimID string) ([]domain.Bet, error)
	GetBetsByClaimAndUser(ctx context.Context, claimID, userID string) ([]domain.Bet, error)
	PlaceBetAtomic(ctx context.Context, bet *domain.Bet, user domain.User, claim domain.Claim) error
	UpdateBet(ctx context.Context, bet domain.Bet) error
}
