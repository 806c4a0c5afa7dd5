package repository

import (
	"context"
	"time"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// Claim defines the interface for claim persistence.
// List methods return claims most-recently-created first.
type Claim interface {
	CreateClaim(ctx context.Context, claim *domain.Claim) error
	GetClaim(ctx context.Context, claimID string) (*domain.Claim, error)
	GetAllClaims(ctx context.Context) ([]domain.Claim, error)
	GetActiveClaims(ctx context.Context, now time.Time) ([]domain.Claim, error)
	GetExpiredClaims(ctx context.Context, now time.Time) ([]domain.Claim, error)
	UpdateClaim(ctx context.Context, claim domain.Claim) error
}
