package claim

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
	"github.com/vidyut-veedgav/Call-Beta/internal/logger"
	"github.com/vidyut-veedgav/Call-Beta/internal/metrics"
	"github.com/vidyut-veedgav/Call-Beta/internal/repository"
)

// Service defines the interface for claim registry operations
type Service interface {
	CreateClaim(ctx context.Context, text, creatorID, creatorUsername string, expiresAt time.Time) (*domain.Claim, error)
	GetClaim(ctx context.Context, claimID string) (*domain.Claim, error)
	ListAll(ctx context.Context) ([]domain.Claim, error)
	ListActive(ctx context.Context) ([]domain.Claim, error)
	ListExpired(ctx context.Context) ([]domain.Claim, error)
	ExpireOverdue(ctx context.Context) (int, error)
}

type service struct {
	repo repository.Claim
	now  func() time.Time
}

// NewService creates a new claim registry service
func NewService(repo repository.Claim) Service {
	return &service{repo: repo, now: time.Now}
}

// CreateClaim registers a new open claim with zeroed aggregates.
func (s *service) CreateClaim(ctx context.Context, text, creatorID, creatorUsername string, expiresAt time.Time) (*domain.Claim, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateClaimCalled, "creator_id", creatorID, "expires_at", expiresAt)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyClaimText
	}
	if len(text) > MaxTextLength {
		return nil, fmt.Errorf("%w (max %d)", domain.ErrClaimTextTooLong, MaxTextLength)
	}
	if !expiresAt.After(s.now()) {
		return nil, domain.ErrExpiryNotInFuture
	}

	claim := &domain.Claim{
		ID:              uuid.NewString(),
		Text:            text,
		CreatorID:       creatorID,
		CreatorUsername: creatorUsername,
		ExpiresAt:       expiresAt,
		Status:          domain.ClaimStatusOpen,
		CreatedAt:       s.now(),
	}

	if err := s.repo.CreateClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateClaim, err)
	}

	metrics.ClaimsCreated.Inc()
	log.Info(LogMsgClaimCreated, "claim_id", claim.ID)
	return claim, nil
}

func (s *service) GetClaim(ctx context.Context, claimID string) (*domain.Claim, error) {
	claim, err := s.repo.GetClaim(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetClaim, err)
	}
	if claim == nil {
		return nil, domain.ErrClaimNotFound
	}
	return claim, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Claim, error) {
	claims, err := s.repo.GetAllClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListClaims, err)
	}
	return claims, nil
}

// ListActive returns claims that still accept bets. The filter is evaluated
// against the current clock on every call; stored status alone is never
// trusted for expiry.
func (s *service) ListActive(ctx context.Context) ([]domain.Claim, error) {
	claims, err := s.repo.GetActiveClaims(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListClaims, err)
	}
	return claims, nil
}

func (s *service) ListExpired(ctx context.Context) ([]domain.Claim, error) {
	claims, err := s.repo.GetExpiredClaims(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListClaims, err)
	}
	return claims, nil
}

// ExpireOverdue writes status=expired for every open claim whose deadline
// has passed, so the stored status catches up with the derived fact. Returns
// the number of claims transitioned.
func (s *service) ExpireOverdue(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgExpireOverdueCalled)

	now := s.now()
	claims, err := s.repo.GetExpiredClaims(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToListClaims, err)
	}

	expired := 0
	for _, c := range claims {
		if c.Status != domain.ClaimStatusOpen {
			continue
		}
		c.Status = domain.ClaimStatusExpired
		if err := s.repo.UpdateClaim(ctx, c); err != nil {
			return expired, fmt.Errorf("%s: %w", ErrContextFailedToUpdateClaim, err)
		}
		metrics.ClaimsExpired.Inc()
		expired++
	}

	log.Info(LogMsgClaimsExpired, "count", expired)
	return expired, nil
}
