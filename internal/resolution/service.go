package resolution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vidyut-veedgav/Call-Beta/internal/concurrency"
	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
	"github.com/vidyut-veedgav/Call-Beta/internal/logger"
	"github.com/vidyut-veedgav/Call-Beta/internal/metrics"
	"github.com/vidyut-veedgav/Call-Beta/internal/repository"
)

// Service defines the interface for resolution voting operations
type Service interface {
	ProposeResolution(ctx context.Context, claimID, proposedBy, sourceLink, sourceDescription string, outcome *bool) (*domain.Resolution, error)
	ListResolutions(ctx context.Context, claimID string) ([]domain.Resolution, error)
	Vote(ctx context.Context, resolutionID, userID string, isValid bool) (*domain.ResolutionVote, error)
}

// Repository is the storage surface the voting engine needs.
type Repository interface {
	repository.Claim
	repository.Resolution
}

type service struct {
	repo  Repository
	locks *concurrency.LockManager
	now   func() time.Time
}

// NewService creates a new resolution voting service
func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		locks: concurrency.NewLockManager(),
		now:   time.Now,
	}
}

// ProposeResolution records a proposed evidence source for a claim with an
// empty tally. Any user may propose; the claim must exist.
func (s *service) ProposeResolution(ctx context.Context, claimID, proposedBy, sourceLink, sourceDescription string, outcome *bool) (*domain.Resolution, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgProposeCalled, "claim_id", claimID, "proposed_by", proposedBy)

	if strings.TrimSpace(sourceLink) == "" {
		return nil, domain.ErrEmptySourceLink
	}

	claim, err := s.repo.GetClaim(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetClaim, err)
	}
	if claim == nil {
		return nil, domain.ErrClaimNotFound
	}

	resolution := &domain.Resolution{
		ID:                uuid.NewString(),
		ClaimID:           claimID,
		ProposedBy:        proposedBy,
		SourceLink:        sourceLink,
		SourceDescription: sourceDescription,
		Outcome:           outcome,
		CreatedAt:         s.now(),
	}

	if err := s.repo.CreateResolution(ctx, resolution); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateResolution, err)
	}

	metrics.ResolutionsProposed.Inc()
	log.Info(LogMsgResolutionProposed, "resolution_id", resolution.ID)
	return resolution, nil
}

func (s *service) ListResolutions(ctx context.Context, claimID string) ([]domain.Resolution, error) {
	resolutions, err := s.repo.GetResolutionsByClaim(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListResolutions, err)
	}
	return resolutions, nil
}

// Vote records one user's valid/invalid judgment and bumps the tally. The
// existence check and the insert run under the resolution's lock, so a
// duplicate vote always fails with domain.ErrAlreadyVoted and never touches
// the tally. All votes weigh equally; FinalDecision is never set here.
func (s *service) Vote(ctx context.Context, resolutionID, userID string, isValid bool) (*domain.ResolutionVote, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgVoteCalled, "resolution_id", resolutionID, "user_id", userID, "is_valid", isValid)

	mu := s.locks.GetLock("resolution:" + resolutionID)
	mu.Lock()
	defer mu.Unlock()

	resolution, err := s.repo.GetResolution(ctx, resolutionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetResolution, err)
	}
	if resolution == nil {
		return nil, domain.ErrResolutionNotFound
	}

	existing, err := s.repo.GetVoteByResolutionAndUser(ctx, resolutionID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetVote, err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyVoted
	}

	vote := &domain.ResolutionVote{
		ID:           uuid.NewString(),
		ResolutionID: resolutionID,
		UserID:       userID,
		IsValid:      isValid,
		CreatedAt:    s.now(),
	}

	updated := *resolution
	if isValid {
		updated.VotesValid++
	} else {
		updated.VotesInvalid++
	}

	if err := s.repo.CastVoteAtomic(ctx, vote, updated); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCastVote, err)
	}

	label := VoteInvalid
	if isValid {
		label = VoteValid
	}
	metrics.ResolutionVotesCast.WithLabelValues(label).Inc()

	log.Info(LogMsgVoteRecorded, "vote_id", vote.ID, "resolution_id", resolutionID)
	return vote, nil
}
