package repository

import (
	"context"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// Resolution defines the interface for resolution and resolution-vote
// persistence.
//
// CastVoteAtomic inserts the vote and writes the resolution's updated tally
// in one atomic unit; it returns domain.ErrAlreadyVoted if a vote for the
// same (resolution, user) pair already exists.
type Resolution interface {
	CreateResolution(ctx context.Context, resolution *domain.Resolution) error
	GetResolution(ctx context.Context, resolutionID string) (*domain.Resolution, error)
	GetResolutionsByClaim(ctx context.Context, claimID string) ([]domain.Resolution, error)
	UpdateResolution(ctx context.Context, resolution domain.Resolution) error

	GetVotesByResolution(ctx context.Context, resolutionID string) ([]domain.ResolutionVote, error)
	GetVoteByResolutionAndUser(ctx context.Context, resolutionID, userID string) (*domain.ResolutionVote, error)
	CastVoteAtomic(ctx context.Context, vote *domain.ResolutionVote, resolution domain.Resolution) error
}
