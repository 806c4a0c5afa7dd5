package memory

import (
	"context"
	"sort"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

func (s *Store) CreateResolution(ctx context.Context, resolution *domain.Resolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolutions[resolution.ID] = *resolution
	return nil
}

func (s *Store) GetResolution(ctx context.Context, resolutionID string) (*domain.Resolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.resolutions[resolutionID]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *Store) GetResolutionsByClaim(ctx context.Context, claimID string) ([]domain.Resolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var resolutions []domain.Resolution
	for _, r := range s.resolutions {
		if r.ClaimID == claimID {
			resolutions = append(resolutions, r)
		}
	}
	sort.SliceStable(resolutions, func(i, j int) bool {
		return resolutions[i].CreatedAt.After(resolutions[j].CreatedAt)
	})
	return resolutions, nil
}

func (s *Store) UpdateResolution(ctx context.Context, resolution domain.Resolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resolutions[resolution.ID]; !ok {
		return domain.ErrResolutionNotFound
	}
	s.resolutions[resolution.ID] = resolution
	return nil
}

func (s *Store) GetVotesByResolution(ctx context.Context, resolutionID string) ([]domain.ResolutionVote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var votes []domain.ResolutionVote
	for _, v := range s.resolutionVotes {
		if v.ResolutionID == resolutionID {
			votes = append(votes, v)
		}
	}
	return votes, nil
}

func (s *Store) GetVoteByResolutionAndUser(ctx context.Context, resolutionID, userID string) (*domain.ResolutionVote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v := s.findVote(resolutionID, userID); v != nil {
		vote := *v
		return &vote, nil
	}
	return nil, nil
}

// CastVoteAtomic inserts the vote and the updated tally in one critical
// section. The duplicate check is repeated under the write lock so two
// concurrent votes by the same user cannot both pass it.
func (s *Store) CastVoteAtomic(ctx context.Context, vote *domain.ResolutionVote, resolution domain.Resolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resolutions[resolution.ID]; !ok {
		return domain.ErrResolutionNotFound
	}
	if s.findVote(vote.ResolutionID, vote.UserID) != nil {
		return domain.ErrAlreadyVoted
	}

	s.resolutionVotes[vote.ID] = *vote
	s.resolutions[resolution.ID] = resolution
	return nil
}

// findVote must be called with at least a read lock held.
func (s *Store) findVote(resolutionID, userID string) *domain.ResolutionVote {
	for _, v := range s.resolutionVotes {
		if v.ResolutionID == resolutionID && v.UserID == userID {
			return &v
		}
	}
	return nil
}
