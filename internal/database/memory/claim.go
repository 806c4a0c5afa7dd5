package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

func (s *Store) CreateClaim(ctx context.Context, claim *domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.claims[claim.ID] = *claim
	return nil
}

func (s *Store) GetClaim(ctx context.Context, claimID string) (*domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.claims[claimID]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *Store) GetAllClaims(ctx context.Context) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortNewestFirst(s.collectClaims(func(domain.Claim) bool { return true })), nil
}

// GetActiveClaims filters live against the supplied clock; there is no
// cached "open" index, so results always agree with wall-clock expiry.
func (s *Store) GetActiveClaims(ctx context.Context, now time.Time) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortNewestFirst(s.collectClaims(func(c domain.Claim) bool {
		return c.IsActive(now)
	})), nil
}

func (s *Store) GetExpiredClaims(ctx context.Context, now time.Time) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortNewestFirst(s.collectClaims(func(c domain.Claim) bool {
		return c.Status == domain.ClaimStatusExpired || !c.ExpiresAt.After(now)
	})), nil
}

func (s *Store) UpdateClaim(ctx context.Context, claim domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claims[claim.ID]; !ok {
		return domain.ErrClaimNotFound
	}
	s.claims[claim.ID] = claim
	return nil
}

// collectClaims must be called with at least a read lock held.
func (s *Store) collectClaims(keep func(domain.Claim) bool) []domain.Claim {
	claims := make([]domain.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		if keep(c) {
			claims = append(claims, c)
		}
	}
	return claims
}

func sortNewestFirst(claims []domain.Claim) []domain.Claim {
	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].CreatedAt.After(claims[j].CreatedAt)
	})
	return claims
}
