package memory

import (
	"context"
	"sort"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

func (s *Store) GetBet(ctx context.Context, betID string) (*domain.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.bets[betID]; ok {
		return &b, nil
	}
	return nil, nil
}

func (s *Store) GetBetsByUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bets := s.collectBets(func(b domain.Bet) bool { return b.UserID == userID })
	sort.SliceStable(bets, func(i, j int) bool {
		return bets[i].CreatedAt.After(bets[j].CreatedAt)
	})
	return bets, nil
}

func (s *Store) GetBetsByClaim(ctx context.Context, claimID string) ([]domain.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectBets(func(b domain.Bet) bool { return b.ClaimID == claimID }), nil
}

func (s *Store) GetBetsByClaimAndUser(ctx context.Context, claimID, userID string) ([]domain.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectBets(func(b domain.Bet) bool {
		return b.ClaimID == claimID && b.UserID == userID
	}), nil
}

// PlaceBetAtomic inserts the bet and writes the debited user and updated
// claim aggregates under one critical section. Referenced rows are
// re-checked under the write lock so a failure leaves the store untouched.
func (s *Store) PlaceBetAtomic(ctx context.Context, bet *domain.Bet, user domain.User, claim domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if _, ok := s.claims[claim.ID]; !ok {
		return domain.ErrClaimNotFound
	}

	s.bets[bet.ID] = *bet
	s.users[user.ID] = user
	s.claims[claim.ID] = claim
	return nil
}

func (s *Store) UpdateBet(ctx context.Context, bet domain.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bets[bet.ID]; !ok {
		return domain.ErrBetNotFound
	}
	s.bets[bet.ID] = bet
	return nil
}

// collectBets must be called with at least a read lock held.
func (s *Store) collectBets(keep func(domain.Bet) bool) []domain.Bet {
	var bets []domain.Bet
	for _, b := range s.bets {
		if keep(b) {
			bets = append(bets, b)
		}
	}
	return bets
}
