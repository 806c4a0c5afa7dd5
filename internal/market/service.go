package market

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vidyut-veedgav/Call-Beta/internal/concurrency"
	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
	"github.com/vidyut-veedgav/Call-Beta/internal/logger"
	"github.com/vidyut-veedgav/Call-Beta/internal/metrics"
	"github.com/vidyut-veedgav/Call-Beta/internal/repository"
)

// Service defines the interface for betting market operations
type Service interface {
	PlaceBet(ctx context.Context, userID, claimID string, position bool, amount int) (*domain.Bet, error)
	BetsByUser(ctx context.Context, userID string) ([]domain.Bet, error)
	BetsByClaim(ctx context.Context, claimID string) ([]domain.Bet, error)
	BetsByClaimAndUser(ctx context.Context, claimID, userID string) ([]domain.Bet, error)
}

// Repository is the storage surface the market needs: claims and users to
// read and the atomic bet write.
type Repository interface {
	repository.Claim
	repository.User
	repository.Bet
}

type service struct {
	repo  Repository
	locks *concurrency.LockManager
	now   func() time.Time
}

// NewService creates a new betting market service
func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		locks: concurrency.NewLockManager(),
		now:   time.Now,
	}
}

// PlaceBet validates and records a stake against a claim.
//
// The whole read-check-write sequence runs under the claim's and the user's
// named locks so concurrent bets cannot lose aggregate updates on the claim
// or double-spend a stale balance. The bettor is priced at the odds that
// existed before their own contribution.
func (s *service) PlaceBet(ctx context.Context, userID, claimID string, position bool, amount int) (*domain.Bet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaceBetCalled, "user_id", userID, "claim_id", claimID, "position", position, "amount", amount)

	if amount <= 0 {
		metrics.BetsRejected.WithLabelValues(RejectReasonInvalidAmount).Inc()
		return nil, domain.ErrAmountNotPositive
	}

	unlock := s.locks.LockPair("claim:"+claimID, "user:"+userID)
	defer unlock()

	claim, err := s.repo.GetClaim(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetClaim, err)
	}
	if claim == nil {
		metrics.BetsRejected.WithLabelValues(RejectReasonClaimNotFound).Inc()
		return nil, domain.ErrClaimNotFound
	}

	if !claim.IsActive(s.now()) {
		metrics.BetsRejected.WithLabelValues(RejectReasonNotActive).Inc()
		return nil, domain.ErrClaimNotActive
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user == nil {
		metrics.BetsRejected.WithLabelValues(RejectReasonUserNotFound).Inc()
		return nil, domain.ErrUserNotFound
	}

	if amount > user.TokenBalance {
		metrics.BetsRejected.WithLabelValues(RejectReasonInsufficient).Inc()
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBalance, user.TokenBalance, amount)
	}

	// Price at pre-bet pool state.
	currentOdds := YesOdds(claim)

	// A bettor counts toward totalBettors once per claim, checked before the
	// new bet is inserted.
	existing, err := s.repo.GetBetsByClaimAndUser(ctx, claimID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetBets, err)
	}
	isNewBettor := len(existing) == 0

	bet := &domain.Bet{
		ID:        uuid.NewString(),
		UserID:    userID,
		ClaimID:   claimID,
		Position:  position,
		Amount:    amount,
		Odds:      strconv.Itoa(currentOdds),
		CreatedAt: s.now(),
	}

	updatedUser := *user
	updatedUser.TokenBalance -= amount
	updatedUser.TotalBets++

	updatedClaim := *claim
	if position {
		updatedClaim.TotalYesBets++
		updatedClaim.TotalYesStake += amount
	} else {
		updatedClaim.TotalNoBets++
		updatedClaim.TotalNoStake += amount
	}
	if isNewBettor {
		updatedClaim.TotalBettors++
	}

	// One atomic write: bet, debited balance, claim aggregates. On failure
	// nothing is applied.
	if err := s.repo.PlaceBetAtomic(ctx, bet, updatedUser, updatedClaim); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToApplyBet, err)
	}

	metrics.BetsPlaced.WithLabelValues(metrics.PositionLabel(position)).Inc()
	metrics.TokensStaked.WithLabelValues(metrics.PositionLabel(position)).Add(float64(amount))

	log.Info(LogMsgBetPlaced, "bet_id", bet.ID, "claim_id", claimID, "odds", bet.Odds, "new_bettor", isNewBettor)
	return bet, nil
}

func (s *service) BetsByUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	bets, err := s.repo.GetBetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListByUser, err)
	}
	return bets, nil
}

func (s *service) BetsByClaim(ctx context.Context, claimID string) ([]domain.Bet, error) {
	bets, err := s.repo.GetBetsByClaim(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListByClaim, err)
	}
	return bets, nil
}

func (s *service) BetsByClaimAndUser(ctx context.Context, claimID, userID string) ([]domain.Bet, error) {
	bets, err := s.repo.GetBetsByClaimAndUser(ctx, claimID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetBets, err)
	}
	return bets, nil
}
