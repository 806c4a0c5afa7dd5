package market

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyut-veedgav/Call-Beta/internal/database/memory"
	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

func newTestService(t *testing.T) (*service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(store).(*service)
	return svc, store
}

func seedUser(t *testing.T, store *memory.Store, id string, balance int) {
	t.Helper()
	err := store.CreateUser(context.Background(), &domain.User{
		ID:           id,
		Username:     "user-" + id,
		TokenBalance: balance,
	})
	require.NoError(t, err)
}

func seedOpenClaim(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	err := store.CreateClaim(context.Background(), &domain.Claim{
		ID:        id,
		Text:      "it will rain tomorrow",
		Status:    domain.ClaimStatusOpen,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestPlaceBet_FirstBetGetsUniformOdds(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedUser(t, store, "u1", 1000)
	seedOpenClaim(t, store, "c1")

	bet, err := svc.PlaceBet(ctx, "u1", "c1", true, 100)
	require.NoError(t, err)

	assert.Equal(t, "50", bet.Odds)
	assert.True(t, bet.Position)
	assert.Equal(t, 100, bet.Amount)
	assert.False(t, bet.IsResolved)

	user, err := store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 900, user.TokenBalance)
	assert.Equal(t, 1, user.TotalBets)

	claim, err := store.GetClaim(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, claim.TotalYesBets)
	assert.Equal(t, 100, claim.TotalYesStake)
	assert.Equal(t, 0, claim.TotalNoStake)
	assert.Equal(t, 1, claim.TotalBettors)
}

func TestPlaceBet_PricedAtPreBetPool(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedUser(t, store, "u1", 1000)
	seedUser(t, store, "u2", 1000)
	seedUser(t, store, "u3", 1000)
	seedOpenClaim(t, store, "c1")

	first, err := svc.PlaceBet(ctx, "u1", "c1", true, 100)
	require.NoError(t, err)
	assert.Equal(t, "50", first.Odds)

	// Pool is now 100 YES / 0 NO, so the second bettor is priced at 100.
	second, err := svc.PlaceBet(ctx, "u2", "c1", false, 50)
	require.NoError(t, err)
	assert.Equal(t, "100", second.Odds)

	// Pool is now 100 YES / 50 NO: 100/150 rounds to 67.
	third, err := svc.PlaceBet(ctx, "u3", "c1", true, 25)
	require.NoError(t, err)
	assert.Equal(t, "67", third.Odds)
}

func TestPlaceBet_RepeatBettorCountsOnce(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedUser(t, store, "u1", 1000)
	seedOpenClaim(t, store, "c1")

	_, err := svc.PlaceBet(ctx, "u1", "c1", true, 100)
	require.NoError(t, err)
	_, err = svc.PlaceBet(ctx, "u1", "c1", false, 100)
	require.NoError(t, err)

	claim, err := store.GetClaim(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, claim.TotalBettors)
	assert.Equal(t, 1, claim.TotalYesBets)
	assert.Equal(t, 1, claim.TotalNoBets)
}

func TestPlaceBet_InvalidAmount(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedUser(t, store, "u1", 1000)
	seedOpenClaim(t, store, "c1")

	_, err := svc.PlaceBet(ctx, "u1", "c1", true, 0)
	assert.ErrorIs(t, err, domain.ErrAmountNotPositive)

	_, err = svc.PlaceBet(ctx, "u1", "c1", true, -5)
	assert.ErrorIs(t, err, domain.ErrAmountNotPositive)
}

func TestPlaceBet_ClaimNotFound(t *testing.T) {
	svc, store := newTestService(t)
	seedUser(t, store, "u1", 1000)

	_, err := svc.PlaceBet(context.Background(), "u1", "missing", true, 100)
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}

func TestPlaceBet_UserNotFound(t *testing.T) {
	svc, store := newTestService(t)
	seedOpenClaim(t, store, "c1")

	_, err := svc.PlaceBet(context.Background(), "ghost", "c1", true, 100)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPlaceBet_ExpiredClaimRejected(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedUser(t, store, "u1", 1000)

	// Still marked open but past its deadline; activity is derived from the
	// clock, not the stored status.
	err := store.CreateClaim(ctx, &domain.Claim{
		ID:        "c1",
		Text:      "overdue claim",
		Status:    domain.ClaimStatusOpen,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	_, err = svc.PlaceBet(ctx, "u1", "c1", true, 100)
	assert.ErrorIs(t, err, domain.ErrClaimNotActive)
}

func TestPlaceBet_InsufficientBalance(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedUser(t, store, "u1", 30)
	seedOpenClaim(t, store, "c1")

	_, err := svc.PlaceBet(ctx, "u1", "c1", true, 31)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// Nothing was applied.
	user, err := store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 30, user.TokenBalance)

	bets, err := store.GetBetsByClaim(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, bets)

	// An exact-balance bet is allowed.
	_, err = svc.PlaceBet(ctx, "u1", "c1", true, 30)
	require.NoError(t, err)
	user, err = store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, user.TokenBalance)
}

// failingBetRepo forces the atomic write to fail after all validation passed.
type failingBetRepo struct {
	*memory.Store
}

var errWriteFailed = errors.New("write failed")

func (f *failingBetRepo) PlaceBetAtomic(ctx context.Context, bet *domain.Bet, user domain.User, claim domain.Claim) error {
	return errWriteFailed
}

func TestPlaceBet_AtomicFailureLeavesStateUntouched(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(&failingBetRepo{Store: store})
	ctx := context.Background()
	seedUser(t, store, "u1", 1000)
	seedOpenClaim(t, store, "c1")

	_, err := svc.PlaceBet(ctx, "u1", "c1", true, 100)
	require.ErrorIs(t, err, errWriteFailed)

	user, err := store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1000, user.TokenBalance)
	assert.Equal(t, 0, user.TotalBets)

	claim, err := store.GetClaim(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, claim.TotalYesStake)
	assert.Equal(t, 0, claim.TotalBettors)

	bets, err := store.GetBetsByClaim(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, bets)
}

func TestBetsByUserAndClaim(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedUser(t, store, "u1", 1000)
	seedUser(t, store, "u2", 1000)
	seedOpenClaim(t, store, "c1")
	seedOpenClaim(t, store, "c2")

	_, err := svc.PlaceBet(ctx, "u1", "c1", true, 10)
	require.NoError(t, err)
	_, err = svc.PlaceBet(ctx, "u1", "c2", false, 20)
	require.NoError(t, err)
	_, err = svc.PlaceBet(ctx, "u2", "c1", false, 30)
	require.NoError(t, err)

	byUser, err := svc.BetsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byClaim, err := svc.BetsByClaim(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, byClaim, 2)

	both, err := svc.BetsByClaimAndUser(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.Len(t, both, 1)
	assert.Equal(t, 10, both[0].Amount)
}
