package claim

import (
	"context"
	"strings"
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

func TestCreateClaim(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	expiry := time.Now().Add(48 * time.Hour)

	created, err := svc.CreateClaim(ctx, "  BTC closes above 100k this year  ", "creator-1", "cryptoOracle", expiry)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "BTC closes above 100k this year", created.Text)
	assert.Equal(t, domain.ClaimStatusOpen, created.Status)
	assert.Equal(t, "cryptoOracle", created.CreatorUsername)
	assert.Zero(t, created.TotalYesStake)
	assert.Zero(t, created.TotalBettors)

	fetched, err := svc.GetClaim(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Text, fetched.Text)
}

func TestCreateClaim_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	future := time.Now().Add(time.Hour)

	_, err := svc.CreateClaim(ctx, "   ", "u1", "alice", future)
	assert.ErrorIs(t, err, domain.ErrEmptyClaimText)

	_, err = svc.CreateClaim(ctx, strings.Repeat("x", MaxTextLength+1), "u1", "alice", future)
	assert.ErrorIs(t, err, domain.ErrClaimTextTooLong)

	_, err = svc.CreateClaim(ctx, "valid text", "u1", "alice", time.Now().Add(-time.Second))
	assert.ErrorIs(t, err, domain.ErrExpiryNotInFuture)
}

func TestGetClaim_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetClaim(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}

func TestListAll_NewestFirst(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"old", "mid", "new"} {
		err := store.CreateClaim(ctx, &domain.Claim{
			ID:        id,
			Text:      id,
			Status:    domain.ClaimStatusOpen,
			ExpiresAt: base.Add(time.Hour),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	claims, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, claims, 3)
	assert.Equal(t, "new", claims[0].ID)
	assert.Equal(t, "mid", claims[1].ID)
	assert.Equal(t, "old", claims[2].ID)
}

func TestListActive_FiltersByClock(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	now := time.Now()

	claims := []domain.Claim{
		{ID: "live", Status: domain.ClaimStatusOpen, ExpiresAt: now.Add(time.Hour)},
		// Open in storage but past its deadline: must not be listed.
		{ID: "overdue", Status: domain.ClaimStatusOpen, ExpiresAt: now.Add(-time.Minute)},
		{ID: "swept", Status: domain.ClaimStatusExpired, ExpiresAt: now.Add(-time.Hour)},
	}
	for i := range claims {
		require.NoError(t, store.CreateClaim(ctx, &claims[i]))
	}

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "live", active[0].ID)

	expired, err := svc.ListExpired(ctx)
	require.NoError(t, err)
	assert.Len(t, expired, 2)
}

func TestExpireOverdue(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	now := time.Now()

	claims := []domain.Claim{
		{ID: "live", Status: domain.ClaimStatusOpen, ExpiresAt: now.Add(time.Hour)},
		{ID: "overdue1", Status: domain.ClaimStatusOpen, ExpiresAt: now.Add(-time.Minute)},
		{ID: "overdue2", Status: domain.ClaimStatusOpen, ExpiresAt: now.Add(-time.Hour)},
		{ID: "already", Status: domain.ClaimStatusExpired, ExpiresAt: now.Add(-time.Hour)},
	}
	for i := range claims {
		require.NoError(t, store.CreateClaim(ctx, &claims[i]))
	}

	count, err := svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, id := range []string{"overdue1", "overdue2", "already"} {
		c, err := store.GetClaim(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusExpired, c.Status, id)
	}

	live, err := store.GetClaim(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusOpen, live.Status)

	// Second sweep finds nothing left to transition.
	count, err = svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
