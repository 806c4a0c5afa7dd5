package ranking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyut-veedgav/Call-Beta/internal/database/memory"
	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

func seedUsers(t *testing.T, store *memory.Store, scores map[string]string) {
	t.Helper()
	for username, score := range scores {
		err := store.CreateUser(context.Background(), &domain.User{
			ID:            username,
			Username:      username,
			AccuracyScore: score,
		})
		require.NoError(t, err)
	}
}

func TestTopUsers_OrderedByScoreDescending(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, map[string]string{
		"mid":  "65.20",
		"top":  "82.10",
		"low":  "12.00",
		"zero": "0.00",
	})
	svc := NewService(store, 0)

	users, err := svc.TopUsers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "top", users[0].Username)
	assert.Equal(t, "mid", users[1].Username)
	assert.Equal(t, "low", users[2].Username)
	assert.Equal(t, "zero", users[3].Username)
}

func TestTopUsers_UnparseableScoreRanksAsZero(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, map[string]string{
		"scored": "10.00",
		"broken": "not-a-number",
		"empty":  "",
	})
	svc := NewService(store, 0)

	users, err := svc.TopUsers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "scored", users[0].Username)
}

func TestTopUsers_LimitAndDefault(t *testing.T) {
	store := memory.NewStore()
	for i := 0; i < 15; i++ {
		err := store.CreateUser(context.Background(), &domain.User{
			ID:            fmt.Sprintf("u%d", i),
			Username:      fmt.Sprintf("u%d", i),
			AccuracyScore: fmt.Sprintf("%d.00", i),
		})
		require.NoError(t, err)
	}
	svc := NewService(store, 0)

	users, err := svc.TopUsers(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	// Non-positive limit falls back to the default.
	users, err = svc.TopUsers(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, users, DefaultLimit)
}

func TestTopUsers_CacheServesStaleWithinTTL(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, map[string]string{"only": "50.00"})
	svc := NewService(store, time.Minute)

	first, err := svc.TopUsers(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A newcomer is not visible until the cached entry expires.
	seedUsers(t, store, map[string]string{"newcomer": "99.00"})

	second, err := svc.TopUsers(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, second, 1)

	// A different limit misses the cache and sees fresh data.
	fresh, err := svc.TopUsers(context.Background(), 6)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
	assert.Equal(t, "newcomer", fresh[0].Username)
}
