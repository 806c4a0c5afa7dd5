package resolution

import (
	"context"
	"sync"
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

func seedClaim(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	err := store.CreateClaim(context.Background(), &domain.Claim{
		ID:        id,
		Text:      "claim under dispute",
		Status:    domain.ClaimStatusOpen,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
}

func TestProposeResolution(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedClaim(t, store, "c1")

	outcome := true
	created, err := svc.ProposeResolution(ctx, "c1", "u1", "https://example.com/report", "official report", &outcome)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "c1", created.ClaimID)
	assert.Equal(t, "u1", created.ProposedBy)
	require.NotNil(t, created.Outcome)
	assert.True(t, *created.Outcome)
	assert.Zero(t, created.VotesValid)
	assert.Zero(t, created.VotesInvalid)
	assert.Nil(t, created.FinalDecision)
}

func TestProposeResolution_Validation(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedClaim(t, store, "c1")

	_, err := svc.ProposeResolution(ctx, "c1", "u1", "   ", "", nil)
	assert.ErrorIs(t, err, domain.ErrEmptySourceLink)

	_, err = svc.ProposeResolution(ctx, "missing", "u1", "https://example.com", "", nil)
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}

func TestListResolutions(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedClaim(t, store, "c1")
	seedClaim(t, store, "c2")

	_, err := svc.ProposeResolution(ctx, "c1", "u1", "https://example.com/a", "", nil)
	require.NoError(t, err)
	_, err = svc.ProposeResolution(ctx, "c1", "u2", "https://example.com/b", "", nil)
	require.NoError(t, err)
	_, err = svc.ProposeResolution(ctx, "c2", "u1", "https://example.com/c", "", nil)
	require.NoError(t, err)

	resolutions, err := svc.ListResolutions(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, resolutions, 2)
}

func TestVote_TallyAndDuplicateRejection(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedClaim(t, store, "c1")

	res, err := svc.ProposeResolution(ctx, "c1", "proposer", "https://example.com", "", nil)
	require.NoError(t, err)

	_, err = svc.Vote(ctx, res.ID, "u1", true)
	require.NoError(t, err)
	_, err = svc.Vote(ctx, res.ID, "u2", false)
	require.NoError(t, err)
	_, err = svc.Vote(ctx, res.ID, "u3", true)
	require.NoError(t, err)

	updated, err := store.GetResolution(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.VotesValid)
	assert.Equal(t, 1, updated.VotesInvalid)

	// A second vote by the same user is rejected, even with a flipped
	// judgment, and leaves the tally untouched.
	_, err = svc.Vote(ctx, res.ID, "u1", false)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	unchanged, err := store.GetResolution(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unchanged.VotesValid)
	assert.Equal(t, 1, unchanged.VotesInvalid)
}

func TestVote_ResolutionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Vote(context.Background(), "missing", "u1", true)
	assert.ErrorIs(t, err, domain.ErrResolutionNotFound)
}

func TestVote_ConcurrentVotersCountExactlyOnce(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedClaim(t, store, "c1")

	res, err := svc.ProposeResolution(ctx, "c1", "proposer", "https://example.com", "", nil)
	require.NoError(t, err)

	// Each voter races 3 attempts; exactly one may land.
	const voters = 10
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		for attempt := 0; attempt < 3; attempt++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := svc.Vote(ctx, res.ID, string(rune('a'+i)), true)
				if err != nil {
					assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
				}
			}(i)
		}
	}
	wg.Wait()

	updated, err := store.GetResolution(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, voters, updated.VotesValid)
	assert.Zero(t, updated.VotesInvalid)

	votes, err := store.GetVotesByResolution(ctx, res.ID)
	require.NoError(t, err)
	assert.Len(t, votes, voters)
}
