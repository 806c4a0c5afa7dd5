// Package memory provides a map-backed implementation of the ledger
// repository. It is the store of record for single-process deployments and
// for tests; database/postgres offers the durable alternative behind the
// same interfaces.
package memory

import (
	"sync"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// Store is an in-memory ledger keyed by entity ID. A single RWMutex guards
// all maps so multi-entity writes (bet placement, vote casting) are applied
// atomically with respect to every reader and writer.
type Store struct {
	mu sync.RWMutex

	users           map[string]domain.User
	claims          map[string]domain.Claim
	bets            map[string]domain.Bet
	resolutions     map[string]domain.Resolution
	resolutionVotes map[string]domain.ResolutionVote
}

// NewStore creates an empty in-memory ledger.
func NewStore() *Store {
	return &Store{
		users:           make(map[string]domain.User),
		claims:          make(map[string]domain.Claim),
		bets:            make(map[string]domain.Bet),
		resolutions:     make(map[string]domain.Resolution),
		resolutionVotes: make(map[string]domain.ResolutionVote),
	}
}
