package ranking

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// leaderboardCache provides a small expirable LRU in front of the top-users
// projection. Entries are keyed by limit; the TTL bounds how stale a served
// leaderboard can be after score updates.
type leaderboardCache struct {
	lru *expirable.LRU[string, []domain.User]
}

func newLeaderboardCache(size int, ttl time.Duration) *leaderboardCache {
	return &leaderboardCache{
		lru: expirable.NewLRU[string, []domain.User](size, nil, ttl),
	}
}

func (c *leaderboardCache) Get(limit int) ([]domain.User, bool) {
	return c.lru.Get(strconv.Itoa(limit))
}

func (c *leaderboardCache) Set(limit int, users []domain.User) {
	c.lru.Add(strconv.Itoa(limit), users)
}

// Clear removes all cached leaderboards.
func (c *leaderboardCache) Clear() {
	c.lru.Purge()
}
