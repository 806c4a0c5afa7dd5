package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
	"github.com/vidyut-veedgav/Call-Beta/internal/logger"
	"github.com/vidyut-veedgav/Call-Beta/internal/repository"
)

// DefaultLimit is used when the caller asks for a non-positive number of
// leaderboard entries.
const DefaultLimit = 10

const cacheSize = 16

// Service defines the interface for leaderboard operations
type Service interface {
	TopUsers(ctx context.Context, limit int) ([]domain.User, error)
}

type service struct {
	repo  repository.User
	cache *leaderboardCache
}

// NewService creates a new ranking service. A zero cacheTTL disables
// caching.
func NewService(repo repository.User, cacheTTL time.Duration) Service {
	s := &service{repo: repo}
	if cacheTTL > 0 {
		s.cache = newLeaderboardCache(cacheSize, cacheTTL)
	}
	return s
}

// TopUsers returns users ordered descending by accuracy score, truncated to
// limit. Pure read-side projection; ties keep repository order.
func (s *service) TopUsers(ctx context.Context, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if s.cache != nil {
		if users, ok := s.cache.Get(limit); ok {
			return users, nil
		}
	}

	users, err := s.repo.GetTopUsers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(limit, users)
	}

	logger.FromContext(ctx).Debug("Retrieved leaderboard", "limit", limit, "entries", len(users))
	return users, nil
}
