package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return domain.ErrUsernameTaken
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[userID]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.users[user.ID] = user
	return nil
}

// GetTopUsers returns users sorted descending by parsed accuracy score.
// An absent or unparseable score counts as 0.
func (s *Store) GetTopUsers(ctx context.Context, limit int) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return parseScore(users[i].AccuracyScore) > parseScore(users[j].AccuracyScore)
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func parseScore(score string) float64 {
	v, err := strconv.ParseFloat(score, 64)
	if err != nil {
		return 0
	}
	return v
}
