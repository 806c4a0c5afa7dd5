package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
	"github.com/vidyut-veedgav/Call-Beta/internal/logger"
	"github.com/vidyut-veedgav/Call-Beta/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	RegisterUser(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type service struct {
	repo repository.User
	now  func() time.Time
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo, now: time.Now}
}

// RegisterUser creates a user with the starting balance and zeroed record.
// Usernames are unique and immutable once created.
func (s *service) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "username", username)

	username = strings.TrimSpace(username)
	if username == "" || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf("%w: username", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      username,
		TokenBalance:  StartingTokenBalance,
		AccuracyScore: InitialAccuracyScore,
		JoinDate:      s.now(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateUser, err)
	}

	log.Info(LogMsgUserRegistered, "user_id", user.ID, "username", username)
	return user, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// CurrentUser returns the highest-ranked user. Demo behavior carried over
// from the original client, which has no session concept.
func (s *service) CurrentUser(ctx context.Context) (*domain.User, error) {
	users, err := s.repo.GetTopUsers(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListUsers, err)
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &users[0], nil
}
