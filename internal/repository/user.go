package repository

import (
	"context"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	GetTopUsers(ctx context.Context, limit int) ([]domain.User, error)
}
