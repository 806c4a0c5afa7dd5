package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

const userColumns = `user_id, username, token_balance, accuracy_score, total_bets, total_wins, total_losses, join_date`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.TokenBalance, &u.AccuracyScore, &u.TotalBets, &u.TotalWins, &u.TotalLosses, &u.JoinDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user row
func (l *Ledger) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, username, token_balance, accuracy_score, total_bets, total_wins, total_losses, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := l.db.Exec(ctx, query,
		user.ID, user.Username, user.TokenBalance, user.AccuracyScore,
		user.TotalBets, user.TotalWins, user.TotalLosses, user.JoinDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID returns the user with the given ID, or nil when absent
func (l *Ledger) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userColumns)
	return scanUser(l.db.QueryRow(ctx, query, userID))
}

// GetUserByUsername returns the user with the given username, or nil when
// absent. Matching is case-insensitive.
func (l *Ledger) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(username) = LOWER($1)`, userColumns)
	return scanUser(l.db.QueryRow(ctx, query, username))
}

// UpdateUser writes back all mutable user fields
func (l *Ledger) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET username = $2, token_balance = $3, accuracy_score = $4,
		    total_bets = $5, total_wins = $6, total_losses = $7
		WHERE user_id = $1
	`
	_, err := l.db.Exec(ctx, query,
		user.ID, user.Username, user.TokenBalance, user.AccuracyScore,
		user.TotalBets, user.TotalWins, user.TotalLosses)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// GetTopUsers returns users ordered by accuracy score descending. The score
// is stored as a decimal string so the ordering casts it.
func (l *Ledger) GetTopUsers(ctx context.Context, limit int) ([]domain.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		ORDER BY CAST(accuracy_score AS NUMERIC) DESC, username ASC
		LIMIT $1
	`, userColumns)
	rows, err := l.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.TokenBalance, &u.AccuracyScore, &u.TotalBets, &u.TotalWins, &u.TotalLosses, &u.JoinDate); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
