package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

const resolutionColumns = `resolution_id, claim_id, proposed_by, source_link, source_description, outcome, votes_valid, votes_invalid, final_decision, created_at`

// CreateResolution inserts a new resolution row
func (l *Ledger) CreateResolution(ctx context.Context, resolution *domain.Resolution) error {
	query := `
		INSERT INTO resolutions (resolution_id, claim_id, proposed_by, source_link, source_description,
			outcome, votes_valid, votes_invalid, final_decision, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := l.db.Exec(ctx, query,
		resolution.ID, resolution.ClaimID, resolution.ProposedBy, resolution.SourceLink, resolution.SourceDescription,
		resolution.Outcome, resolution.VotesValid, resolution.VotesInvalid, resolution.FinalDecision, resolution.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert resolution: %w", err)
	}
	return nil
}

// GetResolution returns the resolution with the given ID, or nil when absent
func (l *Ledger) GetResolution(ctx context.Context, resolutionID string) (*domain.Resolution, error) {
	query := fmt.Sprintf(`SELECT %s FROM resolutions WHERE resolution_id = $1`, resolutionColumns)

	var res domain.Resolution
	err := l.db.QueryRow(ctx, query, resolutionID).Scan(&res.ID, &res.ClaimID, &res.ProposedBy,
		&res.SourceLink, &res.SourceDescription, &res.Outcome, &res.VotesValid, &res.VotesInvalid,
		&res.FinalDecision, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan resolution: %w", err)
	}
	return &res, nil
}

// GetResolutionsByClaim returns all resolutions proposed for a claim, newest
// first.
func (l *Ledger) GetResolutionsByClaim(ctx context.Context, claimID string) ([]domain.Resolution, error) {
	query := fmt.Sprintf(`SELECT %s FROM resolutions WHERE claim_id = $1 ORDER BY created_at DESC`, resolutionColumns)
	rows, err := l.db.Query(ctx, query, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolutions: %w", err)
	}
	defer rows.Close()

	var resolutions []domain.Resolution
	for rows.Next() {
		var res domain.Resolution
		if err := rows.Scan(&res.ID, &res.ClaimID, &res.ProposedBy, &res.SourceLink, &res.SourceDescription,
			&res.Outcome, &res.VotesValid, &res.VotesInvalid, &res.FinalDecision, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resolution row: %w", err)
		}
		resolutions = append(resolutions, res)
	}
	return resolutions, rows.Err()
}

// UpdateResolution writes back all mutable resolution fields
func (l *Ledger) UpdateResolution(ctx context.Context, resolution domain.Resolution) error {
	query := `
		UPDATE resolutions
		SET votes_valid = $2, votes_invalid = $3, final_decision = $4
		WHERE resolution_id = $1
	`
	_, err := l.db.Exec(ctx, query, resolution.ID, resolution.VotesValid, resolution.VotesInvalid, resolution.FinalDecision)
	if err != nil {
		return fmt.Errorf("failed to update resolution: %w", err)
	}
	return nil
}

// GetVotesByResolution returns all votes cast on a resolution
func (l *Ledger) GetVotesByResolution(ctx context.Context, resolutionID string) ([]domain.ResolutionVote, error) {
	query := `
		SELECT vote_id, resolution_id, user_id, is_valid, created_at
		FROM resolution_votes WHERE resolution_id = $1
		ORDER BY created_at ASC
	`
	rows, err := l.db.Query(ctx, query, resolutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.ResolutionVote
	for rows.Next() {
		var v domain.ResolutionVote
		if err := rows.Scan(&v.ID, &v.ResolutionID, &v.UserID, &v.IsValid, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

// GetVoteByResolutionAndUser returns one user's vote on a resolution, or nil
// when the user has not voted.
func (l *Ledger) GetVoteByResolutionAndUser(ctx context.Context, resolutionID, userID string) (*domain.ResolutionVote, error) {
	query := `
		SELECT vote_id, resolution_id, user_id, is_valid, created_at
		FROM resolution_votes WHERE resolution_id = $1 AND user_id = $2
	`
	var v domain.ResolutionVote
	err := l.db.QueryRow(ctx, query, resolutionID, userID).Scan(&v.ID, &v.ResolutionID, &v.UserID, &v.IsValid, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan vote: %w", err)
	}
	return &v, nil
}

// CastVoteAtomic inserts the vote and writes the resolution tally in one
// transaction. The unique index on (resolution_id, user_id) makes a
// concurrent duplicate fail with domain.ErrAlreadyVoted.
func (l *Ledger) CastVoteAtomic(ctx context.Context, vote *domain.ResolutionVote, resolution domain.Resolution) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertVote := `
		INSERT INTO resolution_votes (vote_id, resolution_id, user_id, is_valid, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, insertVote, vote.ID, vote.ResolutionID, vote.UserID, vote.IsValid, vote.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	updateTally := `
		UPDATE resolutions SET votes_valid = $2, votes_invalid = $3 WHERE resolution_id = $1
	`
	if _, err := tx.Exec(ctx, updateTally, resolution.ID, resolution.VotesValid, resolution.VotesInvalid); err != nil {
		return fmt.Errorf("failed to update vote tally: %w", err)
	}

	return tx.Commit(ctx)
}
