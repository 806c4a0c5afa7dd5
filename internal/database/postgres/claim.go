package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

const claimColumns = `claim_id, claim_text, creator_id, creator_username, expires_at, status, total_yes_bets, total_no_bets, total_yes_stake, total_no_stake, total_bettors, created_at`

func scanClaimRows(rows pgx.Rows) ([]domain.Claim, error) {
	defer rows.Close()

	var claims []domain.Claim
	for rows.Next() {
		var c domain.Claim
		if err := rows.Scan(&c.ID, &c.Text, &c.CreatorID, &c.CreatorUsername, &c.ExpiresAt, &c.Status,
			&c.TotalYesBets, &c.TotalNoBets, &c.TotalYesStake, &c.TotalNoStake, &c.TotalBettors, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan claim row: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// CreateClaim inserts a new claim row
func (l *Ledger) CreateClaim(ctx context.Context, claim *domain.Claim) error {
	query := `
		INSERT INTO claims (claim_id, claim_text, creator_id, creator_username, expires_at, status,
			total_yes_bets, total_no_bets, total_yes_stake, total_no_stake, total_bettors, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := l.db.Exec(ctx, query,
		claim.ID, claim.Text, claim.CreatorID, claim.CreatorUsername, claim.ExpiresAt, claim.Status,
		claim.TotalYesBets, claim.TotalNoBets, claim.TotalYesStake, claim.TotalNoStake, claim.TotalBettors, claim.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert claim: %w", err)
	}
	return nil
}

// GetClaim returns the claim with the given ID, or nil when absent
func (l *Ledger) GetClaim(ctx context.Context, claimID string) (*domain.Claim, error) {
	query := fmt.Sprintf(`SELECT %s FROM claims WHERE claim_id = $1`, claimColumns)

	var c domain.Claim
	err := l.db.QueryRow(ctx, query, claimID).Scan(&c.ID, &c.Text, &c.CreatorID, &c.CreatorUsername,
		&c.ExpiresAt, &c.Status, &c.TotalYesBets, &c.TotalNoBets, &c.TotalYesStake, &c.TotalNoStake,
		&c.TotalBettors, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan claim: %w", err)
	}
	return &c, nil
}

// GetAllClaims returns every claim, newest first
func (l *Ledger) GetAllClaims(ctx context.Context) ([]domain.Claim, error) {
	query := fmt.Sprintf(`SELECT %s FROM claims ORDER BY created_at DESC`, claimColumns)
	rows, err := l.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	return scanClaimRows(rows)
}

// GetActiveClaims returns open claims whose expiry is still in the future,
// newest first.
func (l *Ledger) GetActiveClaims(ctx context.Context, now time.Time) ([]domain.Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM claims
		WHERE status = $1 AND expires_at > $2
		ORDER BY created_at DESC
	`, claimColumns)
	rows, err := l.db.Query(ctx, query, domain.ClaimStatusOpen, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query active claims: %w", err)
	}
	return scanClaimRows(rows)
}

// GetExpiredClaims returns claims already marked expired plus open claims
// whose deadline has passed, newest first.
func (l *Ledger) GetExpiredClaims(ctx context.Context, now time.Time) ([]domain.Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM claims
		WHERE status = $1 OR expires_at <= $2
		ORDER BY created_at DESC
	`, claimColumns)
	rows, err := l.db.Query(ctx, query, domain.ClaimStatusExpired, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired claims: %w", err)
	}
	return scanClaimRows(rows)
}

// UpdateClaim writes back all mutable claim fields
func (l *Ledger) UpdateClaim(ctx context.Context, claim domain.Claim) error {
	query := `
		UPDATE claims
		SET claim_text = $2, expires_at = $3, status = $4,
		    total_yes_bets = $5, total_no_bets = $6,
		    total_yes_stake = $7, total_no_stake = $8, total_bettors = $9
		WHERE claim_id = $1
	`
	_, err := l.db.Exec(ctx, query,
		claim.ID, claim.Text, claim.ExpiresAt, claim.Status,
		claim.TotalYesBets, claim.TotalNoBets, claim.TotalYesStake, claim.TotalNoStake, claim.TotalBettors)
	if err != nil {
		return fmt.Errorf("failed to update claim: %w", err)
	}
	return nil
}
