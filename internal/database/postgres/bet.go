package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

const betColumns = `bet_id, user_id, claim_id, position, amount, odds, is_resolved, payout, created_at`

func scanBetRows(rows pgx.Rows) ([]domain.Bet, error) {
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var b domain.Bet
		if err := rows.Scan(&b.ID, &b.UserID, &b.ClaimID, &b.Position, &b.Amount, &b.Odds, &b.IsResolved, &b.Payout, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bet row: %w", err)
		}
		bets = append(bets, b)
	}
	return bets, rows.Err()
}

// GetBet returns the bet with the given ID, or nil when absent
func (l *Ledger) GetBet(ctx context.Context, betID string) (*domain.Bet, error) {
	query := fmt.Sprintf(`SELECT %s FROM bets WHERE bet_id = $1`, betColumns)

	var b domain.Bet
	err := l.db.QueryRow(ctx, query, betID).Scan(&b.ID, &b.UserID, &b.ClaimID, &b.Position, &b.Amount, &b.Odds, &b.IsResolved, &b.Payout, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan bet: %w", err)
	}
	return &b, nil
}

// GetBetsByUser returns all bets placed by a user, newest first
func (l *Ledger) GetBetsByUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	query := fmt.Sprintf(`SELECT %s FROM bets WHERE user_id = $1 ORDER BY created_at DESC`, betColumns)
	rows, err := l.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets by user: %w", err)
	}
	return scanBetRows(rows)
}

// GetBetsByClaim returns all bets on a claim, newest first
func (l *Ledger) GetBetsByClaim(ctx context.Context, claimID string) ([]domain.Bet, error) {
	query := fmt.Sprintf(`SELECT %s FROM bets WHERE claim_id = $1 ORDER BY created_at DESC`, betColumns)
	rows, err := l.db.Query(ctx, query, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets by claim: %w", err)
	}
	return scanBetRows(rows)
}

// GetBetsByClaimAndUser returns a user's bets on one claim, newest first
func (l *Ledger) GetBetsByClaimAndUser(ctx context.Context, claimID, userID string) ([]domain.Bet, error) {
	query := fmt.Sprintf(`SELECT %s FROM bets WHERE claim_id = $1 AND user_id = $2 ORDER BY created_at DESC`, betColumns)
	rows, err := l.db.Query(ctx, query, claimID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets by claim and user: %w", err)
	}
	return scanBetRows(rows)
}

// PlaceBetAtomic inserts the bet, debits the user and writes the claim
// aggregates in one transaction. Either all three land or none do.
func (l *Ledger) PlaceBetAtomic(ctx context.Context, bet *domain.Bet, user domain.User, claim domain.Claim) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertBet := `
		INSERT INTO bets (bet_id, user_id, claim_id, position, amount, odds, is_resolved, payout, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := tx.Exec(ctx, insertBet,
		bet.ID, bet.UserID, bet.ClaimID, bet.Position, bet.Amount, bet.Odds, bet.IsResolved, bet.Payout, bet.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}

	updateUser := `
		UPDATE users SET token_balance = $2, total_bets = $3 WHERE user_id = $1
	`
	if _, err := tx.Exec(ctx, updateUser, user.ID, user.TokenBalance, user.TotalBets); err != nil {
		return fmt.Errorf("failed to debit user: %w", err)
	}

	updateClaim := `
		UPDATE claims
		SET total_yes_bets = $2, total_no_bets = $3,
		    total_yes_stake = $4, total_no_stake = $5, total_bettors = $6
		WHERE claim_id = $1
	`
	if _, err := tx.Exec(ctx, updateClaim,
		claim.ID, claim.TotalYesBets, claim.TotalNoBets, claim.TotalYesStake, claim.TotalNoStake, claim.TotalBettors); err != nil {
		return fmt.Errorf("failed to update claim aggregates: %w", err)
	}

	return tx.Commit(ctx)
}

// UpdateBet writes back all mutable bet fields
func (l *Ledger) UpdateBet(ctx context.Context, bet domain.Bet) error {
	query := `
		UPDATE bets SET is_resolved = $2, payout = $3 WHERE bet_id = $1
	`
	_, err := l.db.Exec(ctx, query, bet.ID, bet.IsResolved, bet.Payout)
	if err != nil {
		return fmt.Errorf("failed to update bet: %w", err)
	}
	return nil
}
