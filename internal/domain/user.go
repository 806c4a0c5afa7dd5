package domain

import "time"

// User represents a registered bettor with a token balance and a running
// accuracy record. AccuracyScore is kept as a decimal string ("78.50") to
// match the ledger's storage shape; consumers parse it when ranking.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	TokenBalance  int       `json:"token_balance"`
	AccuracyScore string    `json:"accuracy_score"`
	TotalBets     int       `json:"total_bets"`
	TotalWins     int       `json:"total_wins"`
	TotalLosses   int       `json:"total_losses"`
	JoinDate      time.Time `json:"join_date"`
}
