package domain

import "time"

// Bet is a stake on one side of a claim. Position true is YES, false is NO.
// Odds is the YES-side implied probability at the moment the bet was priced,
// stored as an integer percentage string ("50", "67").
type Bet struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ClaimID    string    `json:"claim_id"`
	Position   bool      `json:"position"`
	Amount     int       `json:"amount"`
	Odds       string    `json:"odds"`
	IsResolved bool      `json:"is_resolved"`
	Payout     int       `json:"payout"`
	CreatedAt  time.Time `json:"created_at"`
}
