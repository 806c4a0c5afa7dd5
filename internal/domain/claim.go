package domain

import "time"

// ClaimStatus is the lifecycle state of a claim
type ClaimStatus string

const (
	ClaimStatusOpen     ClaimStatus = "open"
	ClaimStatusExpired  ClaimStatus = "expired"
	ClaimStatusResolved ClaimStatus = "resolved"
)

// Claim is a falsifiable statement users bet on. The Total* fields are
// denormalized pool aggregates maintained alongside each bet so odds can be
// derived without scanning the bet table.
type Claim struct {
	ID              string      `json:"id"`
	Text            string      `json:"text"`
	CreatorID       string      `json:"creator_id"`
	CreatorUsername string      `json:"creator_username"`
	ExpiresAt       time.Time   `json:"expires_at"`
	Status          ClaimStatus `json:"status"`
	TotalYesBets    int         `json:"total_yes_bets"`
	TotalNoBets     int         `json:"total_no_bets"`
	TotalYesStake   int         `json:"total_yes_stake"`
	TotalNoStake    int         `json:"total_no_stake"`
	TotalBettors    int         `json:"total_bettors"`
	CreatedAt       time.Time   `json:"created_at"`
}

// IsActive reports whether the claim accepts bets at the given instant.
// A claim past its expiry is inactive even before the status sweep has
// flipped it to expired.
func (c *Claim) IsActive(now time.Time) bool {
	return c.Status == ClaimStatusOpen && c.ExpiresAt.After(now)
}
