package domain

import "time"

// Resolution is a proposed evidence source for settling a claim. Outcome is
// what the source asserts about the claim, nil when the proposer did not
// state one. FinalDecision stays nil until moderation settles the claim.
type Resolution struct {
	ID                string    `json:"id"`
	ClaimID           string    `json:"claim_id"`
	ProposedBy        string    `json:"proposed_by"`
	SourceLink        string    `json:"source_link"`
	SourceDescription string    `json:"source_description,omitempty"`
	Outcome           *bool     `json:"outcome,omitempty"`
	VotesValid        int       `json:"votes_valid"`
	VotesInvalid      int       `json:"votes_invalid"`
	FinalDecision     *bool     `json:"final_decision,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ResolutionVote is one user's judgment on whether a proposed source is a
// valid settlement of its claim. One vote per user per resolution.
type ResolutionVote struct {
	ID           string    `json:"id"`
	ResolutionID string    `json:"resolution_id"`
	UserID       string    `json:"user_id"`
	IsValid      bool      `json:"is_valid"`
	CreatedAt    time.Time `json:"created_at"`
}
