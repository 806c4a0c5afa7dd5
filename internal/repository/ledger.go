package repository

// Ledger bundles the per-entity repositories into the single storage surface
// the services are wired with. Implementations: database/memory (map-backed)
// and database/postgres (pgx-backed).
type Ledger interface {
	User
	Claim
	Bet
	Resolution
}
