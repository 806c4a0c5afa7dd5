package market

import (
	"math"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// UniformOdds is the YES-side percentage offered before any stake exists.
const UniformOdds = 50

// YesOdds returns the YES-side implied probability of a claim as an integer
// percentage, derived pari-mutuel style from the staked pools. An empty pool
// prices at the uniform prior. Rounding is half-up on the computed
// percentage.
func YesOdds(claim *domain.Claim) int {
	total := claim.TotalYesStake + claim.TotalNoStake
	if total == 0 {
		return UniformOdds
	}
	return int(math.Round(float64(claim.TotalYesStake) / float64(total) * 100))
}

// NoOdds is always the complement of YesOdds. It is never computed
// independently, so the two sides cannot drift apart through rounding.
func NoOdds(claim *domain.Claim) int {
	return 100 - YesOdds(claim)
}

// PayoutOnWin previews the pari-mutuel payout for a stake at the given
// position odds: amount * 100 / odds, truncated. Display-side only; the
// settlement pipeline owns the authoritative payout.
func PayoutOnWin(amount, odds int) int {
	if odds <= 0 {
		return 0
	}
	return amount * 100 / odds
}
