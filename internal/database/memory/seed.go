package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidyut-veedgav/Call-Beta/internal/domain"
)

// SeedDemoData populates the store with a handful of sample users and claims
// so a fresh instance has something to browse. Intended for dev/demo
// environments only; gated by config.
func (s *Store) SeedDemoData(ctx context.Context) error {
	now := time.Now()

	users := []domain.User{
		{ID: uuid.NewString(), Username: "cryptoOracle", TokenBalance: 1250, AccuracyScore: "78.50", TotalBets: 15, TotalWins: 12, TotalLosses: 3, JoinDate: now.AddDate(0, 0, -30)},
		{ID: uuid.NewString(), Username: "techPredictor", TokenBalance: 890, AccuracyScore: "65.20", TotalBets: 23, TotalWins: 15, TotalLosses: 8, JoinDate: now.AddDate(0, 0, -45)},
		{ID: uuid.NewString(), Username: "marketWatch", TokenBalance: 1580, AccuracyScore: "82.10", TotalBets: 31, TotalWins: 25, TotalLosses: 6, JoinDate: now.AddDate(0, 0, -60)},
		{ID: uuid.NewString(), Username: "politicsGuru", TokenBalance: 720, AccuracyScore: "59.30", TotalBets: 18, TotalWins: 11, TotalLosses: 7, JoinDate: now.AddDate(0, 0, -25)},
	}
	for i := range users {
		if err := s.CreateUser(ctx, &users[i]); err != nil {
			return err
		}
	}

	claims := []domain.Claim{
		{
			Text:            "Bitcoin will reach $150,000 before the end of the year",
			CreatorID:       users[0].ID,
			CreatorUsername: users[0].Username,
			ExpiresAt:       now.AddDate(0, 4, 0),
			TotalYesBets:    14, TotalNoBets: 9,
			TotalYesStake: 820, TotalNoStake: 540,
			TotalBettors: 17,
		},
		{
			Text:            "Apple will announce a foldable iPhone at its next keynote",
			CreatorID:       users[1].ID,
			CreatorUsername: users[1].Username,
			ExpiresAt:       now.AddDate(0, 2, 0),
			TotalYesBets:    6, TotalNoBets: 11,
			TotalYesStake: 310, TotalNoStake: 675,
			TotalBettors: 12,
		},
		{
			Text:            "A new social platform will pass 100M monthly users this quarter",
			CreatorID:       users[3].ID,
			CreatorUsername: users[3].Username,
			ExpiresAt:       now.AddDate(0, 1, 0),
			TotalYesBets:    4, TotalNoBets: 5,
			TotalYesStake: 220, TotalNoStake: 260,
			TotalBettors: 8,
		},
		{
			Text:            "The S&P 500 will close above 7,000 this month",
			CreatorID:       users[2].ID,
			CreatorUsername: users[2].Username,
			ExpiresAt:       now.AddDate(0, 0, -3), // already expired
			TotalYesBets:    10, TotalNoBets: 8,
			TotalYesStake: 500, TotalNoStake: 430,
			TotalBettors: 14,
		},
	}
	for i := range claims {
		claims[i].ID = uuid.NewString()
		claims[i].Status = domain.ClaimStatusOpen
		claims[i].CreatedAt = now.AddDate(0, 0, -(i + 1))
		if err := s.CreateClaim(ctx, &claims[i]); err != nil {
			return err
		}
	}

	return nil
}
