package equity

import (
	"sort"

	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// Distribute assigns every pending exchange with interested users to its best candidate.
//
// This is a single greedy pass, not an optimal matching:
//   - Exchanges with the fewest interested users go first, so low-competition
//     shifts are not starved. Ties keep snapshot order.
//   - Each exchange goes to its highest scoring candidate (first in
//     InterestedUsers on equal scores).
//   - The winner's stats are updated in memory before the next exchange is
//     scored. The snapshot itself is never modified.
//
// Global stats are computed once for the whole pass.
func (e *Engine) Distribute() []Assignment {
	pending := make([]model.ShiftExchange, 0)
	for _, exchange := range e.exchanges {
		if exchange.Status == model.ExchangePending && len(exchange.InterestedUsers) > 0 {
			pending = append(pending, exchange)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return len(pending[i].InterestedUsers) < len(pending[j].InterestedUsers)
	})

	global := e.GlobalStats()
	userStats := make(map[string]UserStats)
	statsFor := func(userID string) UserStats {
		stats, ok := userStats[userID]
		if !ok {
			stats = e.GetUserStats(userID)
			userStats[userID] = stats
		}
		return stats
	}

	assignments := make([]Assignment, 0, len(pending))
	for _, exchange := range pending {
		var best *SuggestionScore
		for _, userID := range exchange.InterestedUsers {
			suggestion := e.score(statsFor(userID), global, exchange)
			if best == nil || suggestion.Score > best.Score {
				best = &suggestion
			}
		}

		assignments = append(assignments, Assignment{
			ExchangeID: exchange.ID,
			UserID:     best.UserID,
			Score:      best.Score,
		})

		value := e.scoring.ShiftScore(exchange.ShiftType, exchange.Date)
		userStats[best.UserID] = withGrantedShift(statsFor(best.UserID), exchange, value)
	}

	return assignments
}

// GetOptimalDistribution returns the greedy distribution keyed by exchange ID
func (e *Engine) GetOptimalDistribution() map[string][]string {
	distribution := make(map[string][]string)
	for _, assignment := range e.Distribute() {
		distribution[assignment.ExchangeID] = append(distribution[assignment.ExchangeID], assignment.UserID)
	}
	return distribution
}
