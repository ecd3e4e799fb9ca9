package equity

import (
	"sort"

	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// EngineConfig contains the snapshot and settings of one scoring session
type EngineConfig struct {
	Scoring ScoringConfig

	// Strategy defaults to RateStrategy when nil
	Strategy Strategy

	Users     []model.User
	Exchanges []model.ShiftExchange
	History   []model.ExchangeHistory
}

// Engine scores interested users against exchanges.
//
// The collections are read, never written. Every call recomputes from them, so
// an Engine is safe for concurrent use. When the underlying data changes, build
// a new Engine rather than mutating the slices it was given.
type Engine struct {
	scoring   ScoringConfig
	strategy  Strategy
	users     []model.User
	exchanges []model.ShiftExchange
	history   []model.ExchangeHistory
}

// NewEngine creates an Engine over the given snapshot
func NewEngine(config EngineConfig) *Engine {
	strategy := config.Strategy
	if strategy == nil {
		strategy = &RateStrategy{}
	}

	return &Engine{
		scoring:   config.Scoring,
		strategy:  strategy,
		users:     config.Users,
		exchanges: config.Exchanges,
		history:   config.History,
	}
}

// Strategy returns the strategy in use
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Exchanges returns the live exchanges of the snapshot
func (e *Engine) Exchanges() []model.ShiftExchange {
	return e.exchanges
}

// GetUserStats computes the current stats of a user
func (e *Engine) GetUserStats(userID string) UserStats {
	return ComputeUserStats(userID, e.scoring, e.exchanges, e.history)
}

// GlobalStats computes the population baseline
func (e *Engine) GlobalStats() GlobalEquityStats {
	return ComputeGlobalStats(e.scoring, e.users, e.exchanges, e.history)
}

// CalculateSuggestionScore scores one user for one exchange
func (e *Engine) CalculateSuggestionScore(userID string, exchange model.ShiftExchange) SuggestionScore {
	return e.score(e.GetUserStats(userID), e.GlobalStats(), exchange)
}

// SimulateImpact projects granting the exchange to the user. Nothing is stored.
func (e *Engine) SimulateImpact(userID string, exchange model.ShiftExchange) Impact {
	return e.strategy.Impact(e.input(e.GetUserStats(userID), e.GlobalStats(), exchange))
}

// CalculateAllSuggestions scores every interested user of the exchange,
// highest score first. Equal scores keep the order of InterestedUsers.
func (e *Engine) CalculateAllSuggestions(exchange model.ShiftExchange) []SuggestionScore {
	suggestions := make([]SuggestionScore, 0, len(exchange.InterestedUsers))
	if len(exchange.InterestedUsers) == 0 {
		return suggestions
	}

	global := e.GlobalStats()
	for _, userID := range exchange.InterestedUsers {
		suggestions = append(suggestions, e.score(e.GetUserStats(userID), global, exchange))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	return suggestions
}

// score runs the strategy over prepared stats
func (e *Engine) score(stats UserStats, global GlobalEquityStats, exchange model.ShiftExchange) SuggestionScore {
	in := e.input(stats, global, exchange)

	components := e.strategy.Components(in)
	score := percent(e.strategy.Aggregate(in, components))

	return SuggestionScore{
		UserID:         stats.UserID,
		ExchangeID:     exchange.ID,
		Score:          score,
		Components:     components,
		Stats:          stats,
		Impact:         e.strategy.Impact(in),
		Recommendation: Recommend(score, e.strategy.Caveat(components)),
		Color:          ScoreColor(score),
	}
}

func (e *Engine) input(stats UserStats, global GlobalEquityStats, exchange model.ShiftExchange) ScoringInput {
	return ScoringInput{
		Config:         e.scoring,
		Stats:          stats,
		Global:         global,
		Exchange:       exchange,
		ShiftValue:     e.scoring.ShiftScore(exchange.ShiftType, exchange.Date),
		ShiftTypeCount: e.shiftTypeCount(exchange.ShiftType),
	}
}

// shiftTypeCount counts distinct shift types across the score table, completed
// history and the candidate
func (e *Engine) shiftTypeCount(candidateType string) int {
	known := map[string]bool{candidateType: true}
	for shiftType := range e.scoring.ShiftScores {
		known[shiftType] = true
	}
	for _, entry := range e.history {
		if entry.IsCompleted() {
			known[entry.ShiftType] = true
		}
	}
	return len(known)
}
