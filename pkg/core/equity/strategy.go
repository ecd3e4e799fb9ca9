package equity

import (
	"fmt"

	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// Strategy names accepted by NewStrategy
const (
	StrategyRate  = "rate"
	StrategyValue = "value"
)

// ScoringInput is everything a strategy needs to score one (user, exchange) pair
type ScoringInput struct {
	Config   ScoringConfig
	Stats    UserStats
	Global   GlobalEquityStats
	Exchange model.ShiftExchange

	// ShiftValue is the configured score of the candidate shift
	ShiftValue float64

	// ShiftTypeCount is the number of distinct shift types known to the bag,
	// including the candidate's
	ShiftTypeCount int
}

// Strategy defines how a fairness model turns statistics into a score
type Strategy interface {
	// Name returns the identifier of this strategy
	Name() string

	// Components computes the independent component scores, each rounded to an integer.
	// Components are not clamped; only the aggregate is.
	Components(in ScoringInput) Components

	// Aggregate combines the components into one unclamped scalar
	Aggregate(in ScoringInput, components Components) float64

	// Impact projects granting the candidate shift without touching in.Stats
	Impact(in ScoringInput) Impact

	// Caveat names the weakest component for "recommended" scores.
	// Returns "" if this strategy does not report caveats.
	Caveat(components Components) string
}

// NewStrategy returns the strategy registered under name
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case StrategyRate, "":
		return &RateStrategy{}, nil
	case StrategyValue:
		return &ValueStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy %q", name)
	}
}
