package equity

import "github.com/jakechorley/garde-exchange/pkg/core/model"

// DefaultShiftScore is used for shift types missing from the score table
const DefaultShiftScore = 50.0

// DistributionMode selects the fixed weighting scheme of the rate strategy
type DistributionMode string

const (
	ModeEquity   DistributionMode = "equity"
	ModePriority DistributionMode = "priority"
	ModeMixed    DistributionMode = "mixed"
)

// Component names. Coefficient tables are keyed by these.
const (
	// Rate strategy
	ComponentSatisfactionDeficit = "satisfactionDeficit"
	ComponentDemandPriority      = "demandPriority"
	ComponentShiftValue          = "shiftValue"
	ComponentEquity              = "equity"

	// Value strategy
	ComponentValueEquity   = "valueEquity"
	ComponentCountEquity   = "countEquity"
	ComponentTypeDiversity = "typeDiversity"
	ComponentParticipation = "participation"
	ComponentCurrentLoad   = "currentLoad"
)

// EquityConfig holds the fairness parameters
type EquityConfig struct {
	// TargetSatisfactionRate is the received/requested ratio every user should reach (0-1)
	TargetSatisfactionRate float64

	// SmallDemandBonus is added (scaled) for users with few requests
	SmallDemandBonus float64

	DistributionMode DistributionMode
}

// DateRule overrides the shift-type score for dates it applies to
type DateRule struct {
	Name string

	// AppliesTo reports whether the rule matches a date (2006-01-02)
	AppliesTo func(date string) bool

	Score float64
}

// ScoringConfig contains the weights and tables used by the engine.
// It is not validated here: weights that do not sum to 1 or a target outside
// [0,1] simply produce whatever the formulas give.
type ScoringConfig struct {
	Coefficients map[string]float64
	Equity       EquityConfig
	ShiftScores  map[string]float64

	// DateRules are checked in order before ShiftScores, first match wins
	DateRules []DateRule
}

// ShiftScore returns the desirability of a shift of the given type on the given date
func (c ScoringConfig) ShiftScore(shiftType, date string) float64 {
	for _, rule := range c.DateRules {
		if rule.AppliesTo != nil && rule.AppliesTo(date) {
			return rule.Score
		}
	}
	if score, ok := c.ShiftScores[shiftType]; ok {
		return score
	}
	return DefaultShiftScore
}

// ActivityTally counts a user's activity within one period or shift type
type ActivityTally struct {
	Proposed   int
	Positioned int
	Received   int
}

// ActivityStats are the raw bag counts of a user
type ActivityStats struct {
	ProposedCount   int
	PositionedCount int
	ReceivedCount   int
	GivenCount      int

	// SuccessRate is received/positioned as a percentage (0-100)
	SuccessRate int

	// ParticipationRate is (proposed+positioned)/available exchanges as a percentage (0-100)
	ParticipationRate int

	ByPeriod    map[model.Period]ActivityTally
	ByShiftType map[string]ActivityTally
}

// UserStats is the per-user snapshot consumed by the strategies
type UserStats struct {
	UserID string

	RequestedShifts int
	ReceivedShifts  int

	// SatisfactionRate is received/requested (0-1), 0 without requests
	SatisfactionRate float64

	// AccumulatedValue is the sum of the scores of the shifts received
	AccumulatedValue float64

	// ShiftTypeCounts and PeriodCounts tally the shifts received
	ShiftTypeCounts map[string]int
	PeriodCounts    map[model.Period]int

	Activity ActivityStats
}

// GlobalEquityStats is the population baseline
type GlobalEquityStats struct {
	TotalRequests    int
	TotalDistributed int

	AverageSatisfactionRate float64
	MinSatisfactionRate     float64
	MaxSatisfactionRate     float64

	AverageValue float64
	MedianValue  float64
	StdDevValue  float64

	// EquityScore is 100 minus the coefficient of variation of value (0-100)
	EquityScore float64

	// AverageReceivedShifts is the per-user target count
	AverageReceivedShifts float64

	MaxRequestedShifts int
	MaxReceivedShifts  int

	ActiveUsers   int
	PendingShifts int
}

// Components maps a component name to its rounded score
type Components map[string]int

// Impact projects granting the candidate shift to a user
type Impact struct {
	// Rate strategy
	NewSatisfactionRate float64
	RemainingDeficit    float64

	// Value strategy
	NewValue          float64
	EquityImprovement float64

	// Delta is the change of rate (rate strategy) or value (value strategy)
	Delta float64
}

// Color is the display tier of a score
type Color string

const (
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// SuggestionScore is the engine output for one (user, exchange) pair
type SuggestionScore struct {
	UserID         string
	ExchangeID     string
	Score          int
	Components     Components
	Stats          UserStats
	Impact         Impact
	Recommendation string
	Color          Color
}

// Assignment is one decision of the greedy distribution
type Assignment struct {
	ExchangeID string
	UserID     string
	Score      int
}
