package equity

import "math"

type weight struct {
	component string
	value     float64
}

// modeWeights are the fixed weighting schemes of the rate strategy.
// Slices keep the summation order stable.
var modeWeights = map[DistributionMode][]weight{
	ModeEquity: {
		{ComponentSatisfactionDeficit, 0.5},
		{ComponentEquity, 0.3},
		{ComponentShiftValue, 0.2},
	},
	ModePriority: {
		{ComponentDemandPriority, 0.5},
		{ComponentSatisfactionDeficit, 0.3},
		{ComponentShiftValue, 0.2},
	},
	ModeMixed: {
		{ComponentSatisfactionDeficit, 0.35},
		{ComponentDemandPriority, 0.25},
		{ComponentEquity, 0.25},
		{ComponentShiftValue, 0.15},
	},
}

// RateStrategy scores users on their satisfaction rate (received/requested).
//
// Components:
//   - satisfactionDeficit: distance below the target rate, relative to the target
//   - demandPriority: users with fewer requests than the busiest requester rank higher
//   - shiftValue: the configured score of the candidate shift
//   - equity: reward below the population mean rate, penalty above it
//
// Aggregation uses the fixed scheme of the configured distribution mode plus a
// small-demand bonus. Unknown modes fall back to the mixed scheme.
type RateStrategy struct{}

func (s *RateStrategy) Name() string {
	return StrategyRate
}

func (s *RateStrategy) Components(in ScoringInput) Components {
	target := in.Config.Equity.TargetSatisfactionRate
	rate := in.Stats.SatisfactionRate

	deficit := 0.0
	if target > 0 {
		deficit = math.Max(0, target-rate) / target * 100
	}

	demandPriority := 50.0
	if in.Global.MaxRequestedShifts > 0 {
		demandPriority = 100 * (1 - float64(in.Stats.RequestedShifts)/float64(in.Global.MaxRequestedShifts))
	}

	return Components{
		ComponentSatisfactionDeficit: round(deficit),
		ComponentDemandPriority:      round(demandPriority),
		ComponentShiftValue:          round(in.ShiftValue),
		ComponentEquity:              round(rateEquity(rate, in.Global.AverageSatisfactionRate)),
	}
}

// rateEquity starts at 50 for a user at the mean. Each point above the mean costs
// twice what a point below it earns.
func rateEquity(rate, average float64) float64 {
	if rate > average {
		return math.Max(0, 50-(rate-average)*200)
	}
	return math.Min(100, 50+(average-rate)*100)
}

func (s *RateStrategy) Aggregate(in ScoringInput, components Components) float64 {
	weights, ok := modeWeights[in.Config.Equity.DistributionMode]
	if !ok {
		weights = modeWeights[ModeMixed]
	}

	score := 0.0
	for _, w := range weights {
		score += w.value * float64(components[w.component])
	}

	return score + smallDemandBonus(in.Stats.RequestedShifts, in.Config.Equity.SmallDemandBonus)
}

// smallDemandBonus favours users who rarely ask for shifts
func smallDemandBonus(requested int, bonus float64) float64 {
	switch {
	case requested <= 3:
		return bonus * 0.5
	case requested <= 5:
		return bonus * 0.3
	default:
		return 0
	}
}

func (s *RateStrategy) Impact(in ScoringInput) Impact {
	// A user scored for a shift has asked for it, so there is at least one request
	requested := max(in.Stats.RequestedShifts, 1)
	newRate := satisfactionRate(in.Stats.ReceivedShifts+1, requested)

	return Impact{
		NewSatisfactionRate: newRate,
		Delta:               newRate - in.Stats.SatisfactionRate,
		RemainingDeficit:    math.Max(0, in.Config.Equity.TargetSatisfactionRate-newRate),
	}
}

func (s *RateStrategy) Caveat(components Components) string {
	return ""
}
