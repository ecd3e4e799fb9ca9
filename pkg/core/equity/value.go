package equity

import "math"

// valueComponents in reporting order
var valueComponents = []string{
	ComponentValueEquity,
	ComponentCountEquity,
	ComponentTypeDiversity,
	ComponentParticipation,
	ComponentCurrentLoad,
}

var componentLabels = map[string]string{
	ComponentValueEquity:   "value equity",
	ComponentCountEquity:   "shift count equity",
	ComponentTypeDiversity: "shift type diversity",
	ComponentParticipation: "participation",
	ComponentCurrentLoad:   "current load",
}

// ValueStrategy scores users on the accumulated value of the shifts they received.
// The aggregate is the dot product of the components with ScoringConfig.Coefficients;
// missing coefficients weigh 0.
type ValueStrategy struct{}

func (s *ValueStrategy) Name() string {
	return StrategyValue
}

func (s *ValueStrategy) Components(in ScoringInput) Components {
	return Components{
		ComponentValueEquity:   round(valueEquity(in.Stats.AccumulatedValue, in.ShiftValue, in.Global.AverageValue)),
		ComponentCountEquity:   round(countEquity(in.Stats.ReceivedShifts, in.Global.AverageReceivedShifts)),
		ComponentTypeDiversity: round(typeDiversity(in.Stats.ShiftTypeCounts, in.Exchange.ShiftType, in.ShiftTypeCount)),
		ComponentParticipation: in.Stats.Activity.ParticipationRate,
		ComponentCurrentLoad:   round(currentLoad(in.Stats.ReceivedShifts, in.Global.MaxReceivedShifts)),
	}
}

// valueEquity is 50 when the shift leaves the distance to the mean value unchanged,
// 100 when it closes the gap by the full shift value and 0 when it widens it as much.
func valueEquity(value, shiftValue, average float64) float64 {
	if shiftValue == 0 {
		return 50
	}
	before := math.Abs(value - average)
	after := math.Abs(value + shiftValue - average)
	return clamp(50+50*(before-after)/shiftValue, 0, 100)
}

// countEquity is 100 while the projected count stays within the per-user target,
// then drops by 100 per target's worth of excess.
func countEquity(received int, target float64) float64 {
	if target == 0 {
		return 100
	}
	projected := float64(received + 1)
	if projected <= target {
		return 100
	}
	return clamp(100-(projected-target)/target*100, 0, 100)
}

// typeDiversity rewards users with a broad range of shift types, and new types above all
func typeDiversity(received map[string]int, candidateType string, knownTypes int) float64 {
	if knownTypes == 0 {
		return 100
	}
	breadth := clamp(float64(len(received))/float64(knownTypes), 0, 1) * 100
	if received[candidateType] == 0 {
		return 50 + breadth/2
	}
	return breadth / 2
}

// currentLoad is 100 for users with no shift, 0 for the most loaded one
func currentLoad(received, maxReceived int) float64 {
	if maxReceived == 0 {
		return 100
	}
	return clamp(100*(1-float64(received)/float64(maxReceived)), 0, 100)
}

func (s *ValueStrategy) Aggregate(in ScoringInput, components Components) float64 {
	score := 0.0
	for _, name := range valueComponents {
		score += in.Config.Coefficients[name] * float64(components[name])
	}
	return score
}

func (s *ValueStrategy) Impact(in ScoringInput) Impact {
	value := in.Stats.AccumulatedValue
	newValue := value + in.ShiftValue
	average := in.Global.AverageValue

	return Impact{
		NewValue:          newValue,
		Delta:             in.ShiftValue,
		EquityImprovement: math.Abs(value-average) - math.Abs(newValue-average),
	}
}

// Caveat returns the label of the lowest component, first in reporting order on ties
func (s *ValueStrategy) Caveat(components Components) string {
	weakest := ""
	lowest := math.MaxInt
	for _, name := range valueComponents {
		score, ok := components[name]
		if !ok {
			continue
		}
		if score < lowest {
			lowest = score
			weakest = name
		}
	}
	return componentLabels[weakest]
}
