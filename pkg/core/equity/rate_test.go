package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// targetFixture: a 0/4, b 2/4, c 4/4. Mean rate 0.5.
func targetFixture() ([]model.User, []model.ExchangeHistory) {
	history := []model.ExchangeHistory{
		completedTo("h1", "c", "a", "b", "c"),
		completedTo("h2", "c", "a", "b", "c"),
		completedTo("h3", "c", "a", "b", "c"),
		completedTo("h4", "c", "a", "b", "c"),
		// Direct assignments, no request attached
		completedTo("h5", "b"),
		completedTo("h6", "b"),
	}
	return participants("a", "b", "c"), history
}

func TestRateStrategy_DeficitScenario(t *testing.T) {
	users, history := targetFixture()
	engine := NewEngine(EngineConfig{
		Scoring: rateConfig(ModeEquity, 10),
		Users:   users,
		History: history,
	})
	candidate := pendingExchange("ex", "owner", "a", "b")

	global := engine.GlobalStats()
	require.InDelta(t, 0.5, global.AverageSatisfactionRate, 1e-9)

	a := engine.CalculateSuggestionScore("a", candidate)
	b := engine.CalculateSuggestionScore("b", candidate)

	assert.Equal(t, 4, a.Stats.RequestedShifts)
	assert.Equal(t, 0, a.Stats.ReceivedShifts)
	assert.Equal(t, 100, a.Components[ComponentSatisfactionDeficit])
	assert.Equal(t, 100, a.Components[ComponentEquity])
	assert.Equal(t, 50, a.Components[ComponentShiftValue])
	assert.Equal(t, 0, a.Components[ComponentDemandPriority])
	// 0.5*100 + 0.3*100 + 0.2*50 + 10*0.3
	assert.Equal(t, 93, a.Score)

	assert.Equal(t, 0, b.Components[ComponentSatisfactionDeficit])
	assert.Equal(t, 50, b.Components[ComponentEquity])
	// 0.3*50 + 0.2*50 + 3
	assert.Equal(t, 28, b.Score)

	assert.Greater(t, a.Score, b.Score)
}

func TestRateStrategy_AboveMeanIsPenalised(t *testing.T) {
	users, history := targetFixture()
	engine := NewEngine(EngineConfig{Scoring: rateConfig(ModeEquity, 10), Users: users, History: history})

	c := engine.CalculateSuggestionScore("c", pendingExchange("ex", "owner", "c"))

	assert.Equal(t, 0, c.Components[ComponentEquity])
	assert.Equal(t, 13, c.Score)
}

func TestRateStrategy_PriorityMode(t *testing.T) {
	users, history := targetFixture()
	engine := NewEngine(EngineConfig{Scoring: rateConfig(ModePriority, 10), Users: users, History: history})

	a := engine.CalculateSuggestionScore("a", pendingExchange("ex", "owner", "a"))

	// 0.5*0 + 0.3*100 + 0.2*50 + 3
	assert.Equal(t, 43, a.Score)
}

func TestRateStrategy_UnknownModeUsesMixed(t *testing.T) {
	users, history := targetFixture()
	candidate := pendingExchange("ex", "owner", "a")

	mixed := NewEngine(EngineConfig{Scoring: rateConfig(ModeMixed, 10), Users: users, History: history})
	unknown := NewEngine(EngineConfig{Scoring: rateConfig("fastest", 10), Users: users, History: history})

	assert.Equal(t,
		mixed.CalculateSuggestionScore("a", candidate).Score,
		unknown.CalculateSuggestionScore("a", candidate).Score,
	)
}

func TestRateStrategy_ZeroTargetHasNoDeficit(t *testing.T) {
	s := &RateStrategy{}
	components := s.Components(ScoringInput{
		Config: ScoringConfig{Equity: EquityConfig{TargetSatisfactionRate: 0}},
		Stats:  UserStats{RequestedShifts: 2},
	})

	assert.Equal(t, 0, components[ComponentSatisfactionDeficit])
}

func TestRateStrategy_DemandPriorityNeutralWithoutRequests(t *testing.T) {
	s := &RateStrategy{}
	components := s.Components(ScoringInput{Config: rateConfig(ModeEquity, 0)})

	assert.Equal(t, 50, components[ComponentDemandPriority])
}

func TestRateStrategy_DemandPriorityFavoursFewRequests(t *testing.T) {
	s := &RateStrategy{}
	components := s.Components(ScoringInput{
		Config: rateConfig(ModeEquity, 0),
		Stats:  UserStats{RequestedShifts: 1},
		Global: GlobalEquityStats{MaxRequestedShifts: 4},
	})

	assert.Equal(t, 75, components[ComponentDemandPriority])
}

func TestRateEquity_MonotonicInDeficit(t *testing.T) {
	s := &RateStrategy{}
	previous := -1
	// Lower rate, larger deficit: equity must never drop
	for rate := 1.0; rate >= 0; rate -= 0.05 {
		components := s.Components(ScoringInput{
			Config: rateConfig(ModeEquity, 0),
			Stats:  UserStats{SatisfactionRate: rate},
			Global: GlobalEquityStats{AverageSatisfactionRate: 0.4},
		})
		assert.GreaterOrEqual(t, components[ComponentEquity], previous, "rate %.2f", rate)
		assert.GreaterOrEqual(t, components[ComponentEquity], 0)
		assert.LessOrEqual(t, components[ComponentEquity], 100)
		previous = components[ComponentEquity]
	}
}

func TestSmallDemandBonus_Tiers(t *testing.T) {
	assert.Equal(t, 5.0, smallDemandBonus(0, 10))
	assert.Equal(t, 5.0, smallDemandBonus(3, 10))
	assert.Equal(t, 3.0, smallDemandBonus(4, 10))
	assert.Equal(t, 3.0, smallDemandBonus(5, 10))
	assert.Equal(t, 0.0, smallDemandBonus(6, 10))
}

func TestRateStrategy_Impact(t *testing.T) {
	s := &RateStrategy{}
	in := ScoringInput{
		Config: rateConfig(ModeEquity, 0),
		Stats:  UserStats{RequestedShifts: 4, ReceivedShifts: 0},
	}

	impact := s.Impact(in)

	assert.Equal(t, 0.25, impact.NewSatisfactionRate)
	assert.Equal(t, 0.25, impact.Delta)
	assert.Equal(t, 0.25, impact.RemainingDeficit)
	assert.Equal(t, 0, in.Stats.ReceivedShifts)
}

func TestRateStrategy_ImpactWithoutRequests(t *testing.T) {
	s := &RateStrategy{}

	impact := s.Impact(ScoringInput{Config: rateConfig(ModeEquity, 0)})

	assert.Equal(t, 1.0, impact.NewSatisfactionRate)
	assert.Equal(t, 0.0, impact.RemainingDeficit)
}

func TestRateStrategy_NoCaveat(t *testing.T) {
	s := &RateStrategy{}
	assert.Empty(t, s.Caveat(Components{ComponentEquity: 0}))
}
