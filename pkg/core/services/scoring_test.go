package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/internal/config"
	"github.com/jakechorley/garde-exchange/pkg/core/equity"
)

func TestBuildScoringConfig_CopiesTables(t *testing.T) {
	cfg := config.ScoringConfig{
		Coefficients: map[string]float64{"valueEquity": 0.5},
		Equity: config.EquityConfig{
			TargetSatisfactionRate: 0.7,
			SmallDemandBonus:       12,
			DistributionMode:       "priority",
		},
		ShiftScores: map[string]float64{"NUIT": 80},
	}

	scoring, err := BuildScoringConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, 0.5, scoring.Coefficients["valueEquity"])
	assert.Equal(t, 0.7, scoring.Equity.TargetSatisfactionRate)
	assert.Equal(t, 12.0, scoring.Equity.SmallDemandBonus)
	assert.Equal(t, equity.ModePriority, scoring.Equity.DistributionMode)
	assert.Equal(t, 80.0, scoring.ShiftScore("NUIT", "2025-03-10"))
	assert.Empty(t, scoring.DateRules)
}

func TestBuildScoringConfig_WeekendRule(t *testing.T) {
	cfg := config.ScoringConfig{
		ShiftScores: map[string]float64{"GARDE": 40},
		DateRules: []config.DateRule{
			{Name: "weekend", RRule: "FREQ=WEEKLY;BYDAY=SA,SU", Score: 90},
		},
	}

	scoring, err := BuildScoringConfig(cfg)
	require.NoError(t, err)
	require.Len(t, scoring.DateRules, 1)

	assert.Equal(t, 90.0, scoring.ShiftScore("GARDE", "2025-03-15")) // Saturday
	assert.Equal(t, 90.0, scoring.ShiftScore("GARDE", "2025-03-16")) // Sunday
	assert.Equal(t, 40.0, scoring.ShiftScore("GARDE", "2025-03-17")) // Monday
	assert.Equal(t, 40.0, scoring.ShiftScore("GARDE", "not-a-date"))
}

func TestBuildScoringConfig_YearlyRule(t *testing.T) {
	cfg := config.ScoringConfig{
		DateRules: []config.DateRule{
			{Name: "christmas", RRule: "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25", Score: 100},
		},
	}

	scoring, err := BuildScoringConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, 100.0, scoring.ShiftScore("GARDE", "2025-12-25"))
	assert.Equal(t, 100.0, scoring.ShiftScore("GARDE", "2031-12-25"))
	assert.Equal(t, equity.DefaultShiftScore, scoring.ShiftScore("GARDE", "2025-12-24"))
}

func TestBuildScoringConfig_FirstRuleWins(t *testing.T) {
	cfg := config.ScoringConfig{
		DateRules: []config.DateRule{
			{Name: "sunday", RRule: "FREQ=WEEKLY;BYDAY=SU", Score: 95},
			{Name: "weekend", RRule: "FREQ=WEEKLY;BYDAY=SA,SU", Score: 85},
		},
	}

	scoring, err := BuildScoringConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, 95.0, scoring.ShiftScore("GARDE", "2025-03-16"))
	assert.Equal(t, 85.0, scoring.ShiftScore("GARDE", "2025-03-15"))
}

func TestBuildScoringConfig_InvalidRule(t *testing.T) {
	cfg := config.ScoringConfig{
		DateRules: []config.DateRule{{Name: "broken", RRule: "NOT_A_RULE", Score: 90}},
	}

	_, err := BuildScoringConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rrule for date rule 0 (broken)")
}

func TestNewEngine_UsesConfiguredStrategy(t *testing.T) {
	snapshot, err := LoadSnapshot(context.Background(), newMockStore(), zap.NewNop())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Strategy = "value"

	engine, err := NewEngine(cfg, snapshot)
	require.NoError(t, err)
	assert.Equal(t, equity.StrategyValue, engine.Strategy().Name())

	cfg.Strategy = "lottery"
	_, err = NewEngine(cfg, snapshot)
	assert.Error(t, err)
}
