package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/garde-exchange/internal/config"
	"github.com/jakechorley/garde-exchange/pkg/core/equity"
)

// BuildScoringConfig converts the file configuration into engine settings
func BuildScoringConfig(cfg config.ScoringConfig) (equity.ScoringConfig, error) {
	rules, err := convertDateRules(cfg.DateRules)
	if err != nil {
		return equity.ScoringConfig{}, err
	}

	return equity.ScoringConfig{
		Coefficients: cfg.Coefficients,
		Equity: equity.EquityConfig{
			TargetSatisfactionRate: cfg.Equity.TargetSatisfactionRate,
			SmallDemandBonus:       cfg.Equity.SmallDemandBonus,
			DistributionMode:       equity.DistributionMode(cfg.Equity.DistributionMode),
		},
		ShiftScores: cfg.ShiftScores,
		DateRules:   rules,
	}, nil
}

// NewEngine builds a scoring engine over the snapshot with the configured strategy
func NewEngine(cfg *config.Config, snapshot *Snapshot) (*equity.Engine, error) {
	scoring, err := BuildScoringConfig(cfg.Scoring)
	if err != nil {
		return nil, err
	}

	strategy, err := equity.NewStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	return equity.NewEngine(equity.EngineConfig{
		Scoring:   scoring,
		Strategy:  strategy,
		Users:     snapshot.Users,
		Exchanges: snapshot.Exchanges,
		History:   snapshot.History,
	}), nil
}

// convertDateRules parses each rule once. A rule without DTSTART is anchored on
// the date being tested, so "FREQ=WEEKLY;BYDAY=SA,SU" matches every weekend.
func convertDateRules(rules []config.DateRule) ([]equity.DateRule, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	converted := make([]equity.DateRule, 0, len(rules))
	for i, rule := range rules {
		option, err := rrule.StrToROption(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for date rule %d (%s): %w", i, rule.Name, err)
		}

		converted = append(converted, equity.DateRule{
			Name:      rule.Name,
			AppliesTo: dateMatcher(*option),
			Score:     rule.Score,
		})
	}

	return converted, nil
}

// dateMatcher builds a fresh RRule per call, so the closure is safe for concurrent use
func dateMatcher(option rrule.ROption) func(date string) bool {
	return func(date string) bool {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return false
		}

		opt := option
		if opt.Dtstart.IsZero() {
			opt.Dtstart = day
		}

		rule, err := rrule.NewRRule(opt)
		if err != nil {
			return false
		}

		return len(rule.Between(day, day.Add(24*time.Hour-time.Second), true)) > 0
	}
}
