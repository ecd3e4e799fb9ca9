package equity

import "github.com/jakechorley/garde-exchange/pkg/core/model"

func participants(ids ...string) []model.User {
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, model.User{ID: id, Roles: model.Roles{IsUser: true}})
	}
	return users
}

func pendingExchange(id, owner string, interested ...string) model.ShiftExchange {
	return model.ShiftExchange{
		ID:              id,
		UserID:          owner,
		Date:            "2025-03-10",
		Period:          model.PeriodMorning,
		ShiftType:       "GARDE",
		Status:          model.ExchangePending,
		InterestedUsers: interested,
	}
}

// completedTo builds a completed history entry received by newUser
func completedTo(id, newUser string, interested ...string) model.ExchangeHistory {
	return model.ExchangeHistory{
		ID:              id,
		OriginalUserID:  "owner",
		NewUserID:       newUser,
		Date:            "2025-01-06",
		Period:          model.PeriodEvening,
		ShiftType:       "GARDE",
		Status:          model.HistoryCompleted,
		InterestedUsers: interested,
	}
}

func rateConfig(mode DistributionMode, bonus float64) ScoringConfig {
	return ScoringConfig{
		Equity: EquityConfig{
			TargetSatisfactionRate: 0.5,
			SmallDemandBonus:       bonus,
			DistributionMode:       mode,
		},
	}
}
