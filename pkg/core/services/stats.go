package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// UserReport pairs a user with their computed stats
type UserReport struct {
	User  model.User
	Stats equity.UserStats
}

// GetUserReport computes the stats of one user of the snapshot
func GetUserReport(engine *equity.Engine, snapshot *Snapshot, userID string, logger *zap.Logger) (*UserReport, error) {
	user, ok := snapshot.FindUser(userID)
	if !ok {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	stats := engine.GetUserStats(userID)

	logger.Debug("User stats computed",
		zap.String("user_id", userID),
		zap.Int("requested", stats.RequestedShifts),
		zap.Int("received", stats.ReceivedShifts),
		zap.Float64("satisfaction_rate", stats.SatisfactionRate))

	return &UserReport{User: user, Stats: stats}, nil
}

// GetGlobalStats computes the population baseline
func GetGlobalStats(engine *equity.Engine, logger *zap.Logger) equity.GlobalEquityStats {
	global := engine.GlobalStats()

	logger.Debug("Global stats computed",
		zap.Int("active_users", global.ActiveUsers),
		zap.Int("pending_shifts", global.PendingShifts),
		zap.Float64("equity_score", global.EquityScore))

	return global
}
