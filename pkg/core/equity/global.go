package equity

import (
	"math"
	"slices"
	"sort"

	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// ComputeGlobalStats aggregates the stats of every participating user into the
// population baseline. Pure administrators are left out.
//
// Rate and value series are taken over active users (at least one request).
// Without any active user the zero value is returned.
func ComputeGlobalStats(config ScoringConfig, users []model.User, exchanges []model.ShiftExchange, history []model.ExchangeHistory) GlobalEquityStats {
	var (
		global GlobalEquityStats
		rates  []float64
		values []float64
	)

	for _, user := range users {
		if !user.IsParticipant() {
			continue
		}

		stats := ComputeUserStats(user.ID, config, exchanges, history)

		global.MaxRequestedShifts = max(global.MaxRequestedShifts, stats.RequestedShifts)
		global.MaxReceivedShifts = max(global.MaxReceivedShifts, stats.ReceivedShifts)

		if stats.RequestedShifts == 0 {
			continue
		}

		global.ActiveUsers++
		global.TotalRequests += stats.RequestedShifts
		global.TotalDistributed += stats.ReceivedShifts
		rates = append(rates, stats.SatisfactionRate)
		values = append(values, stats.AccumulatedValue)
	}

	if global.ActiveUsers == 0 {
		return GlobalEquityStats{}
	}

	for _, exchange := range exchanges {
		if exchange.Status == model.ExchangePending {
			global.PendingShifts++
		}
	}

	n := float64(global.ActiveUsers)

	global.AverageSatisfactionRate = mean(rates)
	global.MinSatisfactionRate = slices.Min(rates)
	global.MaxSatisfactionRate = slices.Max(rates)

	global.AverageValue = mean(values)
	global.MedianValue = median(values)
	global.StdDevValue = stdDev(values, global.AverageValue)

	global.EquityScore = 100
	if global.AverageValue > 0 {
		global.EquityScore = clamp(100-(global.StdDevValue/global.AverageValue)*100, 0, 100)
	}

	global.AverageReceivedShifts = float64(global.TotalDistributed) / n

	return global
}

func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// median returns sorted[n/2]. Even-length series are not averaged.
func median(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sorted := append([]float64(nil), series...)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// stdDev is the population standard deviation (divides by n)
func stdDev(series []float64, avg float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range series {
		sumSquares += (v - avg) * (v - avg)
	}
	return math.Sqrt(sumSquares / float64(len(series)))
}
