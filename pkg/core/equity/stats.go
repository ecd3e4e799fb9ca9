package equity

import "github.com/jakechorley/garde-exchange/pkg/core/model"

// ComputeActivityStats counts what a user did on the bag.
//
// Live exchanges and completed history are disjoint sources: an exchange leaves
// the live collection once it is completed, so summing both does not double count.
func ComputeActivityStats(userID string, exchanges []model.ShiftExchange, history []model.ExchangeHistory) ActivityStats {
	stats := ActivityStats{
		ByPeriod:    make(map[model.Period]ActivityTally),
		ByShiftType: make(map[string]ActivityTally),
	}

	tally := func(period model.Period, shiftType string, update func(*ActivityTally)) {
		p := stats.ByPeriod[period]
		update(&p)
		stats.ByPeriod[period] = p

		t := stats.ByShiftType[shiftType]
		update(&t)
		stats.ByShiftType[shiftType] = t
	}

	availableExchanges := len(exchanges)

	for _, exchange := range exchanges {
		if exchange.UserID == userID {
			stats.ProposedCount++
			tally(exchange.Period, exchange.ShiftType, func(t *ActivityTally) { t.Proposed++ })
		}
		if exchange.IsInterested(userID) {
			stats.PositionedCount++
			tally(exchange.Period, exchange.ShiftType, func(t *ActivityTally) { t.Positioned++ })
		}
	}

	for _, entry := range history {
		if !entry.IsCompleted() {
			continue
		}
		if entry.OriginalExchangeID != "" {
			availableExchanges++
		}
		if entry.OriginalUserID == userID {
			stats.ProposedCount++
			stats.GivenCount++
			tally(entry.Period, entry.ShiftType, func(t *ActivityTally) { t.Proposed++ })
		}
		if entry.WasInterested(userID) {
			stats.PositionedCount++
			tally(entry.Period, entry.ShiftType, func(t *ActivityTally) { t.Positioned++ })
		}
		if entry.NewUserID == userID {
			stats.ReceivedCount++
			tally(entry.Period, entry.ShiftType, func(t *ActivityTally) { t.Received++ })
		}
	}

	stats.SuccessRate = percent(ratio(float64(stats.ReceivedCount), float64(stats.PositionedCount)) * 100)
	stats.ParticipationRate = percent(ratio(
		float64(stats.ProposedCount+stats.PositionedCount),
		float64(availableExchanges),
	) * 100)

	return stats
}

// ComputeUserStats builds the scoring snapshot of a user from the current collections.
// Requests are the exchanges the user positioned on, live or completed.
func ComputeUserStats(userID string, config ScoringConfig, exchanges []model.ShiftExchange, history []model.ExchangeHistory) UserStats {
	activity := ComputeActivityStats(userID, exchanges, history)

	stats := UserStats{
		UserID:          userID,
		RequestedShifts: activity.PositionedCount,
		ReceivedShifts:  activity.ReceivedCount,
		ShiftTypeCounts: make(map[string]int),
		PeriodCounts:    make(map[model.Period]int),
		Activity:        activity,
	}

	for _, entry := range history {
		if !entry.IsCompleted() || entry.NewUserID != userID {
			continue
		}
		stats.AccumulatedValue += config.ShiftScore(entry.ShiftType, entry.Date)
		stats.ShiftTypeCounts[entry.ShiftType]++
		stats.PeriodCounts[entry.Period]++
	}

	stats.SatisfactionRate = satisfactionRate(stats.ReceivedShifts, stats.RequestedShifts)

	return stats
}

// satisfactionRate returns received/requested clamped to [0,1]
func satisfactionRate(received, requested int) float64 {
	return clamp(ratio(float64(received), float64(requested)), 0, 1)
}

// withGrantedShift returns stats as if the exchange had been received.
// The maps are copied so the input is left untouched.
func withGrantedShift(stats UserStats, exchange model.ShiftExchange, value float64) UserStats {
	granted := stats
	granted.ShiftTypeCounts = make(map[string]int, len(stats.ShiftTypeCounts)+1)
	for k, v := range stats.ShiftTypeCounts {
		granted.ShiftTypeCounts[k] = v
	}
	granted.PeriodCounts = make(map[model.Period]int, len(stats.PeriodCounts)+1)
	for k, v := range stats.PeriodCounts {
		granted.PeriodCounts[k] = v
	}

	granted.ReceivedShifts++
	granted.Activity.ReceivedCount++
	granted.AccumulatedValue += value
	granted.ShiftTypeCounts[exchange.ShiftType]++
	granted.PeriodCounts[exchange.Period]++
	granted.SatisfactionRate = satisfactionRate(granted.ReceivedShifts, granted.RequestedShifts)

	granted.Activity.SuccessRate = percent(ratio(float64(granted.Activity.ReceivedCount), float64(granted.Activity.PositionedCount)) * 100)

	return granted
}
