package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/garde-exchange/pkg/db"
)

// GetHistory retrieves all finalized exchanges regardless of status.
// Filtering on completed entries happens in the scoring engine.
func (d *DB) GetHistory(ctx context.Context) ([]db.History, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, original_user_id, new_user_id, shift_date, period, shift_type,
		       is_permutation, status, interested_users, original_exchange_id
		FROM exchange_history
		ORDER BY shift_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange history: %w", err)
	}
	defer rows.Close()

	var history []db.History
	for rows.Next() {
		var h db.History
		var date time.Time
		var originalExchangeID *string
		if err := rows.Scan(
			&h.ID, &h.OriginalUserID, &h.NewUserID, &date, &h.Period, &h.ShiftType,
			&h.IsPermutation, &h.Status, &h.InterestedUsers, &originalExchangeID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange history: %w", err)
		}
		h.Date = date.Format("2006-01-02")
		if originalExchangeID != nil {
			h.OriginalExchangeID = *originalExchangeID
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange history: %w", err)
	}

	return history, nil
}
