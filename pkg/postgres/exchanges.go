package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/garde-exchange/pkg/db"
)

// GetExchanges retrieves all shift exchanges, oldest shift first
func (d *DB) GetExchanges(ctx context.Context) ([]db.Exchange, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, user_id, shift_date, period, shift_type, status, interested_users, comment
		FROM shift_exchange
		ORDER BY shift_date, period, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []db.Exchange
	for rows.Next() {
		var e db.Exchange
		var date time.Time
		var comment *string
		if err := rows.Scan(&e.ID, &e.UserID, &date, &e.Period, &e.ShiftType, &e.Status, &e.InterestedUsers, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan shift exchange: %w", err)
		}
		e.Date = date.Format("2006-01-02")
		if comment != nil {
			e.Comment = *comment
		}
		exchanges = append(exchanges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift exchanges: %w", err)
	}

	return exchanges, nil
}
