package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/garde-exchange/pkg/db"
)

// GetUsers retrieves all user accounts
func (d *DB) GetUsers(ctx context.Context) ([]db.User, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, roles
		FROM app_user
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Roles); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
