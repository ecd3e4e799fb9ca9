package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/garde-exchange/pkg/db"
)

// InsertDistributionProposals inserts the assignments of one distribution run in a single batch
func (d *DB) InsertDistributionProposals(ctx context.Context, proposals []db.DistributionProposal) error {
	if len(proposals) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, p := range proposals {
		createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("invalid created_at for proposal %s: %w", p.ID, err)
		}
		batch.Queue(`
			INSERT INTO distribution_proposal (id, session_id, exchange_id, user_id, score, strategy, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ID, p.SessionID, p.ExchangeID, p.UserID, p.Score, p.Strategy, createdAt.UTC())
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert distribution proposals: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDistributionProposals retrieves the proposals of a run in insertion order.
// An empty sessionID returns every run.
func (d *DB) GetDistributionProposals(ctx context.Context, sessionID string) ([]db.DistributionProposal, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, session_id, exchange_id, user_id, score, strategy, created_at
		FROM distribution_proposal
		WHERE $1::text = '' OR session_id = $1
		ORDER BY created_at, id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query distribution proposals: %w", err)
	}
	defer rows.Close()

	var proposals []db.DistributionProposal
	for rows.Next() {
		var p db.DistributionProposal
		var createdAt time.Time
		if err := rows.Scan(&p.ID, &p.SessionID, &p.ExchangeID, &p.UserID, &p.Score, &p.Strategy, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan distribution proposal: %w", err)
		}
		p.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		proposals = append(proposals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distribution proposals: %w", err)
	}

	return proposals, nil
}
