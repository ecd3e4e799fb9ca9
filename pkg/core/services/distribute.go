package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/core/model"
	"github.com/jakechorley/garde-exchange/pkg/db"
)

// DistributionResult is the outcome of one greedy distribution run
type DistributionResult struct {
	SessionID   string
	Strategy    string
	Assignments []equity.Assignment

	// Unwanted lists pending exchanges nobody is interested in
	Unwanted []model.ShiftExchange

	Saved bool
}

// Distribute runs the greedy distribution over the engine's snapshot.
// When save is set, the assignments are stored as proposals sharing one session ID.
func Distribute(ctx context.Context, engine *equity.Engine, store db.ProposalStore, save bool, logger *zap.Logger) (*DistributionResult, error) {
	result := &DistributionResult{
		SessionID:   uuid.New().String(),
		Strategy:    engine.Strategy().Name(),
		Assignments: engine.Distribute(),
	}

	for _, exchange := range engine.Exchanges() {
		if exchange.Status == model.ExchangePending && len(exchange.InterestedUsers) == 0 {
			result.Unwanted = append(result.Unwanted, exchange)
		}
	}

	logger.Info("Distribution computed",
		zap.String("session_id", result.SessionID),
		zap.String("strategy", result.Strategy),
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("unwanted", len(result.Unwanted)))

	if !save {
		return result, nil
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	proposals := make([]db.DistributionProposal, 0, len(result.Assignments))
	for _, assignment := range result.Assignments {
		proposals = append(proposals, db.DistributionProposal{
			ID:         uuid.New().String(),
			SessionID:  result.SessionID,
			ExchangeID: assignment.ExchangeID,
			UserID:     assignment.UserID,
			Score:      assignment.Score,
			Strategy:   result.Strategy,
			CreatedAt:  createdAt,
		})
	}

	if err := store.InsertDistributionProposals(ctx, proposals); err != nil {
		return nil, fmt.Errorf("failed to save distribution proposals: %w", err)
	}
	result.Saved = true

	logger.Info("Distribution proposals saved",
		zap.String("session_id", result.SessionID),
		zap.Int("count", len(proposals)))

	return result, nil
}
