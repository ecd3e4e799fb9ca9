package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// ExchangeSuggestions is the ranked candidate list of one exchange
type ExchangeSuggestions struct {
	Exchange    model.ShiftExchange
	Suggestions []equity.SuggestionScore
}

// SuggestForExchange ranks the interested users of one exchange
func SuggestForExchange(engine *equity.Engine, snapshot *Snapshot, exchangeID string, logger *zap.Logger) (*ExchangeSuggestions, error) {
	exchange, ok := snapshot.FindExchange(exchangeID)
	if !ok {
		return nil, fmt.Errorf("exchange %s not found", exchangeID)
	}

	if exchange.Status != model.ExchangePending {
		logger.Warn("Scoring an exchange that is not pending",
			zap.String("exchange_id", exchange.ID),
			zap.String("status", string(exchange.Status)))
	}

	suggestions := engine.CalculateAllSuggestions(exchange)

	logger.Debug("Exchange scored",
		zap.String("exchange_id", exchange.ID),
		zap.Int("candidates", len(suggestions)))

	return &ExchangeSuggestions{Exchange: exchange, Suggestions: suggestions}, nil
}

// SuggestForExchanges ranks several exchanges concurrently, at most limit at a
// time. Results keep the order of exchangeIDs. With no IDs, every pending
// exchange with at least one interested user is scored.
func SuggestForExchanges(ctx context.Context, engine *equity.Engine, snapshot *Snapshot, exchangeIDs []string, limit int, logger *zap.Logger) ([]ExchangeSuggestions, error) {
	if len(exchangeIDs) == 0 {
		for _, exchange := range snapshot.Exchanges {
			if exchange.Status == model.ExchangePending && len(exchange.InterestedUsers) > 0 {
				exchangeIDs = append(exchangeIDs, exchange.ID)
			}
		}
	}

	results := make([]ExchangeSuggestions, len(exchangeIDs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, exchangeID := range exchangeIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := SuggestForExchange(engine, snapshot, exchangeID, logger)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to score exchanges: %w", err)
	}

	logger.Info("Exchanges scored", zap.Int("count", len(results)))

	return results, nil
}
