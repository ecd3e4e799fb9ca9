package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/pkg/core/model"
	"github.com/jakechorley/garde-exchange/pkg/db"
)

// Snapshot holds the collections one scoring session runs over
type Snapshot struct {
	Users     []model.User
	Exchanges []model.ShiftExchange
	History   []model.ExchangeHistory
}

// FindUser returns the user with the given ID
func (s *Snapshot) FindUser(userID string) (model.User, bool) {
	for _, u := range s.Users {
		if u.ID == userID {
			return u, true
		}
	}
	return model.User{}, false
}

// FindExchange returns the exchange with the given ID
func (s *Snapshot) FindExchange(exchangeID string) (model.ShiftExchange, bool) {
	for _, e := range s.Exchanges {
		if e.ID == exchangeID {
			return e, true
		}
	}
	return model.ShiftExchange{}, false
}

// LoadSnapshot reads users, exchanges and history from the store
func LoadSnapshot(ctx context.Context, store db.SnapshotStore, logger *zap.Logger) (*Snapshot, error) {
	logger.Debug("Loading snapshot")

	users, err := store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	exchanges, err := store.GetExchanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchanges: %w", err)
	}

	history, err := store.GetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange history: %w", err)
	}

	snapshot := &Snapshot{
		Users:     make([]model.User, 0, len(users)),
		Exchanges: make([]model.ShiftExchange, 0, len(exchanges)),
		History:   make([]model.ExchangeHistory, 0, len(history)),
	}

	for _, u := range users {
		snapshot.Users = append(snapshot.Users, toModelUser(u))
	}

	for _, e := range exchanges {
		exchange := toModelExchange(e)
		if !exchange.Period.IsValid() {
			logger.Warn("Exchange has unknown period",
				zap.String("exchange_id", exchange.ID),
				zap.String("period", e.Period))
		}
		snapshot.Exchanges = append(snapshot.Exchanges, exchange)
	}

	for _, h := range history {
		snapshot.History = append(snapshot.History, toModelHistory(h))
	}

	logger.Debug("Snapshot loaded",
		zap.Int("users", len(snapshot.Users)),
		zap.Int("exchanges", len(snapshot.Exchanges)),
		zap.Int("history", len(snapshot.History)))

	return snapshot, nil
}

// toModelRoles maps role names to flags, ignoring case and unknown names
func toModelRoles(names []string) model.Roles {
	var roles model.Roles
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "admin":
			roles.IsAdmin = true
		case "user":
			roles.IsUser = true
		case "manager":
			roles.IsManager = true
		case "validator":
			roles.IsValidator = true
		}
	}
	return roles
}

func toModelUser(u db.User) model.User {
	return model.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Roles:     toModelRoles(u.Roles),
	}
}

func toModelExchange(e db.Exchange) model.ShiftExchange {
	return model.ShiftExchange{
		ID:              e.ID,
		UserID:          e.UserID,
		Date:            e.Date,
		Period:          model.Period(e.Period),
		ShiftType:       e.ShiftType,
		Status:          model.ExchangeStatus(e.Status),
		InterestedUsers: e.InterestedUsers,
		Comment:         e.Comment,
	}
}

func toModelHistory(h db.History) model.ExchangeHistory {
	return model.ExchangeHistory{
		ID:                 h.ID,
		OriginalUserID:     h.OriginalUserID,
		NewUserID:          h.NewUserID,
		Date:               h.Date,
		Period:             model.Period(h.Period),
		ShiftType:          h.ShiftType,
		IsPermutation:      h.IsPermutation,
		Status:             h.Status,
		InterestedUsers:    h.InterestedUsers,
		OriginalExchangeID: h.OriginalExchangeID,
	}
}
