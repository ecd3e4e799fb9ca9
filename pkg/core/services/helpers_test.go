package services

import (
	"context"

	"github.com/jakechorley/garde-exchange/internal/config"
	"github.com/jakechorley/garde-exchange/pkg/db"
)

// mockStore implements db.Database
type mockStore struct {
	users     []db.User
	exchanges []db.Exchange
	history   []db.History

	getUsersErr     error
	getExchangesErr error
	getHistoryErr   error
	insertErr       error

	inserted []db.DistributionProposal
}

func (m *mockStore) GetUsers(ctx context.Context) ([]db.User, error) {
	if m.getUsersErr != nil {
		return nil, m.getUsersErr
	}
	return m.users, nil
}

func (m *mockStore) GetExchanges(ctx context.Context) ([]db.Exchange, error) {
	if m.getExchangesErr != nil {
		return nil, m.getExchangesErr
	}
	return m.exchanges, nil
}

func (m *mockStore) GetHistory(ctx context.Context) ([]db.History, error) {
	if m.getHistoryErr != nil {
		return nil, m.getHistoryErr
	}
	return m.history, nil
}

func (m *mockStore) InsertDistributionProposals(ctx context.Context, proposals []db.DistributionProposal) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, proposals...)
	return nil
}

func (m *mockStore) GetDistributionProposals(ctx context.Context, sessionID string) ([]db.DistributionProposal, error) {
	var out []db.DistributionProposal
	for _, p := range m.inserted {
		if sessionID == "" || p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}

// newMockStore: u1 already received a shift, u2 and u3 nothing.
// ex-a has three candidates, ex-b only u3, ex-c nobody.
func newMockStore() *mockStore {
	return &mockStore{
		users: []db.User{
			{ID: "admin", FirstName: "Ada", LastName: "Admin", Roles: []string{"admin"}},
			{ID: "owner", FirstName: "Olga", LastName: "Owner", Roles: []string{"user"}},
			{ID: "u1", FirstName: "Une", LastName: "Un", Roles: []string{"user"}},
			{ID: "u2", FirstName: "Deux", LastName: "Deux", Roles: []string{"Manager"}},
			{ID: "u3", FirstName: "Trois", LastName: "Trois", Roles: []string{"validator", "user"}},
		},
		exchanges: []db.Exchange{
			{ID: "ex-a", UserID: "owner", Date: "2025-03-10", Period: "M", ShiftType: "GARDE", Status: "pending", InterestedUsers: []string{"u3", "u2", "u1"}},
			{ID: "ex-b", UserID: "owner", Date: "2025-03-15", Period: "S", ShiftType: "GARDE", Status: "pending", InterestedUsers: []string{"u3"}},
			{ID: "ex-c", UserID: "owner", Date: "2025-03-16", Period: "AM", ShiftType: "GARDE", Status: "pending"},
			{ID: "ex-v", UserID: "owner", Date: "2025-03-17", Period: "AM", ShiftType: "GARDE", Status: "validated", InterestedUsers: []string{"u2"}},
		},
		history: []db.History{
			{ID: "h1", OriginalUserID: "owner", NewUserID: "u1", Date: "2025-01-06", Period: "S", ShiftType: "GARDE", Status: "completed"},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:          "postgres://localhost/garde",
		Strategy:             "rate",
		MaxConcurrentScoring: 2,
		Scoring: config.ScoringConfig{
			Equity: config.EquityConfig{
				TargetSatisfactionRate: 0.5,
				DistributionMode:       "equity",
			},
		},
	}
}
