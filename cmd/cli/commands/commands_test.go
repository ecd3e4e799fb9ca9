package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/internal/config"
	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/db"
)

// mockDatabase implements db.Database
type mockDatabase struct {
	inserted []db.DistributionProposal
}

func (m *mockDatabase) GetUsers(ctx context.Context) ([]db.User, error) {
	return []db.User{
		{ID: "owner", FirstName: "Olga", LastName: "Owner", Roles: []string{"user"}},
		{ID: "u1", FirstName: "Alice", LastName: "Martin", Roles: []string{"user"}},
		{ID: "u2", FirstName: "Bruno", LastName: "Petit", Roles: []string{"manager"}},
		{ID: "root", FirstName: "Root", LastName: "Admin", Roles: []string{"admin"}},
	}, nil
}

func (m *mockDatabase) GetExchanges(ctx context.Context) ([]db.Exchange, error) {
	return []db.Exchange{
		{ID: "ex-1", UserID: "owner", Date: "2025-03-15", Period: "S", ShiftType: "NUIT", Status: "pending", InterestedUsers: []string{"u1", "u2"}},
		{ID: "ex-2", UserID: "owner", Date: "2025-03-17", Period: "M", ShiftType: "JOUR", Status: "pending"},
	}, nil
}

func (m *mockDatabase) GetHistory(ctx context.Context) ([]db.History, error) {
	return []db.History{
		{ID: "h1", OriginalUserID: "owner", NewUserID: "u1", Date: "2025-01-04", Period: "S", ShiftType: "NUIT", Status: "completed", InterestedUsers: []string{"u1"}},
	}, nil
}

func (m *mockDatabase) InsertDistributionProposals(ctx context.Context, proposals []db.DistributionProposal) error {
	m.inserted = append(m.inserted, proposals...)
	return nil
}

func (m *mockDatabase) GetDistributionProposals(ctx context.Context, sessionID string) ([]db.DistributionProposal, error) {
	return m.inserted, nil
}

func testApp() (*AppContext, *mockDatabase) {
	database := &mockDatabase{}
	return &AppContext{
		Cfg: &config.Config{
			Strategy:             "rate",
			MaxConcurrentScoring: 2,
			Scoring: config.ScoringConfig{
				Equity:      config.EquityConfig{TargetSatisfactionRate: 0.5, DistributionMode: "mixed"},
				ShiftScores: map[string]float64{"NUIT": 80, "JOUR": 40},
			},
		},
		Database: database,
		Logger:   zap.NewNop(),
		Ctx:      context.Background(),
	}, database
}

// execute runs cmd with args and returns its output
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestUserStatsCmd(t *testing.T) {
	app, _ := testApp()

	out, err := execute(t, UserStatsCmd(app), "u1")
	require.NoError(t, err)

	assert.Contains(t, out, "Alice Martin (u1)")
	assert.Contains(t, out, "Requested:         2")
	assert.Contains(t, out, "Received:          1")
	assert.Contains(t, out, "Satisfaction rate: 50%")
	assert.Contains(t, out, "NUIT")
}

func TestUserStatsCmd_NonParticipant(t *testing.T) {
	app, _ := testApp()

	out, err := execute(t, UserStatsCmd(app), "root")
	require.NoError(t, err)
	assert.Contains(t, out, "Not a participant")
}

func TestUserStatsCmd_UnknownUser(t *testing.T) {
	app, _ := testApp()

	_, err := execute(t, UserStatsCmd(app), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user ghost not found")
}

func TestGlobalStatsCmd(t *testing.T) {
	app, _ := testApp()

	out, err := execute(t, GlobalStatsCmd(app))
	require.NoError(t, err)

	assert.Contains(t, out, "Equity score:")
	assert.Contains(t, out, "Active users:        2")
	assert.Contains(t, out, "Pending shifts:      2")
}

func TestSuggestCmd_RanksCandidates(t *testing.T) {
	app, _ := testApp()

	out, err := execute(t, SuggestCmd(app), "ex-1")
	require.NoError(t, err)

	assert.Contains(t, out, "Strategy: rate")
	assert.Contains(t, out, "ex-1  2025-03-15 S NUIT  (offered by Olga Owner, pending)")

	// Bruno has received nothing yet and ranks first
	bruno := strings.Index(out, "Bruno Petit")
	alice := strings.Index(out, "Alice Martin")
	require.NotEqual(t, -1, bruno)
	require.NotEqual(t, -1, alice)
	assert.Less(t, bruno, alice)
}

func TestSuggestCmd_All(t *testing.T) {
	app, _ := testApp()

	out, err := execute(t, SuggestCmd(app), "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "ex-1")
	assert.NotContains(t, out, "ex-2")
}

func TestSuggestCmd_ArgValidation(t *testing.T) {
	app, _ := testApp()

	_, err := execute(t, SuggestCmd(app))
	assert.Error(t, err)

	_, err = execute(t, SuggestCmd(app), "--all", "ex-1")
	assert.Error(t, err)
}

func TestSuggestCmd_UnknownExchange(t *testing.T) {
	app, _ := testApp()

	_, err := execute(t, SuggestCmd(app), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange ghost not found")
}

func TestDistributeCmd_DryRun(t *testing.T) {
	app, database := testApp()

	out, err := execute(t, DistributeCmd(app))
	require.NoError(t, err)

	assert.Contains(t, out, "2025-03-15 S NUIT")
	assert.Contains(t, out, "Bruno Petit")
	assert.Contains(t, out, "1 pending exchange(s) without interested users")
	assert.Contains(t, out, "Dry run")
	assert.Empty(t, database.inserted)
}

func TestDistributeCmd_Save(t *testing.T) {
	app, database := testApp()

	out, err := execute(t, DistributeCmd(app), "--save")
	require.NoError(t, err)

	assert.Contains(t, out, "1 proposal(s) saved")
	require.Len(t, database.inserted, 1)
	assert.Equal(t, "ex-1", database.inserted[0].ExchangeID)
	assert.Equal(t, "u2", database.inserted[0].UserID)
}

func TestAnsiColor(t *testing.T) {
	assert.Equal(t, colorGreen, ansiColor(equity.ColorGreen))
	assert.Equal(t, colorYellow, ansiColor(equity.ColorOrange))
	assert.Equal(t, colorRed, ansiColor(equity.ColorRed))
}
