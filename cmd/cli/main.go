package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/cmd/cli/commands"
	"github.com/jakechorley/garde-exchange/internal/config"
	"github.com/jakechorley/garde-exchange/pkg/postgres"
	"github.com/jakechorley/garde-exchange/pkg/utils/logging"
)

var (
	env     string
	verbose bool

	app      = &commands.AppContext{}
	database *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "garde",
		Short: "Garde exchange CLI - score and distribute on-call shift exchanges",
		Long: `A CLI tool ranking the practitioners interested in an on-call shift offered
on the exchange, reporting equity statistics and proposing distributions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			shutdown()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.UserStatsCmd(app))
	rootCmd.AddCommand(commands.GlobalStatsCmd(app))
	rootCmd.AddCommand(commands.SuggestCmd(app))
	rootCmd.AddCommand(commands.DistributeCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		shutdown()
		os.Exit(1)
	}
}

// initApp sets up logger, config and database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Debug("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded",
		zap.String("strategy", app.Cfg.Strategy),
		zap.String("distribution_mode", app.Cfg.Scoring.Equity.DistributionMode),
		zap.Int("date_rules", len(app.Cfg.Scoring.DateRules)))

	app.Logger.Debug("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Logger.Debug("Database initialized")

	return nil
}

func shutdown() {
	if database != nil {
		database.Close()
		database = nil
	}
	if app.Logger != nil {
		app.Logger.Sync()
	}
}
