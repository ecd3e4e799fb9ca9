package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/pkg/core/services"
)

// SuggestCmd creates the suggest command
func SuggestCmd(app *AppContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "suggest [exchange_id...]",
		Short: "Rank the interested users of one or more exchanges",
		Long: `Rank the interested users of the given exchanges, best candidate first.
With --all, every pending exchange with at least one interested user is ranked.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with exchange IDs")
			}
			if !all && len(args) == 0 {
				return fmt.Errorf("requires at least 1 exchange_id or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("suggest command", zap.Strings("exchange_ids", args), zap.Bool("all", all))

			engine, snapshot, err := app.loadEngine()
			if err != nil {
				return err
			}

			results, err := services.SuggestForExchanges(app.Ctx, engine, snapshot, args, app.Cfg.MaxConcurrentScoring, app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nStrategy: %s\n", engine.Strategy().Name())
			for _, result := range results {
				printExchangeSuggestions(out, snapshot, result)
			}
			fmt.Fprintln(out)

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Rank every pending exchange with interested users")

	return cmd
}

func printExchangeSuggestions(w io.Writer, snapshot *services.Snapshot, result services.ExchangeSuggestions) {
	exchange := result.Exchange
	owner := exchange.UserID
	if u, ok := snapshot.FindUser(exchange.UserID); ok {
		owner = displayName(u)
	}

	fmt.Fprintf(w, "\n%s  %s %s %s  (offered by %s, %s)\n",
		exchange.ID, exchange.Date, exchange.Period, exchange.ShiftType, owner, exchange.Status)

	if len(result.Suggestions) == 0 {
		fmt.Fprintf(w, "  %sNo interested users%s\n", colorDim, colorReset)
		return
	}

	for i, s := range result.Suggestions {
		name := s.UserID
		if u, ok := snapshot.FindUser(s.UserID); ok {
			name = displayName(u)
		}
		printSuggestion(w, i+1, name, s)
	}
}
