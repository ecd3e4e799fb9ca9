package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/core/services"
)

// DistributeCmd creates the distribute command
func DistributeCmd(app *AppContext) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Propose a greedy distribution of all pending exchanges",
		Long: `Assign every pending exchange with interested users to its best candidate,
scarcest exchanges first. Nothing is validated: with --save the assignments are
stored as proposals for an administrator to review.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("distribute command", zap.Bool("save", save))

			engine, snapshot, err := app.loadEngine()
			if err != nil {
				return err
			}

			result, err := services.Distribute(app.Ctx, engine, app.Database, save, app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nDistribution %s (strategy: %s)\n\n", result.SessionID, result.Strategy)

			if len(result.Assignments) == 0 {
				fmt.Fprintf(out, "%sNo pending exchange has interested users%s\n", colorDim, colorReset)
			}
			for _, a := range result.Assignments {
				name := a.UserID
				if u, ok := snapshot.FindUser(a.UserID); ok {
					name = displayName(u)
				}
				label := a.ExchangeID
				if exchange, ok := snapshot.FindExchange(a.ExchangeID); ok {
					label = fmt.Sprintf("%s %s %s", exchange.Date, exchange.Period, exchange.ShiftType)
				}
				fmt.Fprintf(out, "  %-28s -> %-24s %s\n", label, name,
					colored(equity.ScoreColor(a.Score), fmt.Sprintf("%3d", a.Score)))
			}

			if len(result.Unwanted) > 0 {
				fmt.Fprintf(out, "\n%d pending exchange(s) without interested users:\n", len(result.Unwanted))
				for _, exchange := range result.Unwanted {
					fmt.Fprintf(out, "  %s%s %s %s%s\n", colorDim, exchange.Date, exchange.Period, exchange.ShiftType, colorReset)
				}
			}

			if result.Saved {
				fmt.Fprintf(out, "\n✓ %d proposal(s) saved under session %s\n\n", len(result.Assignments), result.SessionID)
			} else {
				fmt.Fprintln(out, "\nDry run, use --save to store these proposals")
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the assignments as distribution proposals")

	return cmd
}
