package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/core/services"
)

// GlobalStatsCmd creates the globalStats command
func GlobalStatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "globalStats",
		Short: "Show the population equity baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("globalStats command")

			engine, _, err := app.loadEngine()
			if err != nil {
				return err
			}

			global := services.GetGlobalStats(engine, app.Logger)
			out := cmd.OutOrStdout()

			equityScore := int(global.EquityScore + 0.5)
			fmt.Fprintf(out, "\nEquity score: %s\n\n", colored(equity.ScoreColor(equityScore), fmt.Sprintf("%d", equityScore)))

			fmt.Fprintf(out, "Active users:        %d\n", global.ActiveUsers)
			fmt.Fprintf(out, "Pending shifts:      %d\n", global.PendingShifts)
			fmt.Fprintf(out, "Total requests:      %d\n", global.TotalRequests)
			fmt.Fprintf(out, "Total distributed:   %d\n\n", global.TotalDistributed)

			fmt.Fprintf(out, "Satisfaction rate:   avg %.0f%%  min %.0f%%  max %.0f%%\n",
				global.AverageSatisfactionRate*100, global.MinSatisfactionRate*100, global.MaxSatisfactionRate*100)
			fmt.Fprintf(out, "Accumulated value:   avg %.1f  median %.1f  stddev %.1f\n",
				global.AverageValue, global.MedianValue, global.StdDevValue)
			fmt.Fprintf(out, "Received shifts:     avg %.1f  max %d\n", global.AverageReceivedShifts, global.MaxReceivedShifts)
			fmt.Fprintf(out, "Requested shifts:    max %d\n\n", global.MaxRequestedShifts)

			return nil
		},
	}
}
