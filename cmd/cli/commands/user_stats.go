package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/garde-exchange/pkg/core/model"
	"github.com/jakechorley/garde-exchange/pkg/core/services"
)

// UserStatsCmd creates the userStats command
func UserStatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "userStats <user_id>",
		Short: "Show the exchange statistics of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := args[0]
			app.Logger.Debug("userStats command", zap.String("user_id", userID))

			engine, snapshot, err := app.loadEngine()
			if err != nil {
				return err
			}

			report, err := services.GetUserReport(engine, snapshot, userID, app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stats := report.Stats

			fmt.Fprintf(out, "\n%s (%s)\n\n", displayName(report.User), report.User.ID)
			if !report.User.IsParticipant() {
				fmt.Fprintf(out, "%sNot a participant: excluded from population averages%s\n\n", colorDim, colorReset)
			}
			fmt.Fprintf(out, "Requested:         %d\n", stats.RequestedShifts)
			fmt.Fprintf(out, "Received:          %d\n", stats.ReceivedShifts)
			fmt.Fprintf(out, "Satisfaction rate: %.0f%%\n", stats.SatisfactionRate*100)
			fmt.Fprintf(out, "Accumulated value: %.1f\n", stats.AccumulatedValue)

			if len(stats.ShiftTypeCounts) > 0 {
				fmt.Fprintln(out, "\nReceived by shift type:")
				for _, shiftType := range sortedKeys(stats.ShiftTypeCounts) {
					fmt.Fprintf(out, "  %-12s %d\n", shiftType, stats.ShiftTypeCounts[shiftType])
				}
			}

			fmt.Fprintln(out, "\nReceived by period:")
			for _, period := range model.Periods {
				fmt.Fprintf(out, "  %-12s %d\n", period, stats.PeriodCounts[period])
			}

			fmt.Fprintln(out, "\nActivity:")
			printActivity(out, stats.Activity)
			fmt.Fprintln(out)

			return nil
		},
	}
}
