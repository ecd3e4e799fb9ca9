package commands

import (
	"fmt"
	"io"
	"slices"

	"github.com/jakechorley/garde-exchange/pkg/core/equity"
	"github.com/jakechorley/garde-exchange/pkg/core/model"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// ansiColor maps a score color to its terminal escape code
func ansiColor(c equity.Color) string {
	switch c {
	case equity.ColorGreen:
		return colorGreen
	case equity.ColorOrange:
		return colorYellow
	default:
		return colorRed
	}
}

func colored(c equity.Color, text string) string {
	return ansiColor(c) + text + colorReset
}

func displayName(u model.User) string {
	name := u.FirstName + " " + u.LastName
	if name == " " {
		return u.ID
	}
	return name
}

// sortedKeys returns map keys in a stable display order
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func printActivity(w io.Writer, stats equity.ActivityStats) {
	fmt.Fprintf(w, "  Proposed:      %d\n", stats.ProposedCount)
	fmt.Fprintf(w, "  Positioned:    %d\n", stats.PositionedCount)
	fmt.Fprintf(w, "  Received:      %d\n", stats.ReceivedCount)
	fmt.Fprintf(w, "  Given:         %d\n", stats.GivenCount)
	fmt.Fprintf(w, "  Success rate:  %d%%\n", stats.SuccessRate)
	fmt.Fprintf(w, "  Participation: %d%%\n", stats.ParticipationRate)

	fmt.Fprintln(w, "\n  By period       proposed  positioned  received")
	for _, period := range model.Periods {
		t := stats.ByPeriod[period]
		fmt.Fprintf(w, "    %-13s %8d  %10d  %8d\n", period, t.Proposed, t.Positioned, t.Received)
	}

	if len(stats.ByShiftType) == 0 {
		return
	}
	fmt.Fprintln(w, "\n  By shift type   proposed  positioned  received")
	for _, shiftType := range sortedKeys(stats.ByShiftType) {
		t := stats.ByShiftType[shiftType]
		fmt.Fprintf(w, "    %-13s %8d  %10d  %8d\n", shiftType, t.Proposed, t.Positioned, t.Received)
	}
}

// printSuggestion prints one ranked candidate with its component breakdown
func printSuggestion(w io.Writer, rank int, name string, s equity.SuggestionScore) {
	fmt.Fprintf(w, "%2d. %-24s %s  %s\n", rank, name, colored(s.Color, fmt.Sprintf("%3d", s.Score)), s.Recommendation)
	for _, component := range sortedKeys(s.Components) {
		fmt.Fprintf(w, "    %s%-20s %3d%s\n", colorDim, component, s.Components[component], colorReset)
	}
	fmt.Fprintf(w, "    %s%d received / %d requested, rate %.0f%% -> %.0f%%%s\n",
		colorDim, s.Stats.ReceivedShifts, s.Stats.RequestedShifts,
		s.Stats.SatisfactionRate*100, s.Impact.NewSatisfactionRate*100, colorReset)
}
