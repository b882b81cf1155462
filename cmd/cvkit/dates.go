package main

import (
	"fmt"

	"github.com/jonathan/cvkit/internal/dates"
	"github.com/jonathan/cvkit/internal/types"
	"github.com/spf13/cobra"
)

var (
	durationStart string
	durationEnd   string
)

var formatDateCmd = &cobra.Command{
	Use:   "format-date [DATE]",
	Short: "Format a YYYY-MM date as \"Mon YYYY\" (no date prints Present)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFormatDate,
}

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Show the duration between two dates (end defaults to now)",
	RunE:  runDuration,
}

func init() {
	durationCmd.Flags().StringVarP(&durationStart, "start", "s", "", "Start date, YYYY-MM (required)")
	durationCmd.Flags().StringVarP(&durationEnd, "end", "e", "", "End date, YYYY-MM (optional)")
	_ = durationCmd.MarkFlagRequired("start")

	rootCmd.AddCommand(formatDateCmd, durationCmd)
}

func runFormatDate(cmd *cobra.Command, args []string) error {
	var query types.FormatDateQuery
	if len(args) == 1 {
		query.Date = args[0]
	}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	formatted, err := dates.FormatDate(query.DatePtr())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatted)
	return err
}

func runDuration(cmd *cobra.Command, _ []string) error {
	query := types.DurationQuery{Start: durationStart, End: durationEnd}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("invalid dates: %w", err)
	}

	duration, err := dates.CalculateDuration(query.Start, query.EndPtr(), clock)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), duration)
	return err
}
