package main

import (
	"fmt"

	"github.com/jonathan/cvkit/internal/types"
	"github.com/spf13/cobra"
)

var recentCount int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent experience entries",
	RunE:  runRecent,
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current position",
	RunE:  runCurrent,
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Show total years of experience",
	RunE:  runYears,
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Show experience grouped by country",
	RunE:  runCountries,
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show every role with its dates and duration",
	RunE:  runTimeline,
}

func init() {
	recentCmd.Flags().IntVarP(&recentCount, "count", "n", 0, "Number of entries (defaults to config recent_count)")

	rootCmd.AddCommand(recentCmd, currentCmd, yearsCmd, countriesCmd, timelineCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	query := types.RecentExperienceQuery{Count: a.cfg.RecentCount}
	if cmd.Flags().Changed("count") {
		query.Count = recentCount
	}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("invalid --count: %w", err)
	}

	entries := a.svc.RecentExperience(query.Count)
	if rootJSON {
		return writeJSON(a.out, entries)
	}
	a.printer.PrintExperience("RECENT EXPERIENCE", entries)
	return nil
}

func runCurrent(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	exp, ok := a.svc.CurrentPosition()
	if rootJSON {
		if !ok {
			return writeJSON(a.out, nil)
		}
		return writeJSON(a.out, exp)
	}
	a.printer.PrintCurrentPosition(exp)
	return nil
}

func runYears(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	years, err := a.svc.TotalYearsOfExperience()
	if err != nil {
		return fmt.Errorf("failed to compute years of experience: %w", err)
	}
	if rootJSON {
		return writeJSON(a.out, types.YearsOfExperience{Years: years})
	}
	a.printer.PrintYears(a.svc.Record().Personal.Name, years)
	return nil
}

func runCountries(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	groups := a.svc.ExperienceByCountry()
	if rootJSON {
		return writeJSON(a.out, groups)
	}
	a.printer.PrintCountryGroups(groups)
	return nil
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	entries, err := a.svc.ExperienceTimeline()
	if err != nil {
		return fmt.Errorf("failed to build timeline: %w", err)
	}
	if rootJSON {
		return writeJSON(a.out, entries)
	}
	a.printer.PrintTimeline(entries)
	return nil
}
