// Package main provides the cvkit command-line tool for querying and rendering a CV dataset.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/cvkit/internal/config"
	"github.com/jonathan/cvkit/internal/cv"
	"github.com/jonathan/cvkit/internal/dataset"
	"github.com/jonathan/cvkit/internal/dates"
	"github.com/jonathan/cvkit/internal/observability"
	"github.com/spf13/cobra"
)

var (
	rootDataPath   string
	rootConfigPath string
	rootJSON       bool
	rootVerbose    bool
)

// clock drives every "now" computation; tests replace it.
var clock dates.Clock = dates.SystemClock{}

var rootCmd = &cobra.Command{
	Use:           "cvkit",
	Short:         "Query and render a CV dataset",
	Long:          "cvkit answers questions about a structured CV (recent roles, featured projects, years of experience, countries) and renders it to LaTeX or serves it over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDataPath, "data", "d", "", "Path to a CV JSON file (defaults to the bundled dataset)")
	rootCmd.PersistentFlags().StringVarP(&rootConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&rootJSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the resolved configuration and the query service for one command run
type app struct {
	cfg     config.Config
	svc     *cv.Service
	out     io.Writer
	printer *observability.Printer
}

// loadApp resolves config (file, env, defaults), applies CLI overrides and loads the dataset
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Resolve(rootConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("data") {
		cfg.DataPath = rootDataPath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		source := cfg.DataPath
		if source == "" {
			source = "bundled dataset"
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Loading CV from: %s\n", source)
	}

	record, err := dataset.Resolve(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load CV dataset: %w", err)
	}

	return &app{
		cfg:     cfg,
		svc:     cv.New(record, cv.WithClock(clock)),
		out:     out,
		printer: observability.NewPrinter(out),
	}, nil
}

// writeJSON prints v as indented JSON
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
