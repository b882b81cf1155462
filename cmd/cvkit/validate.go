package main

import (
	"fmt"

	"github.com/jonathan/cvkit/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	validateInput  string
	validateSchema string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV JSON file against the CV schema",
	Long:  "Validates a CV JSON file against the bundled CV schema, or against --schema when given.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to CV JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file (defaults to the bundled CV schema)")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateInput)
	} else {
		err = schemas.ValidateCVFile(validateInput)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", validateInput)
	return nil
}
