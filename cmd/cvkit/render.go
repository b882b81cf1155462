package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cvkit/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	renderTemplateFile string
	renderOutputFile   string
	renderMaxLineChars int
	renderStrict       bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the CV as a LaTeX document",
	Long:  "Renders the CV through a text/template LaTeX template. Without --out the document is written to stdout.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to LaTeX template file (defaults to config template, then the bundled template)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output LaTeX file")
	renderCmd.Flags().IntVar(&renderMaxLineChars, "max-line-chars", 0, "Warn about rendered lines longer than this (0 disables)")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Fail instead of warning when lines are too long")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	templatePath := a.cfg.Template
	if cmd.Flags().Changed("template") {
		templatePath = renderTemplateFile
	}

	latex, err := rendering.RenderLaTeX(a.svc, templatePath)
	if err != nil {
		return fmt.Errorf("failed to render LaTeX: %w", err)
	}

	if issues := rendering.CheckLineLengths(latex, renderMaxLineChars); len(issues) > 0 {
		for _, issue := range issues {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", issue)
		}
		if renderStrict {
			return fmt.Errorf("%d rendered lines exceed %d characters", len(issues), renderMaxLineChars)
		}
	}

	if renderOutputFile == "" {
		_, err = fmt.Fprint(a.out, latex)
		return err
	}

	outputDir := filepath.Dir(renderOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(renderOutputFile, []byte(latex), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(a.out, "Successfully rendered LaTeX CV\n")
	_, _ = fmt.Fprintf(a.out, "Output: %s\n", renderOutputFile)
	return nil
}
