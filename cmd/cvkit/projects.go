package main

import "github.com/spf13/cobra"

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Show featured projects",
	RunE:  runFeatured,
}

func init() {
	rootCmd.AddCommand(featuredCmd)
}

func runFeatured(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	projects := a.svc.FeaturedProjects()
	if rootJSON {
		return writeJSON(a.out, projects)
	}
	a.printer.PrintProjects("FEATURED PROJECTS", projects)
	return nil
}
