package main

import (
	"fmt"

	"github.com/jonathan/cvkit/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only JSON API server",
	Long:  `Start an HTTP server that exposes the CV dataset and its queries as JSON endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (defaults to config port, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	port := a.cfg.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	srv, err := server.New(server.Config{
		Port:        port,
		Service:     a.svc,
		RecentCount: a.cfg.RecentCount,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
