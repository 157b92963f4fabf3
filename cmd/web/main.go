package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/de-tools/conn-audit/pkg/server"
	"github.com/de-tools/conn-audit/pkg/services/audit"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var settingsPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web API for the connector auditor",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to an audit settings file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings := audit.DefaultSettings()
	if settingsPath != "" {
		loaded, err := audit.LoadSettings(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to load audit settings: %w", err)
		}
		settings = loaded
		logger.Info().Msgf("Audit settings loaded from `%s`.", settingsPath)
	}

	mux := server.ConfigureRouter(server.Config{
		Dependencies: server.Dependencies{
			Settings: settings,
			Logger:   logger,
		},
	})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Msgf("starting server on %s", addr)

	return http.ListenAndServe(addr, mux)
}
