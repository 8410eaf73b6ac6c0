package main

import (
	"fmt"
	"os"

	"registrations/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const programName = "registrations"

var globalFlags = struct {
	debug bool
}{}

// @title Registrations API
// @version 1.0
// @description Competition participant registration: role-scoped access and one-time credential provisioning.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Competition registration API",
		RunE:  serveRun,
	}

	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		if globalFlags.debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if err := config.Load(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
