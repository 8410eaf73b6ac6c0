package main

import (
	"fmt"

	"registrations/config"
	"registrations/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Open(postgres.Open(database.PostgresDSN(config.Env)))
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			logrus.Info("Schema up to date")
			return nil
		},
	}
}
