package main

import (
	"github.com/spf13/cobra"

	"github.com/craftline/storefront/config"
	"github.com/craftline/storefront/database/seeders"
	"github.com/craftline/storefront/pkg/database"
	"github.com/craftline/storefront/pkg/migration"
)

// connectDB loads config and opens the database for maintenance
// commands that do not need the full server.
func connectDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run all pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Run()
		},
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Rollback()
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show the status of every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			return migration.New(database.DB).Status()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the admin account and demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			if err := migration.New(database.DB).Run(); err != nil {
				return err
			}
			return seeders.Run(database.DB)
		},
	}
}
