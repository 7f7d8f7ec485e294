package main

import (
	"github.com/spf13/cobra"

	"github.com/dtroode/fostr-server/database"
	"github.com/dtroode/fostr-server/internal/repository/postgres"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: withDatabase(func(cmd *cobra.Command, db *postgres.Connection) error {
		return database.Migrate(cmd.Context(), db.DB)
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: withDatabase(func(cmd *cobra.Command, db *postgres.Connection) error {
		return database.Rollback(cmd.Context(), db.DB)
	}),
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: withDatabase(func(cmd *cobra.Command, db *postgres.Connection) error {
		v, err := database.Version(db.DB)
		if err != nil {
			return err
		}
		cmd.Println(v)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func withDatabase(fn func(cmd *cobra.Command, db *postgres.Connection) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := postgres.Open(cmd.Context(), cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(cmd, db)
	}
}
