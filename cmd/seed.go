package main

import (
	"github.com/spf13/cobra"

	"github.com/dtroode/fostr-server/internal/hash"
	"github.com/dtroode/fostr-server/internal/repository/postgres"
	"github.com/dtroode/fostr-server/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replaces every user with the development accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if _, err := newPictures(ctx, cfg, logger); err != nil {
			return err
		}

		users, err := service.NewSeeder(postgres.NewUserRepository(db), hash.NewBcrypt(cfg.Password.BcryptCost), logger).Seed(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			cmd.Printf("%s\t%s\n", u.Role, u.Username)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
