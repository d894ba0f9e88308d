package main

import (
	"fmt"

	"worklog-tracker/internal/config"
	"worklog-tracker/internal/seed"

	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSeedCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and load seed data",
		Long:  "Creates the tables and loads reference data plus sample work logs. Skipped when work logs already exist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, seedPath)
		},
	}

	cmd.Flags().StringVar(&seedPath, "file", "", "path to a seed YAML file (default: embedded data)")
	return cmd
}

func runSeed(cmd *cobra.Command, seedPath string) error {
	cfg := config.GetServerConfig()
	if seedPath == "" {
		seedPath = cfg.SeedPath
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := seed.Apply(db, seedPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Database seeded.")
	return nil
}
