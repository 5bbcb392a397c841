// Package migrate implements the `migrate` CLI command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"klevant/internal/infrastructure/config"
	"klevant/internal/infrastructure/database"
	"klevant/internal/infrastructure/persistence/migrations"
	"klevant/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	return cmd
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.NewLogger()

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	log.Infow("migrations applied")
	return nil
}
