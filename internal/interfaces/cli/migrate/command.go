package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/config"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/database"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/migration"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema for the helpdesk service.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema",
		Long:  `Create or update all tables so the database matches the current models.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migration completed", "environment", env)
	return nil
}
