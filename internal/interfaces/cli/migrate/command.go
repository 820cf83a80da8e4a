package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oncabito/sentinela/internal/infrastructure/config"
	"github.com/oncabito/sentinela/internal/infrastructure/database"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/models"
	"github.com/oncabito/sentinela/internal/shared/biztime"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema tools",
		Long:  `Apply the database schema for tickets and support conversations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update the schema",
		Long:  `Create the tickets and support_conversations tables, adding any missing columns and indexes.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("applying schema", "environment", env)

	if err := database.Get().AutoMigrate(
		&models.TicketModel{},
		&models.ConversationModel{},
	); err != nil {
		log.Errorw("schema migration failed", "error", err)
		return fmt.Errorf("schema migration failed: %w", err)
	}

	log.Infow("schema is up to date")
	return nil
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := biztime.Init(cfg.Biztime.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return log, nil
}
