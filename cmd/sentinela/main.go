package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oncabito/sentinela/internal/interfaces/cli/bot"
	"github.com/oncabito/sentinela/internal/interfaces/cli/migrate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sentinela",
		Short: "Sentinela - OnCabo Gaming support bot",
		Long:  `Sentinela runs the OnCabo Gaming Telegram support bot, its background sweeps and the support-team admin API.`,
	}

	rootCmd.AddCommand(
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
