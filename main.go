package main

import (
	"log"

	"github.com/MyelinBots/matchbot-go/config"
	"github.com/MyelinBots/matchbot-go/internal/bot"
	"github.com/MyelinBots/matchbot-go/internal/db"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "matchbot",
		Short:        "Telegram dating bot for Ethiopian university students",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bot.StartBot()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrPanic()
			database, err := db.NewDatabase(cfg.DBConfig)
			if err != nil {
				return err
			}
			return database.Migrate()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}
}
