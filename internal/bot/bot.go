package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MyelinBots/matchbot-go/config"
	"github.com/MyelinBots/matchbot-go/internal/db"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/block"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/chat_message"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/like"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/report"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/secret_crush"
	"github.com/MyelinBots/matchbot-go/internal/healthcheck"
	"github.com/MyelinBots/matchbot-go/internal/keepalive"
	"github.com/MyelinBots/matchbot-go/internal/services/commands"
	"github.com/MyelinBots/matchbot-go/internal/services/conversation"
	"github.com/MyelinBots/matchbot-go/internal/services/crush"
	"github.com/MyelinBots/matchbot-go/internal/services/decisions"
	"github.com/MyelinBots/matchbot-go/internal/services/matchmaker"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func StartBot() error {
	cfg := config.LoadConfigOrPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Printf("Starting %s %s\n", cfg.AppConfig.APPName, cfg.AppConfig.Version)

	database, err := db.NewDatabase(cfg.DBConfig)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	st := store.New(
		profile.NewProfileRepository(database),
		like.NewLikeRepository(database),
		block.NewBlockRepository(database),
		report.NewReportRepository(database),
		secret_crush.NewSecretCrushRepository(database),
		chat_message.NewChatMessageRepository(database),
	)
	if err := st.Load(ctx); err != nil {
		log.Printf("bot: warm-up load failed, starting with a cold cache: %v", err)
	}

	healthcheck.StartHealthcheck(ctx, cfg.AppConfig, st)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramConfig.Token)
	if err != nil {
		return fmt.Errorf("connecting to telegram: %w", err)
	}
	api.Debug = cfg.TelegramConfig.Debug
	log.Printf("Authorized on account %s", api.Self.UserName)

	telegram := NewTelegramNotifier(api)
	sessions := conversation.NewManager()

	controller := commands.NewCommandController(
		st,
		matchmaker.NewMatchmaker(st),
		decisions.NewDecisions(st, telegram),
		crush.NewCrush(st, telegram),
		sessions,
		telegram,
		telegram,
	)

	controller.AddCommand("start", controller.StartHandler())
	controller.AddCommand("help", controller.HelpHandler())
	controller.AddCommand("register", controller.RegisterHandler())
	controller.AddCommand("cancel", controller.CancelHandler())
	controller.AddCommand("profile", controller.ProfileHandler())
	controller.AddCommand("edit_profile", controller.EditProfileHandler())
	controller.AddCommand("match", controller.MatchHandler())
	controller.AddCommand("matches", controller.MatchesHandler())
	controller.AddCommand("secret_crush", controller.SecretCrushHandler())
	controller.AddCommand("secretcrush", controller.SecretCrushHandler())

	keepalive.Start(ctx, cfg.AppConfig)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Printf("bot: received %s, shutting down", sig)
		cancel()
		api.StopReceivingUpdates()
	}()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = cfg.TelegramConfig.UpdateTimeout

	for update := range api.GetUpdatesChan(updateConfig) {
		if update.CallbackQuery != nil {
			// Ack first so the client stops the button spinner.
			if _, err := api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
				log.Printf("bot: callback ack failed: %v", err)
			}
		}
		if err := controller.HandleUpdate(ctx, update); err != nil {
			log.Printf("bot: handling update failed: %v", err)
		}
	}
	return nil
}
