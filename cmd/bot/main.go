package main

import (
	"context"
	"errors"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Shaxriyor16/TDM-Tournament/internal/config"
	"github.com/Shaxriyor16/TDM-Tournament/internal/roster"
	"github.com/Shaxriyor16/TDM-Tournament/internal/server"
	"github.com/Shaxriyor16/TDM-Tournament/internal/service"
	"github.com/Shaxriyor16/TDM-Tournament/internal/session"
	"github.com/Shaxriyor16/TDM-Tournament/internal/telegram"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	ctx := context.Background()

	var rosterStore roster.Store
	if cfg.PostgresDSN != "" {
		pg, err := roster.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to connect roster db: %v", err)
		}
		defer pg.Close()
		rosterStore = pg
		log.Info("✅ roster: Postgres")
	} else {
		sheet, err := roster.NewSheetsStore(ctx, cfg.SheetCredentials, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			log.Fatalf("failed to connect google sheets: %v", err)
		}
		rosterStore = sheet
		log.Info("✅ roster: Google Sheets")
	}

	svc := service.New(service.Deps{
		Sessions:        session.NewMemoryStore(),
		Roster:          rosterStore,
		Gateway:         telegram.NewGateway(api),
		Admins:          cfg.AdminIDs,
		Channel:         cfg.RequiredChannel,
		InstructionsTTL: cfg.InstructionsTTL,
		Log:             log,
	})

	handler := telegram.NewHandler(api, svc, cfg.RequiredChannel, log)
	bot := telegram.NewBot(api, handler, log)

	// Keep-alive для бесплатного хостинга.
	srv := server.New(cfg.HTTPAddr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("keep-alive server: %v", err)
		}
	}()

	bot.Start()
}
