package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/telebot.v3"

	"expense-bot/internal/bot"
	"expense-bot/internal/config"
	"expense-bot/internal/logger"
	"expense-bot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	appLogger := logger.New(cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		appLogger.Fatalf("unknown timezone %q: %v", cfg.Timezone, err)
	}

	storageInstance, err := storage.NewStorage(cfg.DBPath, loc)
	if err != nil {
		appLogger.Fatalf("unable to open database: %v", err)
	}
	defer storageInstance.Close()

	if err := storageInstance.SeedCategories(context.Background(), cfg.Categories); err != nil {
		appLogger.Fatalf("unable to seed categories: %v", err)
	}

	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		appLogger.Fatalf("unable to create static dir: %v", err)
	}

	botSettings := telebot.Settings{
		Token:  cfg.BotToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	}
	botAPI, err := telebot.NewBot(botSettings)
	if err != nil {
		appLogger.Fatalf("error creating bot instance: %v", err)
	}

	if len(cfg.AccessIDs) > 0 {
		botAPI.Use(bot.AccessFilter(cfg.AccessIDs, appLogger))
	}

	if err := botAPI.SetCommands(botCommands()); err != nil {
		appLogger.WithError(err).Warn("unable to set command menu")
	}

	bot.RegisterHandlers(botAPI, storageInstance, appLogger, loc, cfg.StaticDir)
	appLogger.Info("bot start")
	botAPI.Start()
}

func botCommands() []telebot.Command {
	return []telebot.Command{
		{Text: "today", Description: "Статистика за сегодня"},
		{Text: "month", Description: "Статистика за месяц"},
		{Text: "prev_month", Description: "Статистика за прошлый месяц"},
		{Text: "year", Description: "Статистика за год"},
		{Text: "limits", Description: "Лимиты по категориям"},
		{Text: "help", Description: "Справка"},
	}
}
