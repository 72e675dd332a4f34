package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Fatal exits before any network call is made.
		logger.Log.WithError(err).Fatal("Could not load application configuration")
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"chat_id":        cfg.TelegramChatID,
		"retry_interval": cfg.RetryInterval.String(),
		"cron_spec":      cfg.PollCronSpec,
		"environment":    cfg.Environment,
	}).Info("Configuration loaded")

	schedule, err := scheduler.NewSchedule(cfg.RetryInterval, cfg.PollCronSpec)
	if err != nil {
		mainLogger.WithError(err).Fatal("Invalid poll schedule")
	}

	// Initialize Telegram Bot; sending only, no updates are polled.
	bot, err := telegram.NewBot("", cfg.TelegramToken)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	notifier := telegram.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Component("notifier"))

	practicumClient := practicum.NewClient(practicum.ClientConfig{
		Endpoint:           cfg.PracticumEndpoint,
		Token:              cfg.PracticumToken,
		Timeout:            cfg.HTTPTimeout,
		MinRequestInterval: cfg.MinRequestInterval,
		Logger:             logger.Component("practicum"),
	})

	since := cfg.FromDate
	if since == 0 {
		since = time.Now().Unix()
	}
	pollService := app.NewPollService(practicumClient, notifier, logger.Component("poller"), since)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Bot started")
	err = scheduler.NewPollScheduler(schedule, logger.Component("scheduler")).Run(ctx, pollService.RunCycle)
	if err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poll scheduler stopped unexpectedly")
	}

	state := pollService.State()
	mainLogger.WithField("since", state.Since).Info("Application shut down gracefully.")
}
