package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/contre95/soundbridge/src/features/auth"
	"github.com/contre95/soundbridge/src/features/config"
	"github.com/contre95/soundbridge/src/features/hosting"
	"github.com/contre95/soundbridge/src/features/logging"
	"github.com/contre95/soundbridge/src/features/media"
	"github.com/contre95/soundbridge/src/infra/notify"
	"github.com/contre95/soundbridge/src/infra/settings"
	"github.com/contre95/soundbridge/src/infra/soundcloud"
	"github.com/contre95/soundbridge/src/music"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Create the settings store
	store, err := settings.NewSqliteStore(cfgManager.Get().Database.Path)
	if err != nil {
		log.Fatalf("failed to open settings store: %v", err)
	}
	defer store.Close()

	// Create the SoundCloud client
	scCfg := cfgManager.Get().SoundCloud
	client := soundcloud.NewClient(scCfg.ClientID, scCfg.ClientSecret, scCfg.RedirectURI)

	// Pick the host notification channel
	var notifier music.RefreshNotifier = notify.LogNotifier{}
	if url := cfgManager.Get().Host.CallbackURL; url != "" {
		notifier = notify.NewWebhookNotifier(url)
	}

	// Create the media and auth services around the shared credential
	credential := &music.Credential{}
	mediaService := media.NewService(cfgManager, client, credential, notifier)
	authService := auth.NewService(client, credential, store, notifier, mediaService)

	// Restore a persisted authorization, resuming polling if present
	if err := authService.Bootstrap(context.Background()); err != nil {
		slog.Error("Failed to restore persisted authorization", "error", err)
	}
	defer mediaService.StopPolling()

	// Create and start the Telegram bot if enabled
	var telegramBot *hosting.TelegramBot
	if cfgManager.Get().Telegram.Enabled {
		telegramBot, err = hosting.NewTelegramBot(cfgManager, authService, mediaService)
		if err != nil {
			slog.Error("Failed to initialize Telegram bot", "error", err)
		} else {
			go telegramBot.Start()
			slog.Info("Telegram bot started")
		}
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, authService, mediaService)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	if telegramBot != nil {
		telegramBot.Stop()
		slog.Info("Telegram bot stopped")
	}

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
