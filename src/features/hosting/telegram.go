package hosting

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/contre95/soundbridge/src/features/auth"
	"github.com/contre95/soundbridge/src/features/config"
	"github.com/contre95/soundbridge/src/features/media"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramBot lets the user check and reset the adapter's authorization
// state from chat.
type TelegramBot struct {
	bot          *tgbotapi.BotAPI
	config       *config.Manager
	authService  *auth.Service
	mediaService *media.Service
	updates      tgbotapi.UpdatesChannel
	stopChan     chan struct{}
}

// NewTelegramBot creates a new Telegram bot instance.
func NewTelegramBot(cfg *config.Manager, authService *auth.Service, mediaService *media.Service) (*TelegramBot, error) {
	telegramConfig := cfg.Get().Telegram

	if !telegramConfig.Enabled {
		return nil, fmt.Errorf("telegram bot is disabled in configuration")
	}
	if telegramConfig.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}

	bot, err := tgbotapi.NewBotAPI(telegramConfig.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Telegram bot initialized", "username", bot.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	return &TelegramBot{
		bot:          bot,
		config:       cfg,
		authService:  authService,
		mediaService: mediaService,
		updates:      bot.GetUpdatesChan(updateConfig),
		stopChan:     make(chan struct{}),
	}, nil
}

// Start begins listening for Telegram updates.
func (t *TelegramBot) Start() {
	slog.Info("Starting Telegram bot listener")

	for {
		select {
		case update := <-t.updates:
			if update.Message != nil {
				go t.handleMessage(update)
			}
		case <-t.stopChan:
			slog.Info("Stopping Telegram bot listener")
			return
		}
	}
}

// Stop gracefully stops the bot.
func (t *TelegramBot) Stop() {
	close(t.stopChan)
}

func (t *TelegramBot) handleMessage(update tgbotapi.Update) {
	message := update.Message
	chatID := message.Chat.ID

	allowedUsers := t.config.Get().Telegram.AllowedUsers
	username := message.From.UserName
	if !slices.Contains(allowedUsers, username) {
		slog.Warn("Unauthorized telegram user", "username", username, "chat_id", chatID)
		t.sendMessage(chatID, "Unknown user, please add your user to the config")
		return
	}

	if !message.IsCommand() {
		t.sendMessage(chatID, "Send /help to see available commands")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch message.Command() {
	case "status":
		profile, err := t.authService.Profile(ctx)
		if err != nil {
			t.sendMessage(chatID, "Not authorized with SoundCloud. Open the host settings to connect.")
			return
		}
		t.sendMessage(chatID, fmt.Sprintf("Authorized as %s (%s plan, %d playlists)",
			profile.Username, profile.Plan, profile.PlaylistCount))
	case "playlists":
		playlists, err := t.mediaService.Playlists(ctx)
		if err != nil {
			t.sendMessage(chatID, "Could not fetch playlists: "+err.Error())
			return
		}
		if len(playlists) == 0 {
			t.sendMessage(chatID, "No playlists on this account")
			return
		}
		var b strings.Builder
		for _, p := range playlists {
			total := (time.Duration(p.TotalDuration()) * time.Millisecond).Round(time.Second)
			fmt.Fprintf(&b, "- %s (%d tracks, %s)\n", p.Title, len(p.Tracks), total)
		}
		t.sendMessage(chatID, b.String())
	case "deauthorize":
		if err := t.authService.Deauthorize(ctx); err != nil {
			t.sendMessage(chatID, "Deauthorize failed: "+err.Error())
			return
		}
		t.sendMessage(chatID, "SoundCloud authorization cleared")
	case "help":
		t.sendMessage(chatID, "/status - authorization state\n/playlists - list account playlists\n/deauthorize - disconnect SoundCloud")
	default:
		t.sendMessage(chatID, "Unknown command, send /help")
	}
}

func (t *TelegramBot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		slog.Error("Failed to send telegram message", "error", err)
	}
}
