package notifier

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adboard_backend/internal/logger"
	"adboard_backend/internal/repositories"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
)

// TelegramNotifier pushes notifications to Telegram chats and runs the
// account verification workflow: an operator sends "/verify <email>" and the
// matching user's IsActive flag flips to true.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	db       *gorm.DB
	userRepo repositories.UserRepository
}

func NewTelegramNotifier(token string, db *gorm.DB, userRepo repositories.UserRepository) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	return &TelegramNotifier{
		bot:      bot,
		db:       db,
		userRepo: userRepo,
	}, nil
}

// Notify sends a message to the chat identified by recipient (a numeric
// chat id as string).
func (t *TelegramNotifier) Notify(recipient, message string) error {
	chatID, err := strconv.ParseInt(recipient, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", recipient, err)
	}

	_, err = t.bot.Send(tgbotapi.NewMessage(chatID, message))
	return err
}

// Run polls for bot commands until the context is cancelled. Only the
// /verify command is recognized; everything else is ignored.
func (t *TelegramNotifier) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := t.bot.GetUpdatesChan(u)

	logger.Info("telegram bot started", "username", t.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			logger.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			if update.Message.Command() == "verify" {
				t.handleVerify(update.Message)
			}
		}
	}
}

func (t *TelegramNotifier) handleVerify(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	email := strings.TrimSpace(msg.CommandArguments())
	if email == "" {
		t.reply(chatID, "Usage: /verify <email>")
		return
	}

	user, err := t.userRepo.ActivateByEmail(t.db, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			t.reply(chatID, fmt.Sprintf("User %s not found.", email))
		} else {
			logger.Error("failed to verify user via bot", "email", email, "error", err.Error())
			t.reply(chatID, "Error verifying user.")
		}
		return
	}

	logger.Info("user activated via telegram", "user_id", user.ID, "email", email)
	t.reply(chatID, fmt.Sprintf("User %s has been verified.", email))
}

func (t *TelegramNotifier) reply(chatID int64, text string) {
	if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logger.Error("failed to send telegram reply", "error", err.Error())
	}
}
