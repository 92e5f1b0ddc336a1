package app

import "adboard_backend/internal/logger"

// LogNotifier implements notifier.Notifier by writing to the log. Used when
// neither Telegram nor SMTP is configured, and in tests.
type LogNotifier struct{}

func (n *LogNotifier) Notify(recipient, message string) error {
	logger.Info("notification (log only)", "recipient", recipient, "message", message)
	return nil
}
