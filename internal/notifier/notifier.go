package notifier

import "adboard_backend/internal/logger"

// Notifier delivers an out-of-band message to a recipient (email address or
// chat id, depending on the implementation).
type Notifier interface {
	Notify(recipient, message string) error
}

// Send is the fire-and-forget entry point: delivery failures are logged and
// never surfaced to the request that triggered the notification.
func Send(n Notifier, recipient, message string) {
	go func() {
		if err := n.Notify(recipient, message); err != nil {
			logger.Error("notification delivery failed",
				"recipient", recipient,
				"error", err.Error(),
			)
		}
	}()
}
