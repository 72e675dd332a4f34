package telegram

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers messages to the single configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger.WithField("chat_id", chatID),
	}
}

// Notify sends message and reports whether it was delivered. Delivery
// errors are logged here and never returned, so a broken bot token or an
// unreachable Telegram cannot take the poll loop down.
func (n *Notifier) Notify(message string) bool {
	if err := n.client.SendMessage(n.chatID, message, nil); err != nil {
		n.logger.WithError(err).Error("Failed to send message to Telegram")
		return false
	}
	n.logger.WithField("text", message).Info("Message sent to Telegram")
	return true
}
