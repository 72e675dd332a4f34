package telegram

import "gopkg.in/telebot.v3"

// Client sends text to a Telegram chat. The poller only ever talks to the
// one chat from TELEGRAM_CHAT_ID; the id is still passed per call so the
// port stays independent of configuration.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
