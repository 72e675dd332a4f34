// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

// NewBot builds a send-only bot. Offline skips the getMe call, so an
// unreachable Telegram or a bad token surfaces as a failed send instead of
// a startup error. An empty apiURL means the public Bot API.
func NewBot(apiURL, token string) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{URL: apiURL, Token: token, Offline: true})
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	// ChatID works for private chats, groups and channels alike.
	_, err := tba.bot.Send(telebot.ChatID(chatID), text, options)
	return err
}
