package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is a send-only Telegram client used to deliver reminder messages to
// the admin chat.
type Client struct {
	Bot    *tgbotapi.BotAPI
	ChatID int64
}

func NewClient(token string, chatID int64) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Client{
		Bot:    bot,
		ChatID: chatID,
	}, nil
}

// Send delivers a plain-text message to the configured chat.
func (c *Client) Send(text string) error {
	msg := tgbotapi.NewMessage(c.ChatID, text)
	_, err := c.Bot.Send(msg)
	return err
}
