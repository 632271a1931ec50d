package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// Enabled reports whether a bot token was configured.
	Enabled() bool

	GetUpdatesChan(u tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error)
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)
	SendMarkdown(chatID int64, text string) (int, error)
}
