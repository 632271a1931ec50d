package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/tweet-embed/pkg/errors"
)

// SendMessage sends a plain text message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	return tg.send(tgbotapi.NewMessage(chatID, text))
}

// SendMarkdown sends a message that is already escaped for MarkdownV2
func (tg *TelegramImpl) SendMarkdown(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true
	return tg.send(msg)
}

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error) {
	if !tg.Enabled() {
		return nil, errors.ErrServiceUnavailable
	}
	return tg.TgBot.GetUpdatesChan(u), nil
}

func (tg *TelegramImpl) StopReceivingUpdates() {
	if tg.Enabled() {
		tg.TgBot.StopReceivingUpdates()
	}
}

func (tg *TelegramImpl) send(msg tgbotapi.MessageConfig) (int, error) {
	if !tg.Enabled() {
		return 0, errors.ErrServiceUnavailable
	}

	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", msg.ChatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	tg.Logger.Info("Message sent",
		"chatID", msg.ChatID,
		"messageID", sentMsg.MessageID)
	return sentMsg.MessageID, nil
}
