package commandimpl

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/tweet-embed/pkg/errors"
	"github.com/orgball2608/tweet-embed/pkg/formatter"
)

func (c *CommandImpl) handleTweetCommand(ctx context.Context, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	tweetID := strings.TrimSpace(update.Message.CommandArguments())

	if tweetID == "" {
		_, err := c.Telegram.SendMessage(chatID, "Please provide a tweet ID: /tweet <id>")
		return err
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	html, err := c.Macro.RenderTweet(ctxWithTimeout, tweetID, nil)
	if err != nil {
		c.Logger.Warn("Failed to render tweet for chat", "chatID", chatID, "tweet_id", tweetID, "error", err)
		_, sendErr := c.Telegram.SendMarkdown(chatID, formatter.EscapeMarkdownV2(userMessage(err)))
		return sendErr
	}

	_, err = c.Telegram.SendMarkdown(chatID, formatter.CodeBlock("html", html))
	return err
}

func userMessage(err error) string {
	switch {
	case errors.IsInvalidInput(err), errors.IsNotFound(err):
		return errors.GetMessage(err)
	case errors.IsMissingCredential(err):
		return "The bot is not configured with Twitter credentials."
	case errors.IsRemoteAPI(err):
		return err.Error()
	default:
		return "Could not fetch the tweet, please try again later."
	}
}
