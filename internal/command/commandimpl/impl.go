package commandimpl

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/tweet-embed/internal/command"
	"github.com/orgball2608/tweet-embed/internal/macro"
	"github.com/orgball2608/tweet-embed/internal/ratelimit"
	"github.com/orgball2608/tweet-embed/internal/telegram"
	"github.com/orgball2608/tweet-embed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Macro    macro.Client
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
}

type CommandImpl struct {
	Telegram telegram.Client
	Macro    macro.Client
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram: opts.Telegram,
		Macro:    opts.Macro,
		Limiter:  opts.Limiter,
		Logger:   opts.Logger.WithComponent("Command"),
	}
}

var _ command.Client = (*CommandImpl)(nil)

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := c.Telegram.GetUpdatesChan(u)
	if err != nil {
		return err
	}
	defer c.Telegram.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			c.handleUpdate(ctx, update)
		}
	}
}

func (c *CommandImpl) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	chatID := update.Message.Chat.ID

	var err error
	switch update.Message.Command() {
	case "start", "help":
		_, err = c.Telegram.SendMessage(chatID, helpText)
	case macro.Name:
		if !c.Limiter.Allow(chatID) {
			_, err = c.Telegram.SendMessage(chatID, "Too many requests, please wait a moment.")
			break
		}
		err = c.handleTweetCommand(ctx, update)
	default:
		_, err = c.Telegram.SendMessage(chatID, "Unknown command. "+helpText)
	}

	if err != nil {
		c.Logger.Error("Command error", "command", update.Message.Command(), "chatID", chatID, "Error", err)
	}
}

const helpText = "Send /tweet <id> to get the embed HTML for a tweet."
