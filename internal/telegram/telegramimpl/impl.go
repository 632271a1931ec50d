package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/tweet-embed/internal/telegram"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"github.com/orgball2608/tweet-embed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New connects the bot when TELEGRAM_TOKEN is set. Without a token the
// client is returned disabled and every send fails with ErrServiceUnavailable.
func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("Telegram")

	if opts.Config.Telegram.Token == "" {
		log.Info("Telegram token not set, bot disabled")
		return &TelegramImpl{Logger: log, Config: opts.Config}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}

	log.Info("Authorized on account", "username", tgBot.Self.UserName)

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		Config: opts.Config,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) Enabled() bool {
	return tg.TgBot != nil
}
