package app

import (
	"context"

	"github.com/orgball2608/tweet-embed/internal/command"
	"github.com/orgball2608/tweet-embed/internal/command/commandimpl"
	"github.com/orgball2608/tweet-embed/internal/embed"
	"github.com/orgball2608/tweet-embed/internal/macro"
	"github.com/orgball2608/tweet-embed/internal/ratelimit"
	"github.com/orgball2608/tweet-embed/internal/telegram"
	"github.com/orgball2608/tweet-embed/internal/telegram/telegramimpl"
	"github.com/orgball2608/tweet-embed/internal/twitter"
	"github.com/orgball2608/tweet-embed/internal/twitter/twitterimpl"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"github.com/orgball2608/tweet-embed/pkg/logger"
	"go.uber.org/fx"
)

// Core provides the tweet macro and everything it needs.
var Core = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		embed.New,
	),
	fx.Provide(
		fx.Annotate(
			twitterimpl.New,
			fx.As(new(twitter.Client)),
		),
		fx.Annotate(
			macro.New,
			fx.As(new(macro.Client)),
		),
	),
)

var Module = fx.Options(
	Core,
	fx.Provide(
		ratelimit.New,
		NewServer,
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, server *Server, tgClient telegram.Client, cmdClient command.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := server.Start(); err != nil {
				cancel()
				return err
			}

			if !tgClient.Enabled() {
				return nil
			}

			go func() {
				if err := cmdClient.HandleCommand(ctx); err != nil {
					log.Error("Command error", "Error", err)
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			return server.Stop(stopCtx)
		},
	})
}
