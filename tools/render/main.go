package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgball2608/tweet-embed/internal/macro"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"github.com/orgball2608/tweet-embed/pkg/errors"
	"github.com/orgball2608/tweet-embed/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: render <tweet_id> [lang]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Opts{Env: cfg.App.Env, SentryDSN: cfg.App.SentryUrl})

	options := map[string]string{}
	if len(os.Args) > 2 {
		options["lang"] = os.Args[2]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	html, err := macro.RenderWithLogger(ctx, cfg, log, os.Args[1], options)
	if err != nil {
		log.Error("Failed to render tweet", "tweet_id", os.Args[1], "code", errors.GetCode(err), "error", err)
		os.Exit(1)
	}

	fmt.Print(html)
}
