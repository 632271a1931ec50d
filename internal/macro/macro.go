// Package macro implements the tweet block macro: tweet::<id>[attrs] is
// replaced by a passthrough block holding the rendered embed fragment.
package macro

import (
	"context"
	"fmt"
	"regexp"

	"github.com/orgball2608/tweet-embed/internal/embed"
	"github.com/orgball2608/tweet-embed/internal/twitter"
	"github.com/orgball2608/tweet-embed/internal/twitter/twitterimpl"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"github.com/orgball2608/tweet-embed/pkg/errors"
	"github.com/orgball2608/tweet-embed/pkg/logger"
	"go.uber.org/fx"
)

const (
	Name        = "tweet"
	ContextPass = "pass"
)

var tweetIDPattern = regexp.MustCompile(`^\d+$`)

//go:generate go run go.uber.org/mock/mockgen -source=macro.go -destination=mocks/mock.go
type Client interface {
	// Process expands one tweet::<target>[attrs] macro into a block.
	Process(ctx context.Context, target string, attrs map[string]string) (*Block, error)

	// RenderTweet returns the HTML fragment for a tweet.
	RenderTweet(ctx context.Context, tweetID string, options map[string]string) (string, error)
}

// Block is what replaces the macro in the document.
type Block struct {
	Context    string
	Source     string
	Attributes map[string]string
}

type Opts struct {
	fx.In

	Config   *config.Config
	Twitter  twitter.Client
	Renderer *embed.Renderer
	Logger   logger.Logger
}

type Processor struct {
	config   *config.Config
	twitter  twitter.Client
	renderer *embed.Renderer
	logger   logger.Logger
}

func New(opts Opts) *Processor {
	return &Processor{
		config:   opts.Config,
		twitter:  opts.Twitter,
		renderer: opts.Renderer,
		logger:   opts.Logger.WithComponent("TweetMacro"),
	}
}

var _ Client = (*Processor)(nil)

// Render fetches tweetID with the credential in cfg and returns its embed
// fragment. It builds a fresh client each call and keeps nothing around.
// A nil cfg carries no credential.
func Render(ctx context.Context, cfg *config.Config, tweetID string, options map[string]string) (string, error) {
	return RenderWithLogger(ctx, cfg, logger.NewNop(), tweetID, options)
}

// RenderWithLogger is Render with fetch and render diagnostics sent to log.
func RenderWithLogger(ctx context.Context, cfg *config.Config, log logger.Logger, tweetID string, options map[string]string) (string, error) {
	if err := validate(cfg, tweetID); err != nil {
		return "", err
	}

	p := New(Opts{
		Config:   cfg,
		Twitter:  twitterimpl.New(twitterimpl.Opts{Config: cfg, Logger: log}),
		Renderer: embed.New(cfg),
		Logger:   log,
	})
	return p.RenderTweet(ctx, tweetID, options)
}

func (p *Processor) Process(ctx context.Context, target string, attrs map[string]string) (*Block, error) {
	html, err := p.RenderTweet(ctx, target, attrs)
	if err != nil {
		return nil, err
	}

	return &Block{
		Context:    ContextPass,
		Source:     html,
		Attributes: attrs,
	}, nil
}

func (p *Processor) RenderTweet(ctx context.Context, tweetID string, options map[string]string) (string, error) {
	if err := validate(p.config, tweetID); err != nil {
		return "", err
	}

	tweet, err := p.twitter.GetTweet(ctx, tweetID)
	if err != nil {
		p.logger.Error("Failed to fetch tweet", "tweet_id", tweetID, "error", err)
		return "", err
	}

	html, err := p.renderer.Render(tweet, tweetID, options)
	if err != nil {
		return "", errors.Wrap(err, fmt.Sprintf("failed to render tweet %s", tweetID))
	}

	p.logger.Debug("Rendered tweet", "tweet_id", tweetID, "bytes", len(html))
	return html, nil
}

// validate checks the ID before the credential. Neither check touches the network.
func validate(cfg *config.Config, tweetID string) error {
	if !tweetIDPattern.MatchString(tweetID) {
		return errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput,
			fmt.Sprintf("invalid tweet ID: %s", tweetID))
	}

	if cfg == nil || cfg.Twitter.BearerToken == "" {
		return errors.WrapWithCode(errors.ErrMissingCredential, errors.CodeMissingCredential,
			"twitter bearer token is not set")
	}
	return nil
}
