package twitterimpl

import (
	"net/http"
	"strings"

	"github.com/orgball2608/tweet-embed/internal/twitter"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"github.com/orgball2608/tweet-embed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TwitterImpl struct {
	httpClient *http.Client
	baseURL    string
	config     *config.Config
	logger     logger.Logger
}

func New(opts Opts) *TwitterImpl {
	return &TwitterImpl{
		httpClient: &http.Client{Timeout: opts.Config.Twitter.Timeout},
		baseURL:    strings.TrimRight(opts.Config.Twitter.APIBaseURL, "/"),
		config:     opts.Config,
		logger:     opts.Logger.WithComponent("TwitterClient"),
	}
}

var _ twitter.Client = (*TwitterImpl)(nil)
