package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Twitter struct {
		BearerToken string        `env:"TWITTER_BEARER_TOKEN" env-description:"Twitter API v2 bearer token"`
		APIBaseURL  string        `env:"TWITTER_API_BASE_URL" env-default:"https://api.twitter.com"`
		Timeout     time.Duration `env:"TWITTER_HTTP_TIMEOUT" env-default:"0s"`
	}
	Embed struct {
		EscapeHTML bool   `env:"EMBED_ESCAPE_HTML" env-default:"false"`
		Lang       string `env:"EMBED_LANG" env-default:"en"`
	}
	Telegram struct {
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Bot struct {
		RateRequests int           `env:"BOT_RATE_REQUESTS" env-default:"1"`
		RatePer      time.Duration `env:"BOT_RATE_PER" env-default:"5s"`
		RateBurst    int           `env:"BOT_RATE_BURST" env-default:"3"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

// New reads the configuration from the environment once per process.
func New() (*Config, error) {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			help, _ := cleanenv.GetDescription(&Config{}, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
		cfg = c
	})
	return cfg, nil
}

// Load reads a fresh configuration from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}
