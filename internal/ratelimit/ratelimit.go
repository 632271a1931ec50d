package ratelimit

import (
	"sync"
	"time"

	"github.com/orgball2608/tweet-embed/pkg/config"
	"golang.org/x/time/rate"
)

// Limiter throttles bot commands per chat.
type Limiter interface {
	Allow(chatID int64) bool
}

// InMemoryLimiter keeps one token bucket per chat.
type InMemoryLimiter struct {
	chats map[int64]*rate.Limiter
	mu    sync.Mutex
	r     rate.Limit
	b     int
}

// NewInMemoryLimiter allows requests per period with the given burst.
// Example: NewInMemoryLimiter(1, 5*time.Second, 3) -> one command every 5 seconds, burst of 3
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &InMemoryLimiter{
		chats: make(map[int64]*rate.Limiter),
		r:     rate.Every(per / time.Duration(requests)),
		b:     burst,
	}
}

func New(cfg *config.Config) Limiter {
	return NewInMemoryLimiter(cfg.Bot.RateRequests, cfg.Bot.RatePer, cfg.Bot.RateBurst)
}

func (l *InMemoryLimiter) Allow(chatID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.chats[chatID]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.chats[chatID] = limiter
	}

	return limiter.Allow()
}
