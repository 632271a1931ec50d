package telegramimpl

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"github.com/orgball2608/tweet-embed/pkg/errors"
	"github.com/orgball2608/tweet-embed/pkg/logger"
)

func TestNew_DisabledWithoutToken(t *testing.T) {
	tg, err := New(Opts{Config: &config.Config{}, Logger: logger.NewNop()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tg.Enabled() {
		t.Error("expected bot to be disabled")
	}
	if _, err := tg.SendMessage(1, "hi"); !errors.Is(err, errors.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
	if _, err := tg.SendMarkdown(1, "hi"); !errors.Is(err, errors.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
	if _, err := tg.GetUpdatesChan(tgbotapi.NewUpdate(0)); !errors.Is(err, errors.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
	tg.StopReceivingUpdates()
}
