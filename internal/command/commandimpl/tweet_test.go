package commandimpl

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	mock_macro "github.com/orgball2608/tweet-embed/internal/macro/mocks"
	"github.com/orgball2608/tweet-embed/internal/ratelimit"
	mock_telegram "github.com/orgball2608/tweet-embed/internal/telegram/mocks"
	"github.com/orgball2608/tweet-embed/internal/twitter"
	"github.com/orgball2608/tweet-embed/pkg/errors"
	"github.com/orgball2608/tweet-embed/pkg/logger"
	"go.uber.org/mock/gomock"
)

const chatID int64 = 42

func commandUpdate(text string) tgbotapi.Update {
	cmdLen := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		cmdLen = i
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text:     text,
			Chat:     &tgbotapi.Chat{ID: chatID},
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
		},
	}
}

type fixture struct {
	cmd   *CommandImpl
	tg    *mock_telegram.MockClient
	macro *mock_macro.MockClient
}

func newFixture(t *testing.T, limiter ratelimit.Limiter) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	tg := mock_telegram.NewMockClient(ctrl)
	m := mock_macro.NewMockClient(ctrl)

	if limiter == nil {
		limiter = ratelimit.NewInMemoryLimiter(100, 1, 100)
	}

	return fixture{
		cmd: New(Opts{
			Telegram: tg,
			Macro:    m,
			Limiter:  limiter,
			Logger:   logger.NewNop(),
		}),
		tg:    tg,
		macro: m,
	}
}

func TestHandleUpdate_TweetSuccess(t *testing.T) {
	f := newFixture(t, nil)

	f.macro.EXPECT().RenderTweet(gomock.Any(), "123", gomock.Nil()).Return("<blockquote>Hello</blockquote>\n", nil)
	f.tg.EXPECT().SendMarkdown(chatID, "```html\n<blockquote>Hello</blockquote>\n```").Return(1, nil)

	f.cmd.handleUpdate(context.Background(), commandUpdate("/tweet 123"))
}

func TestHandleUpdate_TweetMissingArgument(t *testing.T) {
	f := newFixture(t, nil)

	f.macro.EXPECT().RenderTweet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.tg.EXPECT().SendMessage(chatID, "Please provide a tweet ID: /tweet <id>").Return(1, nil)

	f.cmd.handleUpdate(context.Background(), commandUpdate("/tweet"))
}

func TestHandleUpdate_TweetErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid id",
			err:  errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput, "invalid tweet ID: abc"),
			want: "invalid tweet ID: abc",
		},
		{
			name: "not found",
			err:  errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "tweet not found with ID 9"),
			want: "tweet not found with ID 9",
		},
		{
			name: "missing credential",
			err:  errors.WrapWithCode(errors.ErrMissingCredential, errors.CodeMissingCredential, "twitter bearer token is not set"),
			want: `The bot is not configured with Twitter credentials\.`,
		},
		{
			name: "remote api",
			err:  &twitter.APIError{StatusCode: 500, Message: "Internal Server Error"},
			want: "twitter API error: 500 Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)

			f.macro.EXPECT().RenderTweet(gomock.Any(), "abc", gomock.Nil()).Return("", tt.err)
			f.tg.EXPECT().SendMarkdown(chatID, tt.want).Return(1, nil)

			f.cmd.handleUpdate(context.Background(), commandUpdate("/tweet abc"))
		})
	}
}

func TestHandleUpdate_RateLimited(t *testing.T) {
	f := newFixture(t, ratelimit.NewInMemoryLimiter(1, 1<<62, 1))

	f.macro.EXPECT().RenderTweet(gomock.Any(), "123", gomock.Nil()).Return("<p>x</p>", nil).Times(1)
	f.tg.EXPECT().SendMarkdown(chatID, gomock.Any()).Return(1, nil).Times(1)
	f.tg.EXPECT().SendMessage(chatID, "Too many requests, please wait a moment.").Return(2, nil).Times(1)

	f.cmd.handleUpdate(context.Background(), commandUpdate("/tweet 123"))
	f.cmd.handleUpdate(context.Background(), commandUpdate("/tweet 123"))
}

func TestHandleUpdate_HelpAndUnknown(t *testing.T) {
	f := newFixture(t, nil)

	f.tg.EXPECT().SendMessage(chatID, helpText).Return(1, nil)
	f.tg.EXPECT().SendMessage(chatID, "Unknown command. "+helpText).Return(2, nil)

	f.cmd.handleUpdate(context.Background(), commandUpdate("/help"))
	f.cmd.handleUpdate(context.Background(), commandUpdate("/nope"))
}

func TestHandleUpdate_IgnoresPlainMessages(t *testing.T) {
	f := newFixture(t, nil)

	f.cmd.handleUpdate(context.Background(), tgbotapi.Update{})
	f.cmd.handleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{Text: "hello", Chat: &tgbotapi.Chat{ID: chatID}},
	})
}

func TestHandleCommand_StopsOnContextDone(t *testing.T) {
	f := newFixture(t, nil)

	updates := make(chan tgbotapi.Update)
	f.tg.EXPECT().GetUpdatesChan(gomock.Any()).Return(tgbotapi.UpdatesChannel(updates), nil)
	f.tg.EXPECT().StopReceivingUpdates()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.cmd.HandleCommand(ctx); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleCommand_DisabledBot(t *testing.T) {
	f := newFixture(t, nil)

	f.tg.EXPECT().GetUpdatesChan(gomock.Any()).Return(nil, errors.ErrServiceUnavailable)

	if err := f.cmd.HandleCommand(context.Background()); !errors.Is(err, errors.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}
