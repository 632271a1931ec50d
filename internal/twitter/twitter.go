package twitter

import (
	"context"
	"fmt"

	"github.com/orgball2608/tweet-embed/internal/domain"
	"github.com/orgball2608/tweet-embed/pkg/errors"
)

//go:generate go run go.uber.org/mock/mockgen -source=twitter.go -destination=mocks/mock.go
type Client interface {
	// GetTweet fetches a single tweet with its author expanded.
	GetTweet(ctx context.Context, tweetID string) (*domain.Tweet, error)
}

// APIError is returned when the API answers with a status other than 200 or 404.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter API error: %d %s", e.StatusCode, e.Message)
}

// ErrorCode tags every APIError with errors.CodeRemoteAPI for errors.GetCode.
func (e *APIError) ErrorCode() string {
	return errors.CodeRemoteAPI
}

// Is lets callers match any APIError with errors.Is(err, errors.ErrRemoteAPI).
func (e *APIError) Is(target error) bool {
	return target == errors.ErrRemoteAPI
}
