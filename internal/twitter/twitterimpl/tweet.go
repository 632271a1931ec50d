package twitterimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orgball2608/tweet-embed/internal/domain"
	"github.com/orgball2608/tweet-embed/internal/twitter"
	"github.com/orgball2608/tweet-embed/pkg/errors"
	"github.com/orgball2608/tweet-embed/pkg/logger"
)

const tweetQuery = "user.fields=id,name,username&tweet.fields=id,text,created_at&expansions=author_id"

type tweetResponse struct {
	Data struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		CreatedAt string `json:"created_at"`
		AuthorID  string `json:"author_id"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
}

// GetTweet issues exactly one GET for the tweet and its expanded author.
func (t *TwitterImpl) GetTweet(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	url := fmt.Sprintf("%s/2/tweets/%s?%s", t.baseURL, tweetID, tweetQuery)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for tweet %s: %w", tweetID, err)
	}
	req.Header.Set("Authorization", "Bearer "+t.config.Twitter.BearerToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tweet-embed")

	t.logger.Debug("Fetching tweet", "tweet_id", tweetID)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to fetch tweet %s", tweetID))
	}
	defer safeClose(resp.Body, t.logger)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		t.logger.Warn("Tweet not found", "tweet_id", tweetID)
		return nil, errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound,
			fmt.Sprintf("tweet not found with ID %s", tweetID))
	case resp.StatusCode != http.StatusOK:
		t.logger.Error("Twitter API returned unexpected status", "tweet_id", tweetID, "status", resp.StatusCode)
		return nil, &twitter.APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tweet %s response: %w", tweetID, err)
	}

	tweet, err := parseTweet(body)
	if err != nil {
		return nil, err
	}

	t.logger.Info("Fetched tweet", "tweet_id", tweetID, "author", tweet.Author.Username)
	return tweet, nil
}

func parseTweet(body []byte) (*domain.Tweet, error) {
	var payload tweetResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.WrapWithCode(errors.ErrMalformedResponse, errors.CodeMalformedResponse,
			fmt.Sprintf("could not decode tweet payload: %v", err))
	}

	if len(payload.Includes.Users) == 0 {
		return nil, errors.WrapWithCode(errors.ErrMalformedResponse, errors.CodeMalformedResponse,
			"tweet payload has no included author")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, payload.Data.CreatedAt)
	if err != nil {
		return nil, errors.WrapWithCode(errors.ErrMalformedResponse, errors.CodeMalformedResponse,
			fmt.Sprintf("could not parse created_at %q", payload.Data.CreatedAt))
	}

	author := payload.Includes.Users[0]
	return &domain.Tweet{
		ID:        payload.Data.ID,
		Text:      payload.Data.Text,
		CreatedAt: createdAt,
		Author: domain.Author{
			ID:       author.ID,
			Name:     author.Name,
			Username: author.Username,
		},
	}, nil
}

// safeClose safely closes an io.ReadCloser and logs any errors
func safeClose(closer io.ReadCloser, logger logger.Logger) {
	if err := closer.Close(); err != nil {
		logger.Error("Error closing response body", "error", err)
	}
}
