// Package fetcher retrieves dictionary pages for single words. Retries with
// exponential backoff live here; callers only see the final page or the
// final failure.
package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mhofer/wortkarten/models"
)

const (
	retryWait    = 500 * time.Millisecond
	retryWaitMax = 8 * time.Second
)

// Fetcher fetches word pages from the dictionary site.
type Fetcher struct {
	client *resty.Client
}

// New builds a Fetcher from dictionary config.
func New(cfg models.DictionaryConfig) *Fetcher {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout()).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryWaitMax).
		SetHeader("User-Agent", "wortkarten/1.0").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
	return &Fetcher{client: client}
}

// FetchWordHTML returns the raw HTML of the dictionary page for word.
func (f *Fetcher) FetchWordHTML(ctx context.Context, word string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("w", word).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("fetch page for %q: %w", word, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch page for %q: status %s", word, resp.Status())
	}
	return resp.String(), nil
}
