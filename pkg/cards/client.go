package cards

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mhofer/wortkarten/models"
)

// Client talks to the remote flashcard service.
type Client struct {
	http *resty.Client
}

// NewClient builds a flashcard service client from config.
func NewClient(cfg models.FlashcardsConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(20 * time.Second)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &Client{http: client}
}

type cardListResponse struct {
	Cards []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"cards"`
}

type createCardResponse struct {
	ID string `json:"id"`
}

// ListCardNames returns the names of all cards in a collection.
func (c *Client) ListCardNames(ctx context.Context, collectionID string) ([]string, error) {
	var out cardListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/collections/%s/cards", collectionID))
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list cards: status %s", resp.Status())
	}

	names := make([]string, 0, len(out.Cards))
	for _, card := range out.Cards {
		names = append(names, card.Name)
	}
	return names, nil
}

// CreateCard submits a card to a collection and returns the created card id.
func (c *Client) CreateCard(ctx context.Context, collectionID string, card Card) (string, error) {
	var out createCardResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(card).
		SetResult(&out).
		Post(fmt.Sprintf("/collections/%s/cards", collectionID))
	if err != nil {
		return "", fmt.Errorf("create card %q: %w", card.Question, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("create card %q: status %s; body: %s", card.Question, resp.Status(), resp.String())
	}
	return out.ID, nil
}
