// Package yelp implements the upstream business data source against the
// Fusion v3 REST endpoints and the natural-language AI-chat search.
package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/infrastructure/textclean"
)

var _ output.BusinessDataPort = (*Client)(nil)

type Config struct {
	APIKey     string
	BaseURL    string
	AIEndpoint string
	Timeout    time.Duration
	Logger     output.LoggerPort
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:     apiKey,
		BaseURL:    "https://api.yelp.com/v3",
		AIEndpoint: "https://api.yelp.com/ai/chat/v2",
		Timeout:    30 * time.Second,
	}
}

type Client struct {
	httpClient *http.Client
	cfg        Config
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

type businessResponse struct {
	ID         string  `json:"id"`
	Alias      string  `json:"alias"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Price      string  `json:"price"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
	Location struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
}

func (c *Client) FetchBusinessMetadata(ctx context.Context, businessID string) (*entity.BusinessMetadata, error) {
	var resp businessResponse
	status, err := c.getJSON(ctx, c.cfg.BaseURL+"/businesses/"+businessID, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch business %q: %w", businessID, err)
	}
	if status == http.StatusNotFound {
		return nil, &entity.NotFoundError{BusinessID: businessID}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch business %q: unexpected status %d", businessID, status)
	}

	c.debug("Business fetched", "business", businessID, "rating", resp.Rating)

	categories := make([]string, 0, len(resp.Categories))
	for _, cat := range resp.Categories {
		categories = append(categories, cat.Title)
	}

	address := ""
	for i, part := range resp.Location.DisplayAddress {
		if i > 0 {
			address += ", "
		}
		address += part
	}

	return &entity.BusinessMetadata{
		ID:         resp.ID,
		Name:       resp.Name,
		Rating:     resp.Rating,
		Price:      priceLevel(resp.Price),
		Categories: categories,
		Address:    address,
	}, nil
}

type reviewsResponse struct {
	Reviews []struct {
		Rating float64 `json:"rating"`
		Text   string  `json:"text"`
	} `json:"reviews"`
}

// FetchReviews returns up to limit reviews in the source's relevance
// order. Excerpt markup is stripped before the text goes anywhere near
// an agent.
func (c *Client) FetchReviews(ctx context.Context, businessID string, limit int) (entity.ReviewSet, error) {
	url := fmt.Sprintf("%s/businesses/%s/reviews?limit=%d&sort_by=yelp_sort", c.cfg.BaseURL, businessID, limit)

	var resp reviewsResponse
	status, err := c.getJSON(ctx, url, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews for %q: %w", businessID, err)
	}
	if status == http.StatusNotFound {
		return nil, &entity.NotFoundError{BusinessID: businessID}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch reviews for %q: unexpected status %d", businessID, status)
	}

	reviews := make(entity.ReviewSet, 0, len(resp.Reviews))
	for _, r := range resp.Reviews {
		reviews = append(reviews, entity.Review{
			Rating: r.Rating,
			Text:   textclean.StripHTML(r.Text),
		})
	}

	c.debug("Reviews fetched", "business", businessID, "count", len(reviews))
	return reviews, nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug(msg, args...)
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func priceLevel(price string) entity.PriceLevel {
	if n := len(price); n >= 1 && n <= 4 {
		return entity.PriceLevel(n)
	}
	return entity.PriceUnknown
}
