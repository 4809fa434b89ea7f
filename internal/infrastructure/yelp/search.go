package yelp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ysmood/gson"

	"business-advisor/internal/domain/entity"
)

// SearchByQuery posts a natural-language query to the AI-chat search
// endpoint and extracts the businesses it mentions. Nearly every field in
// the response is optional, so extraction is deliberately lenient: absent
// values become zero values, never errors.
func (c *Client) SearchByQuery(ctx context.Context, query string) ([]entity.SearchHit, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AIEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode, string(body))
	}

	hits := extractHits(gson.NewFrom(string(body)))
	c.debug("Search complete", "hits", len(hits))
	return hits, nil
}

func extractHits(doc gson.JSON) []entity.SearchHit {
	var hits []entity.SearchHit
	for _, ent := range doc.Get("entities").Arr() {
		for _, biz := range ent.Get("businesses").Arr() {
			hits = append(hits, entity.SearchHit{
				ID:          biz.Get("id").Str(),
				Name:        biz.Get("name").Str(),
				Address:     formattedAddress(biz.Get("location")),
				Rating:      biz.Get("rating").Num(),
				ReviewCount: biz.Get("review_count").Int(),
				Price:       biz.Get("price").Str(),
				Summary:     shortSummary(biz),
				PhotoURL:    firstPhotoURL(biz),
			})
		}
	}
	return hits
}

func formattedAddress(loc gson.JSON) string {
	if loc.Has("formatted_address") {
		if addr := loc.Get("formatted_address").Str(); addr != "" {
			return addr
		}
	}

	var parts []string
	for _, key := range []string{"address1", "address2", "address3", "city", "state", "zip_code", "country"} {
		if !loc.Has(key) {
			continue
		}
		if v := loc.Get(key).Str(); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

func shortSummary(biz gson.JSON) string {
	if biz.Has("summaries.short") {
		if s := biz.Get("summaries.short").Str(); s != "" {
			return s
		}
	}
	if biz.Has("contextual_info.summary") {
		return biz.Get("contextual_info.summary").Str()
	}
	return ""
}

func firstPhotoURL(biz gson.JSON) string {
	if !biz.Has("contextual_info.photos") {
		return ""
	}
	photos := biz.Get("contextual_info.photos").Arr()
	if len(photos) == 0 {
		return ""
	}
	return photos[0].Get("original_url").Str()
}
