package yelp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchJSON = `{
	"chat_id": "abc123",
	"response": {"text": "Here are some options."},
	"entities": [
		{
			"businesses": [
				{
					"id": "marios-trattoria-college-park",
					"name": "Mario's Trattoria",
					"rating": 4.5,
					"review_count": 321,
					"price": "$$",
					"location": {"formatted_address": "12 Main St, College Park, MD 20740"},
					"summaries": {"short": "Family-run Italian spot."},
					"contextual_info": {"photos": [{"original_url": "https://img.example/1.jpg"}]}
				},
				{
					"id": "taco-truck",
					"name": "Taco Truck",
					"location": {"address1": "5 Side St", "city": "College Park", "state": "MD"}
				}
			]
		}
	]
}`

func TestSearchByQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Bad request body: %v", err)
		}
		if payload["query"] != "find me pasta" {
			t.Errorf("Unexpected query: %q", payload["query"])
		}
		w.Write([]byte(searchJSON))
	}))
	defer server.Close()

	hits, err := testClient(server.URL).SearchByQuery(context.Background(), "find me pasta")
	if err != nil {
		t.Fatalf("SearchByQuery failed: %v", err)
	}

	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}

	first := hits[0]
	if first.ID != "marios-trattoria-college-park" || first.Name != "Mario's Trattoria" {
		t.Errorf("Unexpected first hit: %+v", first)
	}
	if first.Rating != 4.5 || first.ReviewCount != 321 || first.Price != "$$" {
		t.Errorf("Numeric fields wrong: %+v", first)
	}
	if first.Address != "12 Main St, College Park, MD 20740" {
		t.Errorf("Unexpected address: %q", first.Address)
	}
	if first.Summary != "Family-run Italian spot." {
		t.Errorf("Unexpected summary: %q", first.Summary)
	}
	if first.PhotoURL != "https://img.example/1.jpg" {
		t.Errorf("Unexpected photo: %q", first.PhotoURL)
	}

	// sparse business: missing fields become zero values, address is
	// assembled from the individual parts
	second := hits[1]
	if second.Address != "5 Side St, College Park, MD" {
		t.Errorf("Unexpected assembled address: %q", second.Address)
	}
	if second.Rating != 0 || second.Price != "" || second.PhotoURL != "" {
		t.Errorf("Missing fields must stay zero: %+v", second)
	}
}

func TestSearchByQuery_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).SearchByQuery(context.Background(), "anything"); err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}

func TestSearchByQuery_EmptyEntities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chat_id": "x", "entities": []}`))
	}))
	defer server.Close()

	hits, err := testClient(server.URL).SearchByQuery(context.Background(), "anything")
	if err != nil {
		t.Fatalf("SearchByQuery failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("Expected no hits, got %d", len(hits))
	}
}
