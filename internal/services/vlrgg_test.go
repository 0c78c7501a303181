package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mrvl-backend/internal/cache"
)

func newTestVLRService(handler http.Handler) (*VLRService, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewVLRService(server.URL, cache.New(5*time.Minute, 64)), server
}

func TestEnrichURLMatch(t *testing.T) {
	var requests int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.Header.Get("User-Agent") != "MRVL-News-Integration" {
			t.Errorf("Expected MRVL-News-Integration user agent, got %q", r.Header.Get("User-Agent"))
		}
		if r.URL.Path != "/match/12345" {
			t.Errorf("Expected /match/12345, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "live",
			"score": "2-1",
			"date": "2026-08-28",
			"event": {"name": "Champions Tour"},
			"teams": [{"name": "Sentinels", "logo": "https://cdn.example/sen.png"}, {"name": "Fnatic", "logo": ""}]
		}`))
	})

	svc, server := newTestVLRService(handler)
	defer server.Close()

	card, err := svc.EnrichURL(context.Background(), "https://www.vlr.gg/12345/sentinels-vs-fnatic")
	if err != nil {
		t.Fatalf("EnrichURL returned error: %v", err)
	}

	if card.Title != "Sentinels vs Fnatic" {
		t.Errorf("Expected title %q, got %q", "Sentinels vs Fnatic", card.Title)
	}
	if card.Subtitle != "Champions Tour" {
		t.Errorf("Expected subtitle %q, got %q", "Champions Tour", card.Subtitle)
	}
	if !card.Enriched {
		t.Error("Expected card to be enriched")
	}
	if card.Thumbnail != "https://cdn.example/sen.png" {
		t.Errorf("Expected first team logo as thumbnail, got %q", card.Thumbnail)
	}
	if card.Metadata["score"] != "2-1" {
		t.Errorf("Expected score 2-1 in metadata, got %q", card.Metadata["score"])
	}

	// Second enrichment of the same match must hit the cache.
	if _, err := svc.EnrichURL(context.Background(), "https://www.vlr.gg/12345/sentinels-vs-fnatic"); err != nil {
		t.Fatalf("Second EnrichURL returned error: %v", err)
	}
	if got := atomic.LoadInt32(&requests); got != 1 {
		t.Errorf("Expected 1 upstream request, got %d", got)
	}
}

func TestEnrichURLMatchAPIFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	svc, server := newTestVLRService(handler)
	defer server.Close()

	card, err := svc.EnrichURL(context.Background(), "https://www.vlr.gg/12345/sentinels-vs-fnatic")
	if err != nil {
		t.Fatalf("Expected degraded card on API failure, got error: %v", err)
	}
	if card.Enriched {
		t.Error("Expected card not to be enriched when the API fails")
	}
	if card.Title != "Sentinels Vs Fnatic" {
		t.Errorf("Expected titleized slug fallback, got %q", card.Title)
	}
}

func TestEnrichURLEventNeedsNoAPI(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("Unexpected API request for event URL: %s", r.URL.Path)
	})
	svc, server := newTestVLRService(handler)
	defer server.Close()

	card, err := svc.EnrichURL(context.Background(), "https://www.vlr.gg/event/2097/champions-2024")
	if err != nil {
		t.Fatalf("EnrichURL returned error: %v", err)
	}
	if card.Title != "Champions 2024" {
		t.Errorf("Expected %q, got %q", "Champions 2024", card.Title)
	}
	if card.Subtitle != "Tournament Details" {
		t.Errorf("Expected tournament subtitle, got %q", card.Subtitle)
	}
}

func TestEnrichURLRejectsNonVLR(t *testing.T) {
	svc, server := newTestVLRService(http.NotFoundHandler())
	defer server.Close()

	_, err := svc.EnrichURL(context.Background(), "https://youtube.com/watch?v=dQw4w9WgXcQ")
	if err == nil {
		t.Fatal("Expected error for non-VLR URL")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("Expected ValidationError, got %T", err)
	}
}

func TestSearchTeamsShortQuery(t *testing.T) {
	svc, server := newTestVLRService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("Unexpected API request for short query: %s", r.URL.String())
	}))
	defer server.Close()

	body, err := svc.SearchTeams(context.Background(), "a")
	if err != nil {
		t.Fatalf("SearchTeams returned error: %v", err)
	}
	if string(body) != "[]" {
		t.Errorf("Expected empty list for short query, got %s", body)
	}
}

func TestUnwrapListEnvelope(t *testing.T) {
	wrapped := []byte(`{"success": true, "data": [{"id": 1}]}`)
	if got := string(unwrapList(wrapped)); got != `[{"id": 1}]` {
		t.Errorf("Expected unwrapped data array, got %s", got)
	}

	bare := []byte(`[{"id": 2}]`)
	if got := string(unwrapList(bare)); got != `[{"id": 2}]` {
		t.Errorf("Expected bare array unchanged, got %s", got)
	}
}

func TestTitleizeSlug(t *testing.T) {
	tests := []struct {
		slug     string
		fallback string
		expected string
	}{
		{"champions-2024", "Event", "Champions 2024"},
		{"sentinels-vs-fnatic", "Match", "Sentinels Vs Fnatic"},
		{"", "Player", "Player"},
	}
	for _, tt := range tests {
		if got := titleizeSlug(tt.slug, tt.fallback); got != tt.expected {
			t.Errorf("titleizeSlug(%q): expected %q, got %q", tt.slug, tt.expected, got)
		}
	}
}
