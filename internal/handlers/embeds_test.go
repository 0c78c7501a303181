package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmbedDetect(t *testing.T) {
	h := NewEmbedHandler("mrvl.example.com")

	body := `{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`
	req := httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Detect(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Video struct {
				Type string `json:"type"`
				ID   string `json:"id"`
			} `json:"video"`
			EmbedURL string `json:"embed_url"`
			Platform string `json:"platform"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("Expected success envelope")
	}
	if resp.Data.Video.Type != "youtube" {
		t.Errorf("Expected youtube, got %q", resp.Data.Video.Type)
	}
	if resp.Data.Video.ID != "dQw4w9WgXcQ" {
		t.Errorf("Expected dQw4w9WgXcQ, got %q", resp.Data.Video.ID)
	}
	if !strings.Contains(resp.Data.EmbedURL, "youtube.com/embed/dQw4w9WgXcQ") {
		t.Errorf("Expected embed URL, got %q", resp.Data.EmbedURL)
	}
	if resp.Data.Platform != "YouTube" {
		t.Errorf("Expected YouTube platform name, got %q", resp.Data.Platform)
	}
}

func TestEmbedDetectRejectsUnsupported(t *testing.T) {
	h := NewEmbedHandler("")

	body := `{"url": "https://example.com/not-a-video"}`
	req := httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Detect(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var resp struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %q", resp.Error.Code)
	}
	if resp.Error.Fields["url"] == "" {
		t.Error("Expected url field error message")
	}
}

func TestEmbedScanAppliesOptions(t *testing.T) {
	h := NewEmbedHandler("")

	body := `{
		"text": "Watch https://www.twitch.tv/videos/1234567890 now",
		"options": {"start_time": 90, "autoplay": true, "muted": false}
	}`
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Scan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data []struct {
			Type     string `json:"type"`
			EmbedURL string `json:"embed_url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(resp.Data) != 1 {
		t.Fatalf("Expected 1 detection, got %d", len(resp.Data))
	}
	if resp.Data[0].Type != "twitch-video" {
		t.Errorf("Expected twitch-video, got %q", resp.Data[0].Type)
	}
	if !strings.Contains(resp.Data[0].EmbedURL, "time=90s") {
		t.Errorf("Expected time=90s in embed URL, got %q", resp.Data[0].EmbedURL)
	}
	if !strings.Contains(resp.Data[0].EmbedURL, "muted=false") {
		t.Errorf("Expected muted=false in embed URL, got %q", resp.Data[0].EmbedURL)
	}
	if !strings.Contains(resp.Data[0].EmbedURL, "parent=localhost") {
		t.Errorf("Expected parent=localhost fallback, got %q", resp.Data[0].EmbedURL)
	}
}

func TestEmbedProcessRoundTrip(t *testing.T) {
	h := NewEmbedHandler("")

	body := `{"content": "Intro https://youtu.be/dQw4w9WgXcQ outro"}`
	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Process(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Content string `json:"content"`
			Videos  []struct {
				ID string `json:"id"`
			} `json:"videos"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Data.Content != "Intro [VIDEO_EMBED_0] outro" {
		t.Errorf("Expected placeholder content, got %q", resp.Data.Content)
	}
	if len(resp.Data.Videos) != 1 || resp.Data.Videos[0].ID != "dQw4w9WgXcQ" {
		t.Errorf("Expected one extracted video, got %+v", resp.Data.Videos)
	}
}

func TestDecodeAndValidateMissingField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	var payload struct {
		URL string `json:"url" validate:"required"`
	}
	if decodeAndValidate(rec, req, &payload) {
		t.Error("Expected validation to fail for missing url")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}
