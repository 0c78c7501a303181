package handlers

import (
	"net/http"

	"mrvl-backend/internal/embed"
)

// EmbedHandler exposes the detection pipeline to the editor frontend: paste
// preview, URL validation, and placeholder processing all run server-side so
// the client and the persisted articles agree on what embeds.
type EmbedHandler struct {
	parentDomain string
}

func NewEmbedHandler(parentDomain string) *EmbedHandler {
	return &EmbedHandler{parentDomain: parentDomain}
}

type embedOptionsRequest struct {
	IsMobile  bool  `json:"is_mobile"`
	IsTablet  bool  `json:"is_tablet"`
	Autoplay  bool  `json:"autoplay"`
	StartTime int   `json:"start_time"`
	Muted     *bool `json:"muted"`
}

func (req embedOptionsRequest) toOptions(domain string) embed.Options {
	return embed.Options{
		Domain:    domain,
		IsMobile:  req.IsMobile,
		IsTablet:  req.IsTablet,
		Autoplay:  req.Autoplay,
		StartTime: req.StartTime,
		Muted:     req.Muted,
	}
}

// Detect classifies a single URL.
func (h *EmbedHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL     string              `json:"url" validate:"required"`
		Options embedOptionsRequest `json:"options"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if valid, msg := embed.Validate(req.URL); !valid {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"url": msg}, r))
		return
	}

	ref := embed.Detect(req.URL)
	opts := req.Options.toOptions(h.parentDomain)
	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"video":     ref,
		"embed_url": embed.URL(ref.Type, ref.ID, opts),
		"thumbnail": embed.Thumbnail(ref.Type, ref.ID),
		"platform":  embed.PlatformName(ref.Type),
	})
}

// Scan finds every supported video URL in free text, in order.
func (h *EmbedHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text    string              `json:"text" validate:"required"`
		Options embedOptionsRequest `json:"options"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detections := embed.DetectAll(req.Text)
	opts := req.Options.toOptions(h.parentDomain)
	for i := range detections {
		detections[i].EmbedURL = embed.URL(detections[i].Type, detections[i].ID, opts)
	}
	writeSuccess(w, http.StatusOK, detections)
}

// Process previews the placeholder transform without persisting anything:
// the editor shows authors exactly what will be stored.
func (h *EmbedHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content" validate:"required"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}

	content, videos := embed.ProcessContent(req.Content)
	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"content": content,
		"videos":  videos,
	})
}
