package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mrvl-backend/internal/services"
)

// VLRHandler proxies the upstream VLR.gg API through the server-side cache
// so every client shares one rate-limit budget.
type VLRHandler struct {
	vlrService *services.VLRService
}

func NewVLRHandler(vlrService *services.VLRService) *VLRHandler {
	return &VLRHandler{vlrService: vlrService}
}

func (h *VLRHandler) News(w http.ResponseWriter, r *http.Request) {
	body, err := h.vlrService.News(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, body)
}

func (h *VLRHandler) Match(w http.ResponseWriter, r *http.Request) {
	match, err := h.vlrService.Match(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, match)
}

func (h *VLRHandler) Matches(w http.ResponseWriter, r *http.Request) {
	body, err := h.vlrService.Matches(r.Context(),
		r.URL.Query().Get("region"),
		queryInt(r, "limit", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, body)
}

func (h *VLRHandler) Team(w http.ResponseWriter, r *http.Request) {
	team, err := h.vlrService.Team(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, team)
}

func (h *VLRHandler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	body, err := h.vlrService.SearchTeams(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, body)
}

func (h *VLRHandler) Events(w http.ResponseWriter, r *http.Request) {
	body, err := h.vlrService.Events(r.Context(),
		r.URL.Query().Get("region"),
		queryInt(r, "limit", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, body)
}

// Enrich builds the display card for a pasted VLR.gg URL.
func (h *VLRHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url" validate:"required"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.vlrService.EnrichURL(r.Context(), req.URL)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, card)
}

func (h *VLRHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "unreachable"
	if h.vlrService.Health(r.Context()) {
		status = "ok"
	}
	writeSuccess(w, http.StatusOK, map[string]string{"upstream": status})
}
