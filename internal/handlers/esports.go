package handlers

import (
	"net/http"

	"mrvl-backend/internal/models"
	"mrvl-backend/internal/services"
)

type EsportsHandler struct {
	esportsService *services.EsportsService
}

func NewEsportsHandler(esportsService *services.EsportsService) *EsportsHandler {
	return &EsportsHandler{esportsService: esportsService}
}

func (h *EsportsHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.esportsService.ListTeams(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, teams)
}

func (h *EsportsHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	team, err := h.esportsService.GetTeam(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, team)
}

func (h *EsportsHandler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	players, err := h.esportsService.GetTeamRoster(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, players)
}

func (h *EsportsHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	player, err := h.esportsService.GetPlayer(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, player)
}

func (h *EsportsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.esportsService.ListEvents(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, events)
}

func (h *EsportsHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.esportsService.ListMatches(r.Context(),
		r.URL.Query().Get("status"),
		queryInt(r, "limit", 50))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, matches)
}

func (h *EsportsHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	match, err := h.esportsService.GetMatch(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, match)
}

// UpdateScore is admin/author only; the router enforces the role.
func (h *EsportsHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateScoreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	update, err := h.esportsService.UpdateScore(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, update)
}
