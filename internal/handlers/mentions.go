package handlers

import (
	"net/http"

	"mrvl-backend/internal/services"
)

type MentionHandler struct {
	mentionService *services.MentionService
}

func NewMentionHandler(mentionService *services.MentionService) *MentionHandler {
	return &MentionHandler{mentionService: mentionService}
}

// Search backs the autocomplete dropdown. ?q= is the partial text typed
// after the trigger, ?type= narrows to user, team or player.
func (h *MentionHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.mentionService.Search(r.Context(),
		r.URL.Query().Get("type"),
		r.URL.Query().Get("q"),
		queryInt(r, "limit", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, results)
}

// Popular is the default list shown before the user types anything.
func (h *MentionHandler) Popular(w http.ResponseWriter, r *http.Request) {
	results, err := h.mentionService.Popular(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, results)
}
