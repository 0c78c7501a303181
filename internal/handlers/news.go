package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mrvl-backend/internal/middleware"
	"mrvl-backend/internal/models"
	"mrvl-backend/internal/services"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// List is the public feed: published articles only.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.newsService.ListPublished(r.Context(),
		r.URL.Query().Get("category"),
		queryInt(r, "limit", 20),
		queryInt(r, "offset", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, articles)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	article, err := h.newsService.GetPublished(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, article)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	article, err := h.newsService.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, article)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	article, err := h.newsService.Update(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, article)
}

// GetForEdit returns the article with original URLs restored into the body.
func (h *NewsHandler) GetForEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	article, err := h.newsService.GetForEdit(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, article)
}

func (h *NewsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	articles, err := h.newsService.ListByAuthor(r.Context(),
		middleware.GetUserID(r.Context()),
		queryInt(r, "limit", 20),
		queryInt(r, "offset", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, articles)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.newsService.Delete(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx)); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "Article deleted"})
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid "+param, r))
		return uuid.Nil, false
	}
	return id, true
}
