package handlers

import (
	"net/http"

	"mrvl-backend/internal/middleware"
	"mrvl-backend/internal/models"
	"mrvl-backend/internal/services"
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.forumService.ListThreads(r.Context(),
		r.URL.Query().Get("category"),
		queryInt(r, "limit", 20),
		queryInt(r, "offset", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, threads)
}

func (h *ForumHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	thread, err := h.forumService.GetThread(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, thread)
}

func (h *ForumHandler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var req models.CreateThreadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	thread, post, err := h.forumService.CreateThread(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"thread": thread,
		"post":   post,
	})
}

func (h *ForumHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	posts, err := h.forumService.ListPosts(r.Context(), id,
		queryInt(r, "limit", 50),
		queryInt(r, "offset", 0))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, posts)
}

func (h *ForumHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.forumService.CreatePost(r.Context(), id, middleware.GetUserID(r.Context()), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, post)
}
