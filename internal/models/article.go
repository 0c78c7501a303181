package models

import (
	"time"

	"github.com/google/uuid"
)

// Article content is stored with [VIDEO_EMBED_{n}] placeholders; the videos
// slice is positionally aligned with them. Restoring one from the other is
// the embed package's job.
type Article struct {
	ID            uuid.UUID      `json:"id"`
	AuthorID      uuid.UUID      `json:"author_id"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Videos        []ArticleVideo `json:"videos"`
	Category      string         `json:"category"`
	Status        string         `json:"status"` // "draft" | "published"
	FeaturedImage *string        `json:"featured_image"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	PublishedAt   *time.Time     `json:"published_at"`
}

// ArticleVideo is the persisted video shape shared with the frontend.
// Title, Thumbnail and DurationSeconds are filled in asynchronously by the
// enrichment worker.
type ArticleVideo struct {
	Platform        string `json:"platform"`
	VideoID         string `json:"video_id"`
	EmbedURL        string `json:"embed_url,omitempty"`
	OriginalURL     string `json:"original_url"`
	Title           string `json:"title,omitempty"`
	Thumbnail       string `json:"thumbnail,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

type CreateArticleRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Content       string  `json:"content" validate:"required"`
	Category      string  `json:"category" validate:"required,oneof=news match-report roster event announcement"`
	Status        string  `json:"status" validate:"omitempty,oneof=draft published"`
	FeaturedImage *string `json:"featured_image" validate:"omitempty,url"`
}

type UpdateArticleRequest struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Content       *string `json:"content"`
	Category      *string `json:"category" validate:"omitempty,oneof=news match-report roster event announcement"`
	Status        *string `json:"status" validate:"omitempty,oneof=draft published"`
	FeaturedImage *string `json:"featured_image" validate:"omitempty,url"`
}
