package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"mrvl-backend/internal/embed"
	"mrvl-backend/internal/logger"
	"mrvl-backend/internal/models"
	"mrvl-backend/internal/repository"
)

// EnrichmentQueue is the Redis list the worker pool consumes.
const EnrichmentQueue = "queue:embed-enrichment"

// EnrichmentJob asks the worker to fetch metadata for one video of one
// article and write it back at the same index.
type EnrichmentJob struct {
	ArticleID  uuid.UUID `json:"article_id"`
	VideoIndex int       `json:"video_index"`
	Platform   string    `json:"platform"`
	VideoID    string    `json:"video_id"`
}

// NewsService owns the article lifecycle: on write it swaps video URLs for
// placeholders and stores the extracted references alongside, then queues
// metadata enrichment for platforms that have an API.
type NewsService struct {
	articles     *repository.ArticleRepo
	queue        *redis.Client
	parentDomain string
}

func NewNewsService(articles *repository.ArticleRepo, queue *redis.Client, parentDomain string) *NewsService {
	return &NewsService{
		articles:     articles,
		queue:        queue,
		parentDomain: parentDomain,
	}
}

func (s *NewsService) Create(ctx context.Context, authorID uuid.UUID, req models.CreateArticleRequest) (*models.Article, error) {
	status := req.Status
	if status == "" {
		status = "draft"
	}

	content, videos := s.processContent(req.Content)

	article := &models.Article{
		AuthorID:      authorID,
		Title:         req.Title,
		Content:       content,
		Videos:        videos,
		Category:      req.Category,
		Status:        status,
		FeaturedImage: req.FeaturedImage,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.enqueueEnrichment(ctx, article)
	return article, nil
}

func (s *NewsService) Update(ctx context.Context, id uuid.UUID, callerID uuid.UUID, callerRole string, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != callerID && callerRole != "admin" {
		return nil, &ForbiddenError{Message: "You can only edit your own articles"}
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Status != nil {
		article.Status = *req.Status
	}
	if req.FeaturedImage != nil {
		article.FeaturedImage = req.FeaturedImage
	}

	reprocessed := false
	if req.Content != nil {
		article.Content, article.Videos = s.processContent(*req.Content)
		reprocessed = true
	}

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}

	if reprocessed {
		s.enqueueEnrichment(ctx, article)
	}
	return article, nil
}

func (s *NewsService) Get(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Article not found"}
		}
		return nil, err
	}
	return article, nil
}

// GetPublished is the public read path: drafts 404.
func (s *NewsService) GetPublished(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Status != "published" {
		return nil, &NotFoundError{Message: "Article not found"}
	}
	return article, nil
}

// GetForEdit restores the original URLs into the content so the author sees
// what they typed, not the placeholder tokens.
func (s *NewsService) GetForEdit(ctx context.Context, id uuid.UUID, callerID uuid.UUID, callerRole string) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != callerID && callerRole != "admin" {
		return nil, &ForbiddenError{Message: "You can only edit your own articles"}
	}

	refs := make([]*embed.VideoReference, len(article.Videos))
	for i, v := range article.Videos {
		refs[i] = &embed.VideoReference{OriginalURL: v.OriginalURL}
	}
	article.Content = embed.RestoreContent(article.Content, refs)
	return article, nil
}

func (s *NewsService) ListPublished(ctx context.Context, category string, limit, offset int) ([]*models.Article, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	articles, err := s.articles.ListPublished(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	return articles, nil
}

func (s *NewsService) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*models.Article, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	articles, err := s.articles.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	return articles, nil
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID, callerID uuid.UUID, callerRole string) error {
	article, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if article.AuthorID != callerID && callerRole != "admin" {
		return &ForbiddenError{Message: "You can only delete your own articles"}
	}
	return s.articles.Delete(ctx, id)
}

// processContent swaps every recognized video URL for its indexed placeholder
// and returns the persisted video records, embed URLs included.
func (s *NewsService) processContent(raw string) (string, []models.ArticleVideo) {
	content, refs := embed.ProcessContent(raw)

	videos := make([]models.ArticleVideo, len(refs))
	for i, ref := range refs {
		videos[i] = models.ArticleVideo{
			Platform:    string(ref.Type),
			VideoID:     ref.ID,
			OriginalURL: ref.OriginalURL,
			EmbedURL:    embed.URL(ref.Type, ref.ID, embed.Options{Domain: s.parentDomain}),
			Thumbnail:   embed.Thumbnail(ref.Type, ref.ID),
		}
	}
	return content, videos
}

// enqueueEnrichment pushes one job per video that can be enriched. Failures
// are logged and dropped: metadata is cosmetic, the article is already saved.
func (s *NewsService) enqueueEnrichment(ctx context.Context, article *models.Article) {
	for i, v := range article.Videos {
		switch embed.Kind(v.Platform) {
		case embed.KindYouTube, embed.KindVLRGG:
		default:
			continue
		}

		payload, err := json.Marshal(EnrichmentJob{
			ArticleID:  article.ID,
			VideoIndex: i,
			Platform:   v.Platform,
			VideoID:    v.VideoID,
		})
		if err != nil {
			continue
		}
		if err := s.queue.LPush(ctx, EnrichmentQueue, payload).Err(); err != nil {
			logger.L.WithError(err).WithField("article_id", article.ID).Warn("Failed to enqueue enrichment job")
		}
	}
}
