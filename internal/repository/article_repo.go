package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"mrvl-backend/internal/models"
)

// ArticleRepo persists news articles. The videos column is jsonb: the slice
// is small, positionally tied to placeholders in content, and always read
// and written as a unit.
type ArticleRepo struct {
	db *pgxpool.Pool
}

func NewArticleRepo(db *pgxpool.Pool) *ArticleRepo {
	return &ArticleRepo{db: db}
}

func (r *ArticleRepo) Create(ctx context.Context, article *models.Article) error {
	videos, err := json.Marshal(article.Videos)
	if err != nil {
		return fmt.Errorf("failed to marshal videos: %w", err)
	}

	query := `
		INSERT INTO articles (author_id, title, content, videos, category, status, featured_image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			CASE WHEN $6 = 'published' THEN NOW() ELSE NULL END)
		RETURNING id, created_at, updated_at, published_at`

	err = r.db.QueryRow(ctx, query,
		article.AuthorID, article.Title, article.Content, videos,
		article.Category, article.Status, article.FeaturedImage,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt, &article.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) Update(ctx context.Context, article *models.Article) error {
	videos, err := json.Marshal(article.Videos)
	if err != nil {
		return fmt.Errorf("failed to marshal videos: %w", err)
	}

	query := `
		UPDATE articles
		SET title = $2, content = $3, videos = $4, category = $5, status = $6,
		    featured_image = $7, updated_at = NOW(),
		    published_at = CASE
		        WHEN $6 = 'published' AND published_at IS NULL THEN NOW()
		        ELSE published_at
		    END
		WHERE id = $1
		RETURNING updated_at, published_at`

	err = r.db.QueryRow(ctx, query,
		article.ID, article.Title, article.Content, videos,
		article.Category, article.Status, article.FeaturedImage,
	).Scan(&article.UpdatedAt, &article.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to update article %s: %w", article.ID, err)
	}
	return nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	query := `
		SELECT id, author_id, title, content, videos, category, status,
		       featured_image, created_at, updated_at, published_at
		FROM articles
		WHERE id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// ListPublished returns published articles newest first, optionally filtered
// by category.
func (r *ArticleRepo) ListPublished(ctx context.Context, category string, limit, offset int) ([]*models.Article, error) {
	query := `
		SELECT id, author_id, title, content, videos, category, status,
		       featured_image, created_at, updated_at, published_at
		FROM articles
		WHERE status = 'published' AND ($1 = '' OR category = $1)
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// ListByAuthor includes drafts; it backs the author dashboard.
func (r *ArticleRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*models.Article, error) {
	query := `
		SELECT id, author_id, title, content, videos, category, status,
		       featured_image, created_at, updated_at, published_at
		FROM articles
		WHERE author_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list author articles: %w", err)
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (r *ArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s not found", id)
	}
	return nil
}

// UpdateVideo overwrites one entry of the videos array in place. The worker
// calls this after fetching metadata for a single video.
func (r *ArticleRepo) UpdateVideo(ctx context.Context, articleID uuid.UUID, index int, video models.ArticleVideo) error {
	payload, err := json.Marshal(video)
	if err != nil {
		return fmt.Errorf("failed to marshal video: %w", err)
	}

	query := `
		UPDATE articles
		SET videos = jsonb_set(videos, ARRAY[$2::text], $3::jsonb)
		WHERE id = $1 AND jsonb_array_length(videos) > $2`

	tag, err := r.db.Exec(ctx, query, articleID, index, payload)
	if err != nil {
		return fmt.Errorf("failed to update video %d of article %s: %w", index, articleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s has no video at index %d", articleID, index)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ArticleRepo) scanOne(row rowScanner) (*models.Article, error) {
	var article models.Article
	var videos []byte

	err := row.Scan(
		&article.ID, &article.AuthorID, &article.Title, &article.Content,
		&videos, &article.Category, &article.Status, &article.FeaturedImage,
		&article.CreatedAt, &article.UpdatedAt, &article.PublishedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(videos) > 0 {
		if err := json.Unmarshal(videos, &article.Videos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal videos for article %s: %w", article.ID, err)
		}
	}
	if article.Videos == nil {
		article.Videos = []models.ArticleVideo{}
	}
	return &article, nil
}
