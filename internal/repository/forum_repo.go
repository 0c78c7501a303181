package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"mrvl-backend/internal/models"
)

type ForumRepo struct {
	db *pgxpool.Pool
}

func NewForumRepo(db *pgxpool.Pool) *ForumRepo {
	return &ForumRepo{db: db}
}

func (r *ForumRepo) CreateThread(ctx context.Context, thread *models.ForumThread) error {
	query := `
		INSERT INTO forum_threads (author_id, title, category)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, thread.AuthorID, thread.Title, thread.Category).
		Scan(&thread.ID, &thread.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert thread: %w", err)
	}
	return nil
}

func (r *ForumRepo) GetThread(ctx context.Context, id uuid.UUID) (*models.ForumThread, error) {
	var t models.ForumThread
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.author_id, t.title, t.category, t.created_at,
		       (SELECT COUNT(*) FROM forum_posts p WHERE p.thread_id = t.id)
		FROM forum_threads t
		WHERE t.id = $1`, id,
	).Scan(&t.ID, &t.AuthorID, &t.Title, &t.Category, &t.CreatedAt, &t.PostCount)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ForumRepo) ListThreads(ctx context.Context, category string, limit, offset int) ([]*models.ForumThread, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.author_id, t.title, t.category, t.created_at,
		       (SELECT COUNT(*) FROM forum_posts p WHERE p.thread_id = t.id)
		FROM forum_threads t
		WHERE $1 = '' OR t.category = $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3`, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []*models.ForumThread
	for rows.Next() {
		var t models.ForumThread
		if err := rows.Scan(&t.ID, &t.AuthorID, &t.Title, &t.Category, &t.CreatedAt, &t.PostCount); err != nil {
			return nil, err
		}
		threads = append(threads, &t)
	}
	return threads, rows.Err()
}

func (r *ForumRepo) CreatePost(ctx context.Context, post *models.ForumPost) error {
	videos, err := json.Marshal(post.Videos)
	if err != nil {
		return fmt.Errorf("failed to marshal videos: %w", err)
	}

	query := `
		INSERT INTO forum_posts (thread_id, author_id, content, videos, mentions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err = r.db.QueryRow(ctx, query,
		post.ThreadID, post.AuthorID, post.Content, videos, post.Mentions,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *ForumRepo) ListPosts(ctx context.Context, threadID uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, thread_id, author_id, content, videos, mentions, created_at
		FROM forum_posts
		WHERE thread_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3`, threadID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.ForumPost
	for rows.Next() {
		var p models.ForumPost
		var videos []byte
		if err := rows.Scan(&p.ID, &p.ThreadID, &p.AuthorID, &p.Content, &videos, &p.Mentions, &p.CreatedAt); err != nil {
			return nil, err
		}
		if len(videos) > 0 {
			if err := json.Unmarshal(videos, &p.Videos); err != nil {
				return nil, fmt.Errorf("failed to unmarshal videos for post %s: %w", p.ID, err)
			}
		}
		if p.Videos == nil {
			p.Videos = []models.ArticleVideo{}
		}
		if p.Mentions == nil {
			p.Mentions = []string{}
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}
