package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"mrvl-backend/internal/embed"
	"mrvl-backend/internal/mentions"
	"mrvl-backend/internal/models"
)

// ForumStore is the persistence surface ForumService needs; satisfied by
// repository.ForumRepo.
type ForumStore interface {
	CreateThread(ctx context.Context, thread *models.ForumThread) error
	GetThread(ctx context.Context, id uuid.UUID) (*models.ForumThread, error)
	ListThreads(ctx context.Context, category string, limit, offset int) ([]*models.ForumThread, error)
	CreatePost(ctx context.Context, post *models.ForumPost) error
	ListPosts(ctx context.Context, threadID uuid.UUID, limit, offset int) ([]*models.ForumPost, error)
}

// ForumService runs post bodies through the same placeholder pipeline as
// articles and extracts mention tokens at posting time.
type ForumService struct {
	forums       ForumStore
	parentDomain string
}

func NewForumService(forums ForumStore, parentDomain string) *ForumService {
	return &ForumService{forums: forums, parentDomain: parentDomain}
}

func (s *ForumService) CreateThread(ctx context.Context, authorID uuid.UUID, req models.CreateThreadRequest) (*models.ForumThread, *models.ForumPost, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, nil, &ValidationError{Fields: map[string]string{"title": "Title is required"}}
	}

	thread := &models.ForumThread{
		AuthorID: authorID,
		Title:    req.Title,
		Category: req.Category,
	}
	if err := s.forums.CreateThread(ctx, thread); err != nil {
		return nil, nil, fmt.Errorf("failed to create thread: %w", err)
	}

	post, err := s.CreatePost(ctx, thread.ID, authorID, models.CreatePostRequest{Content: req.Content})
	if err != nil {
		return nil, nil, err
	}
	thread.PostCount = 1
	return thread, post, nil
}

func (s *ForumService) GetThread(ctx context.Context, id uuid.UUID) (*models.ForumThread, error) {
	thread, err := s.forums.GetThread(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Thread not found"}
		}
		return nil, err
	}
	return thread, nil
}

func (s *ForumService) ListThreads(ctx context.Context, category string, limit, offset int) ([]*models.ForumThread, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	threads, err := s.forums.ListThreads(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	if threads == nil {
		threads = []*models.ForumThread{}
	}
	return threads, nil
}

func (s *ForumService) CreatePost(ctx context.Context, threadID, authorID uuid.UUID, req models.CreatePostRequest) (*models.ForumPost, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, &ValidationError{Fields: map[string]string{"content": "Content is required"}}
	}

	// A missing thread is a 404, not a foreign-key violation.
	if _, err := s.GetThread(ctx, threadID); err != nil {
		return nil, err
	}

	content, refs := embed.ProcessContent(req.Content)

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

	tokens := mentions.Extract(req.Content)
	raw := make([]string, len(tokens))
	for i, t := range tokens {
		raw[i] = t.Raw
	}

	post := &models.ForumPost{
		ThreadID: threadID,
		AuthorID: authorID,
		Content:  content,
		Videos:   videos,
		Mentions: raw,
	}
	if err := s.forums.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *ForumService) ListPosts(ctx context.Context, threadID uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if _, err := s.GetThread(ctx, threadID); err != nil {
		return nil, err
	}
	posts, err := s.forums.ListPosts(ctx, threadID, limit, offset)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.ForumPost{}
	}
	return posts, nil
}
