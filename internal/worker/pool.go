package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"mrvl-backend/internal/embed"
	"mrvl-backend/internal/logger"
	"mrvl-backend/internal/repository"
	"mrvl-backend/internal/services"
)

// Pool consumes enrichment jobs: it fetches title/thumbnail/duration for
// videos referenced in articles and writes them back at the same index.
// The article is already live when a job runs, so failures only cost
// metadata.
type Pool struct {
	redis       *redis.Client
	youtube     *services.YouTubeService
	vlr         *services.VLRService
	articleRepo *repository.ArticleRepo
	workerCount int
	stopChan    chan struct{}
}

func NewPool(
	redisClient *redis.Client,
	youtube *services.YouTubeService,
	vlr *services.VLRService,
	articleRepo *repository.ArticleRepo,
	workerCount int,
) *Pool {
	return &Pool{
		redis:       redisClient,
		youtube:     youtube,
		vlr:         vlr,
		articleRepo: articleRepo,
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		go p.worker(i)
	}
	logger.L.WithField("workers", p.workerCount).Info("Started enrichment worker pool")
}

func (p *Pool) Stop() {
	close(p.stopChan)
}

func (p *Pool) worker(id int) {
	for {
		select {
		case <-p.stopChan:
			logger.L.WithField("worker", id).Info("Worker shutting down")
			return
		default:
		}

		ctx := context.Background()

		// BLPOP with 30s timeout so the stop channel is checked regularly.
		result, err := p.redis.BLPop(ctx, 30*time.Second, services.EnrichmentQueue).Result()
		if err != nil {
			continue
		}
		if len(result) < 2 {
			continue
		}

		var job services.EnrichmentJob
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			logger.L.WithError(err).WithField("worker", id).Error("Failed to parse enrichment job")
			continue
		}

		if err := p.process(ctx, job); err != nil {
			logger.L.WithError(err).WithFields(map[string]interface{}{
				"worker":      id,
				"article_id":  job.ArticleID,
				"video_index": job.VideoIndex,
				"platform":    job.Platform,
			}).Warn("Enrichment job failed")
		}
	}
}

func (p *Pool) process(ctx context.Context, job services.EnrichmentJob) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	article, err := p.articleRepo.GetByID(ctx, job.ArticleID)
	if err != nil {
		return err
	}
	if job.VideoIndex < 0 || job.VideoIndex >= len(article.Videos) {
		// Content was edited between enqueue and processing; drop the job.
		return nil
	}

	video := article.Videos[job.VideoIndex]
	if video.VideoID != job.VideoID {
		return nil
	}

	switch embed.Kind(job.Platform) {
	case embed.KindYouTube:
		meta, err := p.youtube.GetMetadata(ctx, job.VideoID)
		if err != nil {
			return err
		}
		video.Title = meta.Title
		video.DurationSeconds = meta.DurationSeconds
		if meta.Thumbnail != "" {
			video.Thumbnail = meta.Thumbnail
		}

	case embed.KindVLRGG:
		card, err := p.vlr.EnrichURL(ctx, video.OriginalURL)
		if err != nil {
			return err
		}
		video.Title = card.Title
		if card.Thumbnail != "" {
			video.Thumbnail = card.Thumbnail
		}

	default:
		return nil
	}

	return p.articleRepo.UpdateVideo(ctx, job.ArticleID, job.VideoIndex, video)
}
