package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	yt "github.com/kkdai/youtube/v2"
)

// YouTubeService fetches video metadata for the enrichment worker. Embed URLs
// are built without it; this only fills in title, thumbnail and duration
// after the fact.
type YouTubeService struct {
	ytClient *yt.Client
}

func NewYouTubeService() *YouTubeService {
	return &YouTubeService{
		ytClient: &yt.Client{
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
		},
	}
}

type VideoMetadata struct {
	Title           string
	Author          string
	Thumbnail       string
	DurationSeconds int
}

func (s *YouTubeService) GetMetadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	video, err := s.ytClient.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata for video %s: %w", videoID, err)
	}

	meta := &VideoMetadata{
		Title:           video.Title,
		Author:          video.Author,
		DurationSeconds: int(video.Duration.Seconds()),
	}

	// Pick the largest thumbnail the API reports.
	var best uint
	for _, t := range video.Thumbnails {
		if t.Width >= best {
			best = t.Width
			meta.Thumbnail = t.URL
		}
	}

	return meta, nil
}
