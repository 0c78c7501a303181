package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"mrvl-backend/internal/logger"
	"mrvl-backend/internal/models"
	"mrvl-backend/internal/repository"
)

// LiveScoresChannel carries ScoreUpdate payloads to the websocket hub.
const LiveScoresChannel = "live:scores"

type EsportsService struct {
	repo   *repository.EsportsRepo
	pubsub *redis.Client
}

func NewEsportsService(repo *repository.EsportsRepo, pubsub *redis.Client) *EsportsService {
	return &EsportsService{repo: repo, pubsub: pubsub}
}

func (s *EsportsService) ListTeams(ctx context.Context, region string) ([]*models.Team, error) {
	teams, err := s.repo.ListTeams(ctx, region)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []*models.Team{}
	}
	return teams, nil
}

func (s *EsportsService) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Team not found"}
		}
		return nil, err
	}
	return team, nil
}

func (s *EsportsService) GetTeamRoster(ctx context.Context, teamID uuid.UUID) ([]*models.Player, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	players, err := s.repo.ListTeamPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []*models.Player{}
	}
	return players, nil
}

func (s *EsportsService) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Player not found"}
		}
		return nil, err
	}
	return player, nil
}

func (s *EsportsService) ListEvents(ctx context.Context, status string) ([]*models.Event, error) {
	events, err := s.repo.ListEvents(ctx, status)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.Event{}
	}
	return events, nil
}

func (s *EsportsService) ListMatches(ctx context.Context, status string, limit int) ([]*models.Match, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	matches, err := s.repo.ListMatches(ctx, status, limit)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []*models.Match{}
	}
	return matches, nil
}

func (s *EsportsService) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := s.repo.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Match not found"}
		}
		return nil, err
	}
	return match, nil
}

// UpdateScore writes the new score and broadcasts it on the live channel so
// connected clients see it without polling.
func (s *EsportsService) UpdateScore(ctx context.Context, matchID uuid.UUID, req models.UpdateScoreRequest) (*models.ScoreUpdate, error) {
	if req.Team1Score == nil || req.Team2Score == nil {
		return nil, &ValidationError{Fields: map[string]string{"score": "Both team scores are required"}}
	}

	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = match.Status
	}

	if err := s.repo.UpdateMatchScore(ctx, matchID, *req.Team1Score, *req.Team2Score, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update score: %w", err)
	}

	update := &models.ScoreUpdate{
		MatchID:    matchID,
		Team1Score: *req.Team1Score,
		Team2Score: *req.Team2Score,
		Status:     status,
		MapName:    req.MapName,
		UpdatedAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal score update: %w", err)
	}
	if err := s.pubsub.Publish(ctx, LiveScoresChannel, payload).Err(); err != nil {
		// The score is saved; only the live push failed.
		logger.L.WithError(err).WithField("match_id", matchID).Warn("Failed to publish score update")
	}

	return update, nil
}
