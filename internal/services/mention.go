package services

import (
	"context"
	"strings"

	"mrvl-backend/internal/mentions"
	"mrvl-backend/internal/models"
	"mrvl-backend/internal/repository"
)

const (
	defaultSuggestionLimit = 8
	maxSuggestionLimit     = 25
)

// MentionService resolves the partial query typed after an @ trigger into
// suggestions. A plain @ searches all three entity types; @team: and
// @player: narrow the search.
type MentionService struct {
	repo *repository.MentionRepo
}

func NewMentionService(repo *repository.MentionRepo) *MentionService {
	return &MentionService{repo: repo}
}

func (s *MentionService) Search(ctx context.Context, kind, query string, limit int) ([]models.Mention, error) {
	query = strings.TrimSpace(query)
	limit = clampLimit(limit)

	switch mentions.Kind(kind) {
	case mentions.KindTeam:
		if query == "" {
			return s.Popular(ctx, limit)
		}
		return nonNil(s.repo.SearchTeams(ctx, query, limit))
	case mentions.KindPlayer:
		return nonNil(s.repo.SearchPlayers(ctx, query, limit))
	case mentions.KindUser:
		return nonNil(s.repo.SearchUsers(ctx, query, limit))
	}

	// Untyped trigger: merge all three, users first.
	var merged []models.Mention
	users, err := s.repo.SearchUsers(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	merged = append(merged, users...)

	teams, err := s.repo.SearchTeams(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	merged = append(merged, teams...)

	players, err := s.repo.SearchPlayers(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	merged = append(merged, players...)

	if len(merged) > limit {
		merged = merged[:limit]
	}
	if merged == nil {
		merged = []models.Mention{}
	}
	return merged, nil
}

// Popular is the empty-query default shown when the dropdown first opens.
func (s *MentionService) Popular(ctx context.Context, limit int) ([]models.Mention, error) {
	return nonNil(s.repo.PopularTeams(ctx, clampLimit(limit)))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		return maxSuggestionLimit
	}
	return limit
}

func nonNil(results []models.Mention, err error) ([]models.Mention, error) {
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.Mention{}
	}
	return results, nil
}
