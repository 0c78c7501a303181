package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"mrvl-backend/internal/models"
)

type EsportsRepo struct {
	db *pgxpool.Pool
}

func NewEsportsRepo(db *pgxpool.Pool) *EsportsRepo {
	return &EsportsRepo{db: db}
}

func (r *EsportsRepo) ListTeams(ctx context.Context, region string) ([]*models.Team, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, region, logo_url, ranking, created_at
		FROM teams
		WHERE $1 = '' OR region = $1
		ORDER BY ranking NULLS LAST, name`, region)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Region, &t.LogoURL, &t.Ranking, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, &t)
	}
	return teams, rows.Err()
}

func (r *EsportsRepo) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var t models.Team
	err := r.db.QueryRow(ctx, `
		SELECT id, name, slug, region, logo_url, ranking, created_at
		FROM teams WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Slug, &t.Region, &t.LogoURL, &t.Ranking, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *EsportsRepo) ListTeamPlayers(ctx context.Context, teamID uuid.UUID) ([]*models.Player, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, handle, real_name, team_id, role, avatar_url, created_at
		FROM players
		WHERE team_id = $1
		ORDER BY handle`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Handle, &p.RealName, &p.TeamID, &p.Role, &p.AvatarURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, &p)
	}
	return players, rows.Err()
}

func (r *EsportsRepo) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var p models.Player
	err := r.db.QueryRow(ctx, `
		SELECT id, handle, real_name, team_id, role, avatar_url, created_at
		FROM players WHERE id = $1`, id,
	).Scan(&p.ID, &p.Handle, &p.RealName, &p.TeamID, &p.Role, &p.AvatarURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *EsportsRepo) ListEvents(ctx context.Context, status string) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, region, status, starts_at, ends_at, created_at
		FROM events
		WHERE $1 = '' OR status = $1
		ORDER BY starts_at DESC NULLS LAST`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Slug, &e.Region, &e.Status, &e.StartsAt, &e.EndsAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (r *EsportsRepo) ListMatches(ctx context.Context, status string, limit int) ([]*models.Match, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, event_id, team1_id, team2_id, team1_score, team2_score,
		       best_of, status, scheduled_at, created_at
		FROM matches
		WHERE $1 = '' OR status = $1
		ORDER BY scheduled_at DESC NULLS LAST
		LIMIT $2`, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.EventID, &m.Team1ID, &m.Team2ID, &m.Team1Score,
			&m.Team2Score, &m.BestOf, &m.Status, &m.ScheduledAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

func (r *EsportsRepo) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var m models.Match
	err := r.db.QueryRow(ctx, `
		SELECT id, event_id, team1_id, team2_id, team1_score, team2_score,
		       best_of, status, scheduled_at, created_at
		FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.EventID, &m.Team1ID, &m.Team2ID, &m.Team1Score,
		&m.Team2Score, &m.BestOf, &m.Status, &m.ScheduledAt, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *EsportsRepo) UpdateMatchScore(ctx context.Context, id uuid.UUID, team1Score, team2Score int, status string) error {
	query := `
		UPDATE matches
		SET team1_score = $2, team2_score = $3,
		    status = CASE WHEN $4 = '' THEN status ELSE $4 END
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, team1Score, team2Score, status)
	if err != nil {
		return fmt.Errorf("failed to update match %s score: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s not found", id)
	}
	return nil
}
