package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mrvl-backend/internal/mentions"
	"mrvl-backend/internal/models"
)

// MentionRepo backs autocomplete suggestions. Searches are prefix matches so
// the partial query typed after the trigger maps directly to an index scan.
type MentionRepo struct {
	db *pgxpool.Pool
}

func NewMentionRepo(db *pgxpool.Pool) *MentionRepo {
	return &MentionRepo{db: db}
}

// SearchUsers matches usernames by prefix, case-insensitive.
func (r *MentionRepo) SearchUsers(ctx context.Context, query string, limit int) ([]models.Mention, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, COALESCE(avatar_url, '')
		FROM users
		WHERE username ILIKE $1 || '%'
		ORDER BY username
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var results []models.Mention
	for rows.Next() {
		var m models.Mention
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.AvatarURL); err != nil {
			return nil, err
		}
		m.Type = string(mentions.KindUser)
		m.MentionText = mentions.Format(mentions.KindUser, m.DisplayName)
		results = append(results, m)
	}
	return results, rows.Err()
}

func (r *MentionRepo) SearchTeams(ctx context.Context, query string, limit int) ([]models.Mention, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, region, COALESCE(logo_url, '')
		FROM teams
		WHERE name ILIKE $1 || '%' OR slug ILIKE $1 || '%'
		ORDER BY ranking NULLS LAST, name
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}
	defer rows.Close()

	var results []models.Mention
	for rows.Next() {
		var m models.Mention
		var slug string
		if err := rows.Scan(&m.ID, &m.DisplayName, &slug, &m.Subtitle, &m.AvatarURL); err != nil {
			return nil, err
		}
		m.Type = string(mentions.KindTeam)
		m.MentionText = mentions.Format(mentions.KindTeam, slug)
		results = append(results, m)
	}
	return results, rows.Err()
}

func (r *MentionRepo) SearchPlayers(ctx context.Context, query string, limit int) ([]models.Mention, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.handle, COALESCE(t.name, 'Free Agent'), COALESCE(p.avatar_url, '')
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.handle ILIKE $1 || '%'
		ORDER BY p.handle
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	defer rows.Close()

	var results []models.Mention
	for rows.Next() {
		var m models.Mention
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.Subtitle, &m.AvatarURL); err != nil {
			return nil, err
		}
		m.Type = string(mentions.KindPlayer)
		m.MentionText = mentions.Format(mentions.KindPlayer, m.DisplayName)
		results = append(results, m)
	}
	return results, rows.Err()
}

// PopularTeams is the empty-query suggestion list: top-ranked teams.
func (r *MentionRepo) PopularTeams(ctx context.Context, limit int) ([]models.Mention, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, region, COALESCE(logo_url, '')
		FROM teams
		WHERE ranking IS NOT NULL
		ORDER BY ranking
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular teams: %w", err)
	}
	defer rows.Close()

	var results []models.Mention
	for rows.Next() {
		var m models.Mention
		var slug string
		if err := rows.Scan(&m.ID, &m.DisplayName, &slug, &m.Subtitle, &m.AvatarURL); err != nil {
			return nil, err
		}
		m.Type = string(mentions.KindTeam)
		m.MentionText = mentions.Format(mentions.KindTeam, slug)
		results = append(results, m)
	}
	return results, rows.Err()
}
