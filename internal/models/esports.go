package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Region    string    `json:"region"`
	LogoURL   *string   `json:"logo_url"`
	Ranking   *int      `json:"ranking"`
	CreatedAt time.Time `json:"created_at"`
}

type Player struct {
	ID        uuid.UUID  `json:"id"`
	Handle    string     `json:"handle"`
	RealName  *string    `json:"real_name"`
	TeamID    *uuid.UUID `json:"team_id"`
	Role      *string    `json:"role"`
	AvatarURL *string    `json:"avatar_url"`
	CreatedAt time.Time  `json:"created_at"`
}

type Event struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Region    string     `json:"region"`
	Status    string     `json:"status"` // "upcoming" | "live" | "completed"
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	CreatedAt time.Time  `json:"created_at"`
}

type Match struct {
	ID          uuid.UUID  `json:"id"`
	EventID     *uuid.UUID `json:"event_id"`
	Team1ID     uuid.UUID  `json:"team1_id"`
	Team2ID     uuid.UUID  `json:"team2_id"`
	Team1Score  int        `json:"team1_score"`
	Team2Score  int        `json:"team2_score"`
	BestOf      int        `json:"best_of"`
	Status      string     `json:"status"` // "scheduled" | "live" | "completed"
	ScheduledAt *time.Time `json:"scheduled_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ScoreUpdate is published on the live:scores channel and pushed to
// websocket subscribers of the match.
type ScoreUpdate struct {
	MatchID    uuid.UUID `json:"match_id"`
	Team1Score int       `json:"team1_score"`
	Team2Score int       `json:"team2_score"`
	Status     string    `json:"status"`
	MapName    string    `json:"map_name,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UpdateScoreRequest struct {
	Team1Score *int   `json:"team1_score" validate:"required,min=0"`
	Team2Score *int   `json:"team2_score" validate:"required,min=0"`
	Status     string `json:"status" validate:"omitempty,oneof=scheduled live completed"`
	MapName    string `json:"map_name"`
}
