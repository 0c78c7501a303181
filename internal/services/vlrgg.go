package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mrvl-backend/internal/cache"
	"mrvl-backend/internal/embed"
	"mrvl-backend/internal/logger"
)

const (
	vlrRequestTimeout = 10 * time.Second
	vlrUserAgent      = "MRVL-News-Integration"
)

// VLRService talks to the unofficial VLR.gg API to enrich vlrgg references
// with match/team data for card embeds. Responses are cached in the injected
// cache, keyed by request URL.
type VLRService struct {
	httpClient *http.Client
	cache      *cache.Cache
	baseURL    string
}

func NewVLRService(baseURL string, c *cache.Cache) *VLRService {
	return &VLRService{
		httpClient: &http.Client{Timeout: vlrRequestTimeout},
		cache:      c,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type VLRTeamRef struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type VLRMatch struct {
	Status string     `json:"status"`
	Score  string     `json:"score"`
	Date   string     `json:"date"`
	Event  struct{ Name string `json:"name"` } `json:"event"`
	Teams  []VLRTeamRef `json:"teams"`
}

type VLRTeam struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Logo        string `json:"logo"`
	Rank        int    `json:"rank"`
	WinRate     string `json:"winRate"`
	Description string `json:"description"`
}

// get fetches and caches one API response body.
func (s *VLRService) get(ctx context.Context, requestURL string) (json.RawMessage, error) {
	if cached, ok := s.cache.Get(requestURL); ok {
		return cached.(json.RawMessage), nil
	}

	ctx, cancel := context.WithTimeout(ctx, vlrRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build VLR.gg request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", vlrUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch VLR.gg data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("VLR.gg API error: %d %s", resp.StatusCode, resp.Status)
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode VLR.gg response: %w", err)
	}

	s.cache.Set(requestURL, body)
	return body, nil
}

// unwrapList tolerates both bare arrays and {data: [...]} envelopes.
func unwrapList(body json.RawMessage) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}

func (s *VLRService) News(ctx context.Context) (json.RawMessage, error) {
	body, err := s.get(ctx, s.baseURL+"/news")
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}

func (s *VLRService) Match(ctx context.Context, matchID string) (*VLRMatch, error) {
	if matchID == "" {
		return nil, &NotFoundError{Message: "Match ID is required"}
	}

	body, err := s.get(ctx, s.baseURL+"/match/"+url.PathEscape(matchID))
	if err != nil {
		return nil, err
	}

	var match VLRMatch
	if err := json.Unmarshal(unwrapList(body), &match); err != nil {
		return nil, fmt.Errorf("failed to decode match %s: %w", matchID, err)
	}
	return &match, nil
}

func (s *VLRService) Matches(ctx context.Context, region string, limit int) (json.RawMessage, error) {
	body, err := s.get(ctx, s.listURL("/matches", region, limit))
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}

func (s *VLRService) Team(ctx context.Context, teamID string) (*VLRTeam, error) {
	if teamID == "" {
		return nil, &NotFoundError{Message: "Team ID is required"}
	}

	body, err := s.get(ctx, s.baseURL+"/team/"+url.PathEscape(teamID))
	if err != nil {
		return nil, err
	}

	var team VLRTeam
	if err := json.Unmarshal(unwrapList(body), &team); err != nil {
		return nil, fmt.Errorf("failed to decode team %s: %w", teamID, err)
	}
	return &team, nil
}

func (s *VLRService) SearchTeams(ctx context.Context, query string) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" || len(strings.TrimSpace(query)) < 2 {
		return json.RawMessage("[]"), nil
	}

	body, err := s.get(ctx, s.baseURL+"/teams?search="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}

func (s *VLRService) Events(ctx context.Context, region string, limit int) (json.RawMessage, error) {
	body, err := s.get(ctx, s.listURL("/events", region, limit))
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}

func (s *VLRService) listURL(path, region string, limit int) string {
	params := url.Values{}
	if region != "" {
		params.Set("region", region)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if len(params) == 0 {
		return s.baseURL + path
	}
	return s.baseURL + path + "?" + params.Encode()
}

// Health probes the API with a short deadline so status pages never hang on
// a slow upstream.
func (s *VLRService) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.baseURL+"/status", nil)
	if err != nil {
		return false
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// EmbedCard is the application-rendered summary for content without iframe
// embeds (VLR.gg matches, teams, events, players).
type EmbedCard struct {
	Type        string            `json:"type"`
	Platform    string            `json:"platform"`
	OriginalURL string            `json:"original_url"`
	DisplayURL  string            `json:"display_url"`
	ContentType embed.ContentType `json:"content_type"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	Thumbnail   string            `json:"thumbnail,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Enriched    bool              `json:"enriched"`
}

// EnrichURL classifies a VLR.gg URL and builds its card, fetching match or
// team data when the API has it. Fetch failures degrade to an unenriched
// card rather than an error: the link still renders, just without live data.
func (s *VLRService) EnrichURL(ctx context.Context, rawURL string) (*EmbedCard, error) {
	ref := embed.Detect(rawURL)
	if ref == nil || ref.Type != embed.KindVLRGG {
		return nil, &ValidationError{Fields: map[string]string{
			"url": "Invalid VLR.gg URL. Supported: matches, teams, events, players",
		}}
	}

	card := &EmbedCard{
		Type:        "vlr-embed",
		Platform:    "VLR.gg",
		OriginalURL: ref.OriginalURL,
		DisplayURL:  ref.DisplayURL,
		ContentType: ref.ContentType,
	}

	switch ref.ContentType {
	case embed.ContentMatch:
		match, err := s.Match(ctx, ref.ID)
		if err != nil {
			logger.L.WithError(err).WithField("match_id", ref.ID).Warn("VLR match enrichment failed")
			card.Title = titleizeSlug(ref.Slug, "Match")
			card.Subtitle = "Match Details"
			card.Description = "View match details and stats on VLR.gg"
			return card, nil
		}
		names := make([]string, 0, len(match.Teams))
		for _, t := range match.Teams {
			names = append(names, t.Name)
		}
		card.Title = strings.Join(names, " vs ")
		if card.Title == "" {
			card.Title = titleizeSlug(ref.Slug, "Match")
		}
		card.Subtitle = match.Event.Name
		if card.Subtitle == "" {
			card.Subtitle = "Match Details"
		}
		card.Description = match.Status
		if card.Description == "" {
			card.Description = "View match details and stats on VLR.gg"
		}
		if len(match.Teams) > 0 {
			card.Thumbnail = match.Teams[0].Logo
		}
		card.Metadata = map[string]string{
			"status": match.Status,
			"score":  match.Score,
			"date":   match.Date,
			"event":  match.Event.Name,
		}
		card.Enriched = true

	case embed.ContentTeam:
		team, err := s.Team(ctx, ref.ID)
		if err != nil {
			logger.L.WithError(err).WithField("team_id", ref.ID).Warn("VLR team enrichment failed")
			card.Title = titleizeSlug(ref.Slug, "Team")
			card.Subtitle = "Team Profile"
			card.Description = "View team roster, matches, and stats on VLR.gg"
			return card, nil
		}
		card.Title = team.Name
		if card.Title == "" {
			card.Title = titleizeSlug(ref.Slug, "Team")
		}
		card.Subtitle = team.Region
		if card.Subtitle == "" {
			card.Subtitle = "Team Profile"
		}
		card.Description = team.Description
		if card.Description == "" {
			card.Description = "View team roster, matches, and stats on VLR.gg"
		}
		card.Thumbnail = team.Logo
		card.Metadata = map[string]string{
			"region":   team.Region,
			"rank":     strconv.Itoa(team.Rank),
			"win_rate": team.WinRate,
		}
		card.Enriched = true

	case embed.ContentEvent:
		card.Title = titleizeSlug(ref.Slug, "Tournament")
		card.Subtitle = "Tournament Details"
		card.Description = "View tournament bracket, matches, and results on VLR.gg"

	case embed.ContentPlayer:
		card.Title = titleizeSlug(ref.Slug, "Player")
		card.Subtitle = "Player Profile"
		card.Description = "View player stats, match history, and achievements on VLR.gg"
	}

	return card, nil
}

// titleizeSlug turns "champions-2024" into "Champions 2024".
func titleizeSlug(slug, fallback string) string {
	if slug == "" {
		return fallback
	}
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
