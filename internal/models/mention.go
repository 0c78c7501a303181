package models

// Mention is one autocomplete suggestion. MentionText is the canonical token
// the client splices into the text on selection.
type Mention struct {
	Type        string `json:"type"` // "user" | "team" | "player"
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Subtitle    string `json:"subtitle,omitempty"`
	AvatarURL   string `json:"avatar,omitempty"`
	MentionText string `json:"mention_text"`
}
