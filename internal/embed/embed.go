// Package embed recognizes third-party content URLs (YouTube, Twitch,
// Twitter/X, VLR.gg) in free-form text and converts them into embeddable
// references: iframe URLs for video platforms, card descriptors for the rest.
package embed

// Kind identifies what a recognized URL points at.
type Kind string

const (
	KindYouTube      Kind = "youtube"
	KindTwitchClip   Kind = "twitch-clip"
	KindTwitchVideo  Kind = "twitch-video"
	KindTwitchStream Kind = "twitch-stream"
	KindTwitter      Kind = "twitter"
	KindVLRGG        Kind = "vlrgg"
)

// ContentType distinguishes VLR.gg page variants.
type ContentType string

const (
	ContentMatch  ContentType = "match"
	ContentTeam   ContentType = "team"
	ContentEvent  ContentType = "event"
	ContentPlayer ContentType = "player"
)

// VideoReference is a fully classified content URL. Detect either returns a
// complete reference or nil, never a partial one.
type VideoReference struct {
	Type        Kind   `json:"type"`
	ID          string `json:"id"`
	OriginalURL string `json:"original_url"`
	Platform    string `json:"platform"`

	// VLR.gg only.
	ContentType ContentType `json:"content_type,omitempty"`
	Slug        string      `json:"slug,omitempty"`
	DisplayURL  string      `json:"display_url,omitempty"`

	// Auxiliary metadata, not part of the reference identity.
	IsYouTubeShorts bool `json:"is_youtube_shorts,omitempty"`
	IsMobileURL     bool `json:"is_mobile_url,omitempty"`
	IsLiveStream    bool `json:"is_live_stream,omitempty"`
	IsClip          bool `json:"is_clip,omitempty"`
	IsVod           bool `json:"is_vod,omitempty"`
}

// Detection is a scanner result enriched for immediate preview rendering.
type Detection struct {
	VideoReference
	Index        int    `json:"index"`
	IsValid      bool   `json:"is_valid"`
	Error        string `json:"error,omitempty"`
	EmbedURL     string `json:"embed_url,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	PlatformName string `json:"platform_name"`

	// VLR.gg references need an API round-trip before they can render.
	IsEsportsContent bool `json:"is_esports_content,omitempty"`
	RequiresAPI      bool `json:"requires_api,omitempty"`
}
