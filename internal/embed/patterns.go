package embed

import "regexp"

// Each platform is a group of sub-patterns tried in order; the first match
// across the ordered group table wins. IDs use bounded character classes so
// none of these can backtrack pathologically.
type platformGroup struct {
	kind     Kind
	platform string
	patterns []*regexp.Regexp

	// secondGroupID marks patterns whose content ID sits in the second
	// capture group (channel-scoped Twitch clips capture channel first).
	secondGroupID bool
}

var platformGroups = []platformGroup{
	{
		kind:     KindYouTube,
		platform: "youtube",
		patterns: []*regexp.Regexp{
			// Standard watch URLs, v= anywhere in the query string.
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?(?:[^&\s]*&)*v=([a-zA-Z0-9_-]{11})`),
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]{11})`),
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/v/([a-zA-Z0-9_-]{11})`),
			regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
			regexp.MustCompile(`(?:https?://)?m\.youtube\.com/watch\?(?:[^&\s]*&)*v=([a-zA-Z0-9_-]{11})`),
		},
	},
	{
		kind:          KindTwitchClip,
		platform:      "twitch",
		secondGroupID: true,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:https?://)?clips\.twitch\.tv/([a-zA-Z0-9_-]+)`),
			// Channel-scoped clips: channel in group 1, clip slug in group 2.
			regexp.MustCompile(`(?:https?://)?(?:www\.)?twitch\.tv/([^/\s]+)/clip/([a-zA-Z0-9_-]+)`),
			// Older clip form. Overlaps with the channel-scoped pattern and is
			// kept as a fallback until Twitch's canonical clip URLs settle.
			regexp.MustCompile(`(?:https?://)?(?:www\.)?twitch\.tv/\w+/clip/([a-zA-Z0-9_-]+)`),
		},
	},
	{
		kind:     KindTwitchVideo,
		platform: "twitch",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:https?://)?(?:www\.)?twitch\.tv/videos/(\d+)`),
			regexp.MustCompile(`(?:https?://)?m\.twitch\.tv/videos/(\d+)`),
		},
	},
	{
		kind:     KindTwitchStream,
		platform: "twitch",
		patterns: []*regexp.Regexp{
			// End-anchored so longer paths (videos, clips) never classify as
			// a bare channel.
			regexp.MustCompile(`(?:https?://)?(?:www\.)?twitch\.tv/([a-zA-Z0-9_]{4,25})(?:\?[^\s#]*)?(?:#\S*)?$`),
			regexp.MustCompile(`(?:https?://)?m\.twitch\.tv/([a-zA-Z0-9_]{4,25})(?:\?[^\s#]*)?(?:#\S*)?$`),
		},
	},
	{
		kind:     KindTwitter,
		platform: "twitter",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:https?://)?(?:www\.)?twitter\.com/[^/\s]+/status/(\d+)`),
			regexp.MustCompile(`(?:https?://)?(?:www\.)?x\.com/[^/\s]+/status/(\d+)`),
			regexp.MustCompile(`(?:https?://)?mobile\.twitter\.com/[^/\s]+/status/(\d+)`),
			regexp.MustCompile(`(?:https?://)?(?:www\.)?twitter\.com/i/status/(\d+)`),
		},
	},
}

// VLR.gg URLs are unambiguous by domain and carry a content type plus slug,
// so they get their own table checked before the generic groups.
type vlrPattern struct {
	contentType ContentType
	pattern     *regexp.Regexp
	pathPrefix  string
}

var vlrPatterns = []vlrPattern{
	{ContentMatch, regexp.MustCompile(`(?:https?://)?(?:www\.)?vlr\.gg/(\d+)/([^/\s?#]+)`), ""},
	{ContentTeam, regexp.MustCompile(`(?:https?://)?(?:www\.)?vlr\.gg/team/(\d+)/([^/\s?#]+)`), "team/"},
	{ContentEvent, regexp.MustCompile(`(?:https?://)?(?:www\.)?vlr\.gg/event/(\d+)/([^/\s?#]+)`), "event/"},
	{ContentPlayer, regexp.MustCompile(`(?:https?://)?(?:www\.)?vlr\.gg/player/(\d+)/([^/\s?#]+)`), "player/"},
}
