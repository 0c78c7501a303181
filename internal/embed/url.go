package embed

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Options tune embed URL generation per device and playback context.
type Options struct {
	// Domain is passed to Twitch as the parent parameter. Empty means
	// localhost.
	Domain    string
	IsMobile  bool
	IsTablet  bool
	Autoplay  bool
	StartTime int // seconds

	// Muted defaults to true on mobile, where autoplay with sound is
	// blocked. Set explicitly to override.
	Muted *bool
}

func (o Options) muted() bool {
	if o.Muted != nil {
		return *o.Muted
	}
	return o.IsMobile
}

// Twitch validates the parent domain against its whitelist, and the raw
// loopback forms fail that check during development.
func normalizeParent(domain string) string {
	if domain == "" || strings.Contains(domain, "localhost") || strings.Contains(domain, "127.0.0.1") {
		return "localhost"
	}
	return domain
}

// URL builds a direct iframe src for the given content reference. It returns
// "" for platforms without iframe embeds: VLR.gg renders as a custom card
// and Twitter as a client-side widget (its canonical status URL is returned
// instead of an iframe src).
func URL(kind Kind, id string, opts Options) string {
	domain := normalizeParent(opts.Domain)

	switch kind {
	case KindYouTube:
		params := url.Values{}
		params.Set("rel", "0")
		params.Set("modestbranding", "1")
		params.Set("controls", "1")
		params.Set("showinfo", "0")
		params.Set("fs", "1")
		if opts.IsMobile {
			params.Set("playsinline", "1")
		}
		if opts.Autoplay {
			params.Set("autoplay", "1")
			params.Set("mute", boolDigit(opts.muted()))
		}
		if opts.StartTime > 0 {
			params.Set("start", strconv.Itoa(opts.StartTime))
		}
		return fmt.Sprintf("https://www.youtube.com/embed/%s?%s", id, params.Encode())

	case KindTwitchClip:
		params := url.Values{}
		params.Set("clip", id)
		params.Set("parent", domain)
		params.Set("autoplay", strconv.FormatBool(opts.Autoplay))
		params.Set("muted", strconv.FormatBool(opts.muted()))
		if opts.IsTablet || opts.IsMobile {
			params.Set("allowfullscreen", "true")
		}
		return "https://clips.twitch.tv/embed?" + params.Encode()

	case KindTwitchVideo:
		params := url.Values{}
		params.Set("video", id)
		params.Set("parent", domain)
		params.Set("autoplay", strconv.FormatBool(opts.Autoplay))
		params.Set("muted", strconv.FormatBool(opts.muted()))
		if opts.StartTime > 0 {
			params.Set("time", fmt.Sprintf("%ds", opts.StartTime))
		}
		if opts.IsTablet || opts.IsMobile {
			params.Set("allowfullscreen", "true")
		}
		return "https://player.twitch.tv/?" + params.Encode()

	case KindTwitchStream:
		params := url.Values{}
		params.Set("channel", id)
		params.Set("parent", domain)
		params.Set("autoplay", strconv.FormatBool(opts.Autoplay))
		params.Set("muted", strconv.FormatBool(opts.muted()))
		if opts.IsTablet || opts.IsMobile {
			params.Set("allowfullscreen", "true")
		}
		return "https://player.twitch.tv/?" + params.Encode()

	case KindTwitter:
		return "https://twitter.com/x/status/" + id

	default:
		// VLR.gg and anything unrecognized: no iframe embed.
		return ""
	}
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Thumbnail returns a direct thumbnail URL when the platform exposes one
// without an API call. Twitch and Twitter require authenticated API access
// for thumbnails, those are resolved by the enrichment worker instead.
func Thumbnail(kind Kind, id string) string {
	if kind == KindYouTube {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
	}
	return ""
}

// PlatformName returns the human-readable platform label.
func PlatformName(kind Kind) string {
	switch kind {
	case KindYouTube:
		return "YouTube"
	case KindTwitchClip:
		return "Twitch Clip"
	case KindTwitchVideo:
		return "Twitch VOD"
	case KindTwitchStream:
		return "Twitch Stream"
	case KindTwitter:
		return "X (Twitter)"
	case KindVLRGG:
		return "VLR.gg"
	default:
		return "Content"
	}
}
