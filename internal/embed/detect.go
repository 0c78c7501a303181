package embed

import (
	"fmt"
	"strings"
)

// Detect classifies a single URL. It returns nil when the URL does not
// belong to a supported platform; it never returns a partial reference.
func Detect(rawURL string) *VideoReference {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return nil
	}

	if ref := detectVLR(url); ref != nil {
		return ref
	}

	for _, group := range platformGroups {
		for _, pattern := range group.patterns {
			m := pattern.FindStringSubmatch(url)
			if m == nil {
				continue
			}

			id := m[1]
			if group.secondGroupID && len(m) > 2 && m[2] != "" {
				id = m[2]
			}

			ref := &VideoReference{
				Type:        group.kind,
				ID:          id,
				OriginalURL: url,
				Platform:    group.platform,
			}
			switch group.kind {
			case KindYouTube:
				ref.IsYouTubeShorts = strings.Contains(url, "/shorts/")
				ref.IsMobileURL = strings.Contains(url, "m.youtube.com")
			case KindTwitchClip:
				ref.IsClip = true
			case KindTwitchVideo:
				ref.IsVod = true
			case KindTwitchStream:
				ref.IsLiveStream = true
			}
			return ref
		}
	}

	return nil
}

func detectVLR(url string) *VideoReference {
	for _, vp := range vlrPatterns {
		m := vp.pattern.FindStringSubmatch(url)
		if m == nil {
			continue
		}
		return &VideoReference{
			Type:        KindVLRGG,
			ID:          m[1],
			OriginalURL: url,
			Platform:    "vlrgg",
			ContentType: vp.contentType,
			Slug:        m[2],
			DisplayURL:  fmt.Sprintf("https://www.vlr.gg/%s%s/%s", vp.pathPrefix, m[1], m[2]),
		}
	}
	return nil
}

// Validate reports whether a URL belongs to a supported platform, with a
// human-readable reason when it does not.
func Validate(url string) (valid bool, errMsg string) {
	if strings.TrimSpace(url) == "" {
		return false, "URL is required"
	}
	if Detect(url) == nil {
		return false, "Unsupported content platform. Supported: YouTube, Twitch (clips & videos), Twitter/X, VLR.gg (matches, teams, events, players)"
	}
	return true, ""
}
