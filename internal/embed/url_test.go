package embed

import (
	"net/url"
	"strings"
	"testing"
)

func queryOf(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", raw, err)
	}
	return u.Query()
}

func TestURL_YouTube(t *testing.T) {
	raw := URL(KindYouTube, "dQw4w9WgXcQ", Options{})
	if !strings.HasPrefix(raw, "https://www.youtube.com/embed/dQw4w9WgXcQ?") {
		t.Fatalf("Unexpected base url %q", raw)
	}

	q := queryOf(t, raw)
	for key, want := range map[string]string{
		"rel": "0", "modestbranding": "1", "controls": "1", "showinfo": "0", "fs": "1",
	} {
		if q.Get(key) != want {
			t.Errorf("Expected %s=%s, got %q", key, want, q.Get(key))
		}
	}
	if q.Has("playsinline") || q.Has("autoplay") || q.Has("start") {
		t.Error("Expected no device or playback params by default")
	}
}

func TestURL_YouTubeMobileAutoplay(t *testing.T) {
	raw := URL(KindYouTube, "dQw4w9WgXcQ", Options{IsMobile: true, Autoplay: true})
	q := queryOf(t, raw)

	if q.Get("playsinline") != "1" {
		t.Error("Expected playsinline=1 on mobile")
	}
	if q.Get("autoplay") != "1" {
		t.Error("Expected autoplay=1")
	}
	if q.Get("mute") != "1" {
		t.Error("Expected mute=1 when autoplaying on mobile by default")
	}

	// Explicit muted=false overrides the mobile default.
	unmuted := false
	raw = URL(KindYouTube, "dQw4w9WgXcQ", Options{IsMobile: true, Autoplay: true, Muted: &unmuted})
	if queryOf(t, raw).Get("mute") != "0" {
		t.Error("Expected mute=0 when muted is explicitly false")
	}
}

func TestURL_YouTubeStartTime(t *testing.T) {
	raw := URL(KindYouTube, "dQw4w9WgXcQ", Options{StartTime: 90})
	if queryOf(t, raw).Get("start") != "90" {
		t.Errorf("Expected start=90 in %q", raw)
	}
}

func TestURL_TwitchClip(t *testing.T) {
	raw := URL(KindTwitchClip, "AbCdEfGh123", Options{Domain: "mrvl.net"})
	if !strings.HasPrefix(raw, "https://clips.twitch.tv/embed?") {
		t.Fatalf("Unexpected base url %q", raw)
	}

	q := queryOf(t, raw)
	if q.Get("clip") != "AbCdEfGh123" {
		t.Errorf("Expected clip id, got %q", q.Get("clip"))
	}
	if q.Get("parent") != "mrvl.net" {
		t.Errorf("Expected parent=mrvl.net, got %q", q.Get("parent"))
	}
	if q.Get("autoplay") != "false" || q.Get("muted") != "false" {
		t.Error("Expected autoplay=false and muted=false on desktop defaults")
	}
	if q.Has("allowfullscreen") {
		t.Error("Expected no allowfullscreen on desktop")
	}

	tablet := URL(KindTwitchClip, "AbCdEfGh123", Options{Domain: "mrvl.net", IsTablet: true})
	if queryOf(t, tablet).Get("allowfullscreen") != "true" {
		t.Error("Expected allowfullscreen=true on tablet")
	}
}

func TestURL_TwitchVideo(t *testing.T) {
	raw := URL(KindTwitchVideo, "987654321", Options{Domain: "localhost", StartTime: 90})
	if !strings.HasPrefix(raw, "https://player.twitch.tv/?") {
		t.Fatalf("Unexpected base url %q", raw)
	}

	q := queryOf(t, raw)
	if q.Get("video") != "987654321" {
		t.Errorf("Expected video id, got %q", q.Get("video"))
	}
	if q.Get("parent") != "localhost" {
		t.Errorf("Expected parent=localhost, got %q", q.Get("parent"))
	}
	if q.Get("time") != "90s" {
		t.Errorf("Expected time=90s, got %q", q.Get("time"))
	}
}

func TestURL_TwitchStream(t *testing.T) {
	raw := URL(KindTwitchStream, "shroud", Options{Domain: "mrvl.net"})
	q := queryOf(t, raw)
	if q.Get("channel") != "shroud" {
		t.Errorf("Expected channel=shroud, got %q", q.Get("channel"))
	}
	if q.Has("video") {
		t.Error("Expected no video param for a stream embed")
	}
}

func TestURL_ParentNormalization(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"empty defaults to localhost", "", "localhost"},
		{"loopback ip", "127.0.0.1:3000", "localhost"},
		{"localhost with port", "localhost:5173", "localhost"},
		{"real domain untouched", "mrvl.net", "mrvl.net"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := URL(KindTwitchStream, "shroud", Options{Domain: tc.domain})
			if got := queryOf(t, raw).Get("parent"); got != tc.want {
				t.Errorf("Expected parent=%q, got %q", tc.want, got)
			}
		})
	}
}

func TestURL_Twitter(t *testing.T) {
	raw := URL(KindTwitter, "1234567890", Options{})
	if raw != "https://twitter.com/x/status/1234567890" {
		t.Errorf("Expected canonical status url, got %q", raw)
	}
}

func TestURL_VLRAlwaysEmpty(t *testing.T) {
	for _, id := range []string{"12345", "1", "999999"} {
		if got := URL(KindVLRGG, id, Options{}); got != "" {
			t.Errorf("Expected empty embed url for vlrgg id %s, got %q", id, got)
		}
	}
}

func TestThumbnail(t *testing.T) {
	if got := Thumbnail(KindYouTube, "dQw4w9WgXcQ"); got != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("Unexpected youtube thumbnail %q", got)
	}
	for _, kind := range []Kind{KindTwitchClip, KindTwitchVideo, KindTwitchStream, KindTwitter, KindVLRGG} {
		if got := Thumbnail(kind, "x"); got != "" {
			t.Errorf("Expected empty thumbnail for %s, got %q", kind, got)
		}
	}
}

func TestPlatformName(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindYouTube, "YouTube"},
		{KindTwitchClip, "Twitch Clip"},
		{KindTwitchVideo, "Twitch VOD"},
		{KindTwitchStream, "Twitch Stream"},
		{KindTwitter, "X (Twitter)"},
		{KindVLRGG, "VLR.gg"},
		{Kind("unknown"), "Content"},
	}

	for _, tc := range tests {
		if got := PlatformName(tc.kind); got != tc.want {
			t.Errorf("PlatformName(%s): expected %q, got %q", tc.kind, tc.want, got)
		}
	}
}
