package embed

import "testing"

func TestDetect_YouTube(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url extra params", "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url with query", "https://youtu.be/dQw4w9WgXcQ?t=30", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"v url", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mobile watch", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"no scheme", "www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"fragment", "https://www.youtube.com/watch?v=dQw4w9WgXcQ#comments", "dQw4w9WgXcQ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref := Detect(tc.url)
			if ref == nil {
				t.Fatalf("Expected detection for %q, got nil", tc.url)
			}
			if ref.Type != KindYouTube {
				t.Errorf("Expected type youtube, got %q", ref.Type)
			}
			if ref.ID != tc.id {
				t.Errorf("Expected id %q, got %q", tc.id, ref.ID)
			}
			if ref.Platform != "youtube" {
				t.Errorf("Expected platform youtube, got %q", ref.Platform)
			}
			if ref.OriginalURL != tc.url {
				t.Errorf("Expected original url %q, got %q", tc.url, ref.OriginalURL)
			}
		})
	}
}

func TestDetect_YouTubeFlags(t *testing.T) {
	shorts := Detect("https://www.youtube.com/shorts/dQw4w9WgXcQ")
	if shorts == nil || !shorts.IsYouTubeShorts {
		t.Error("Expected shorts flag for /shorts/ url")
	}

	mobile := Detect("https://m.youtube.com/watch?v=dQw4w9WgXcQ")
	if mobile == nil || !mobile.IsMobileURL {
		t.Error("Expected mobile flag for m.youtube.com url")
	}

	plain := Detect("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if plain == nil || plain.IsYouTubeShorts || plain.IsMobileURL {
		t.Error("Expected no aux flags on a plain watch url")
	}
}

func TestDetect_Twitch(t *testing.T) {
	tests := []struct {
		name string
		url  string
		kind Kind
		id   string
	}{
		{"clip", "https://clips.twitch.tv/AbCdEfGh123", KindTwitchClip, "AbCdEfGh123"},
		{"channel clip", "https://www.twitch.tv/shroud/clip/FunnyClipSlug-abc123", KindTwitchClip, "FunnyClipSlug-abc123"},
		{"vod", "https://www.twitch.tv/videos/987654321", KindTwitchVideo, "987654321"},
		{"mobile vod", "https://m.twitch.tv/videos/987654321", KindTwitchVideo, "987654321"},
		{"stream", "https://www.twitch.tv/shroud", KindTwitchStream, "shroud"},
		{"stream with query", "https://www.twitch.tv/shroud?referrer=raid", KindTwitchStream, "shroud"},
		{"mobile stream", "https://m.twitch.tv/pokimane", KindTwitchStream, "pokimane"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref := Detect(tc.url)
			if ref == nil {
				t.Fatalf("Expected detection for %q, got nil", tc.url)
			}
			if ref.Type != tc.kind {
				t.Errorf("Expected type %q, got %q", tc.kind, ref.Type)
			}
			if ref.ID != tc.id {
				t.Errorf("Expected id %q, got %q", tc.id, ref.ID)
			}
			if ref.Platform != "twitch" {
				t.Errorf("Expected platform twitch, got %q", ref.Platform)
			}
		})
	}
}

func TestDetect_TwitchFlags(t *testing.T) {
	if ref := Detect("https://clips.twitch.tv/AbCdEfGh123"); ref == nil || !ref.IsClip {
		t.Error("Expected clip flag")
	}
	if ref := Detect("https://www.twitch.tv/videos/987654321"); ref == nil || !ref.IsVod {
		t.Error("Expected vod flag")
	}
	if ref := Detect("https://www.twitch.tv/shroud"); ref == nil || !ref.IsLiveStream {
		t.Error("Expected live stream flag")
	}
}

func TestDetect_Twitter(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   string
	}{
		{"twitter.com", "https://twitter.com/PlayVALORANT/status/1234567890123456789", "1234567890123456789"},
		{"x.com", "https://x.com/PlayVALORANT/status/1234567890123456789", "1234567890123456789"},
		{"mobile", "https://mobile.twitter.com/PlayVALORANT/status/1234567890123456789", "1234567890123456789"},
		{"i status", "https://twitter.com/i/status/1234567890123456789", "1234567890123456789"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref := Detect(tc.url)
			if ref == nil {
				t.Fatalf("Expected detection for %q, got nil", tc.url)
			}
			if ref.Type != KindTwitter {
				t.Errorf("Expected type twitter, got %q", ref.Type)
			}
			if ref.ID != tc.id {
				t.Errorf("Expected id %q, got %q", tc.id, ref.ID)
			}
		})
	}
}

func TestDetect_VLR(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		contentType ContentType
		id          string
		slug        string
		displayURL  string
	}{
		{"match", "https://vlr.gg/12345/team-a-vs-team-b", ContentMatch, "12345", "team-a-vs-team-b", "https://www.vlr.gg/12345/team-a-vs-team-b"},
		{"team", "https://www.vlr.gg/team/1001/sentinels", ContentTeam, "1001", "sentinels", "https://www.vlr.gg/team/1001/sentinels"},
		{"event", "https://www.vlr.gg/event/2097/champions-2024", ContentEvent, "2097", "champions-2024", "https://www.vlr.gg/event/2097/champions-2024"},
		{"player", "https://www.vlr.gg/player/456/tenz", ContentPlayer, "456", "tenz", "https://www.vlr.gg/player/456/tenz"},
		{"match deep path", "https://www.vlr.gg/12345/team-a-vs-team-b/overview", ContentMatch, "12345", "team-a-vs-team-b", "https://www.vlr.gg/12345/team-a-vs-team-b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref := Detect(tc.url)
			if ref == nil {
				t.Fatalf("Expected detection for %q, got nil", tc.url)
			}
			if ref.Type != KindVLRGG {
				t.Errorf("Expected type vlrgg, got %q", ref.Type)
			}
			if ref.ContentType != tc.contentType {
				t.Errorf("Expected content type %q, got %q", tc.contentType, ref.ContentType)
			}
			if ref.ID != tc.id {
				t.Errorf("Expected id %q, got %q", tc.id, ref.ID)
			}
			if ref.Slug != tc.slug {
				t.Errorf("Expected slug %q, got %q", tc.slug, ref.Slug)
			}
			if ref.DisplayURL != tc.displayURL {
				t.Errorf("Expected display url %q, got %q", tc.displayURL, ref.DisplayURL)
			}
		})
	}
}

func TestDetect_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"malformed", "htt:/notaurl"},
		{"plain domain", "https://example.com/some/page"},
		{"youtube homepage", "https://www.youtube.com/"},
		{"short video id", "https://youtu.be/short"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if ref := Detect(tc.url); ref != nil {
				t.Errorf("Expected nil for %q, got %+v", tc.url, ref)
			}
		})
	}
}

func TestDetect_NeverPartial(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://clips.twitch.tv/AbCdEfGh123",
		"https://www.twitch.tv/videos/987654321",
		"https://www.twitch.tv/shroud",
		"https://x.com/user/status/123456",
		"https://www.vlr.gg/12345/team-a-vs-team-b",
	}

	for _, u := range urls {
		ref := Detect(u)
		if ref == nil {
			t.Fatalf("Expected detection for %q", u)
		}
		if ref.ID == "" || ref.Type == "" || ref.Platform == "" || ref.OriginalURL == "" {
			t.Errorf("Partial reference for %q: %+v", u, ref)
		}
	}
}

func TestValidate(t *testing.T) {
	if ok, _ := Validate("https://www.youtube.com/watch?v=dQw4w9WgXcQ"); !ok {
		t.Error("Expected valid for a youtube watch url")
	}
	if ok, msg := Validate("https://example.com/page"); ok || msg == "" {
		t.Error("Expected invalid with a reason for an unsupported url")
	}
	if ok, msg := Validate(""); ok || msg != "URL is required" {
		t.Errorf("Expected 'URL is required', got %q", msg)
	}
}
