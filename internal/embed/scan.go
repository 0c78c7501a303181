package embed

import "regexp"

var (
	// Anything URL-shaped: scheme followed by a run of characters that never
	// appear unescaped inside a URL pasted into prose.
	urlPattern = regexp.MustCompile("https?://[^\\s<>\"\\[\\]{}|\\\\^`]+")

	// URLs at the end of a sentence drag punctuation along with them.
	trailingPunct = regexp.MustCompile(`[.,;:!?]+$`)
)

func candidates(text string) []string {
	raw := urlPattern.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		out = append(out, trailingPunct.ReplaceAllString(u, ""))
	}
	return out
}

// Extract returns every recognized content URL in text, in appearance order.
// Duplicate URLs yield duplicate entries: each occurrence gets its own
// placeholder during content processing. Candidates that do not classify are
// dropped silently, they are simply not platform content.
func Extract(text string) []*VideoReference {
	if text == "" {
		return nil
	}

	var refs []*VideoReference
	for _, url := range candidates(text) {
		if ref := Detect(url); ref != nil {
			refs = append(refs, ref)
		}
	}
	return refs
}

// DetectAll composes Extract with the embed resolver so preview UIs get
// everything in one pass: embed URL, thumbnail, platform name and validity
// per detected item.
func DetectAll(text string) []Detection {
	if text == "" {
		return nil
	}

	var out []Detection
	for _, url := range candidates(text) {
		ref := Detect(url)
		if ref == nil {
			continue
		}

		valid, errMsg := Validate(url)
		d := Detection{
			VideoReference: *ref,
			Index:          len(out),
			IsValid:        valid,
			Error:          errMsg,
			EmbedURL:       URL(ref.Type, ref.ID, Options{}),
			Thumbnail:      Thumbnail(ref.Type, ref.ID),
			PlatformName:   PlatformName(ref.Type),
		}
		if ref.Type == KindVLRGG {
			d.IsEsportsContent = true
			d.RequiresAPI = true
		}
		out = append(out, d)
	}
	return out
}

// HasVideoURLs reports whether text contains at least one recognized
// content URL.
func HasVideoURLs(text string) bool {
	return len(Extract(text)) > 0
}
