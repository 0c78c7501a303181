package embed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\[VIDEO_EMBED_(\d+)\]`)

// ProcessContent replaces each detected content URL in the article body with
// a positional [VIDEO_EMBED_{n}] token and returns the detected references
// in placeholder order. Stored content stays human-editable while the video
// metadata travels alongside it as structured data.
//
// Each reference consumes the first remaining occurrence of its URL, so a
// URL pasted twice produces two placeholders.
func ProcessContent(content string) (string, []*VideoReference) {
	if content == "" {
		return "", nil
	}

	videos := Extract(content)
	processed := content
	for i, v := range videos {
		placeholder := fmt.Sprintf("[VIDEO_EMBED_%d]", i)
		processed = strings.Replace(processed, v.OriginalURL, placeholder, 1)
	}
	return processed, videos
}

// RestoreContent substitutes placeholders back to their original URLs by
// parsed index, so restoration does not depend on the order of the videos
// slice. Placeholders without a matching entry are left untouched.
func RestoreContent(processed string, videos []*VideoReference) string {
	if processed == "" || len(videos) == 0 {
		return processed
	}

	return placeholderPattern.ReplaceAllStringFunc(processed, func(token string) string {
		m := placeholderPattern.FindStringSubmatch(token)
		n, err := strconv.Atoi(m[1])
		if err != nil || n >= len(videos) {
			return token
		}
		return videos[n].OriginalURL
	})
}
