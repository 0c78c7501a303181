// Package mentions handles @-style inline references to users, teams and
// players: trigger detection while typing, token insertion, and extraction
// of tokens from stored content.
package mentions

import "regexp"

type Kind string

const (
	KindUser   Kind = "user"
	KindTeam   Kind = "team"
	KindPlayer Kind = "player"
)

// Trigger order matters: "@team:" and "@player:" fail the plain pattern
// because ':' is not a token character, so the plain pattern is safe first.
var (
	userTrigger   = regexp.MustCompile(`@([a-zA-Z0-9_]*)$`)
	teamTrigger   = regexp.MustCompile(`@team:([a-zA-Z0-9_]*)$`)
	playerTrigger = regexp.MustCompile(`@player:([a-zA-Z0-9_]*)$`)

	tokenPattern = regexp.MustCompile(`@(team:|player:)?([a-zA-Z0-9_]+)`)
)

// Trigger describes an in-progress mention at the caret.
type Trigger struct {
	Kind  Kind
	Query string
	// Start is the byte offset of the '@' in the text before the caret.
	Start int
}

// DetectTrigger inspects the text before the caret and reports an active
// mention trigger, or nil when the caret is not inside one.
func DetectTrigger(beforeCaret string) *Trigger {
	for _, probe := range []struct {
		kind    Kind
		pattern *regexp.Regexp
	}{
		{KindUser, userTrigger},
		{KindTeam, teamTrigger},
		{KindPlayer, playerTrigger},
	} {
		loc := probe.pattern.FindStringSubmatchIndex(beforeCaret)
		if loc == nil {
			continue
		}
		return &Trigger{
			Kind:  probe.kind,
			Query: beforeCaret[loc[2]:loc[3]],
			Start: loc[0],
		}
	}
	return nil
}

// Format renders the canonical token for a mention of the given kind.
func Format(kind Kind, name string) string {
	switch kind {
	case KindTeam:
		return "@team:" + name
	case KindPlayer:
		return "@player:" + name
	default:
		return "@" + name
	}
}

// Splice replaces the active trigger (from start to the caret) with token
// plus a trailing space, preserving the text on both sides. It returns the
// new text and the caret position just after the inserted token.
func Splice(text string, start, caret int, token string) (string, int) {
	if start < 0 || start > len(text) || caret < start || caret > len(text) {
		return text, caret
	}
	inserted := token + " "
	return text[:start] + inserted + text[caret:], start + len(inserted)
}

// Token is a completed mention found in stored content.
type Token struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	Raw  string `json:"raw"`
}

// Extract returns every mention token in content, in appearance order.
func Extract(content string) []Token {
	matches := tokenPattern.FindAllStringSubmatch(content, -1)
	if matches == nil {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		kind := KindUser
		switch m[1] {
		case "team:":
			kind = KindTeam
		case "player:":
			kind = KindPlayer
		}
		tokens = append(tokens, Token{Kind: kind, Name: m[2], Raw: m[0]})
	}
	return tokens
}
