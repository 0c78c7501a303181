package mentions

import "testing"

func TestDetectTrigger(t *testing.T) {
	tests := []struct {
		name   string
		before string
		kind   Kind
		query  string
		start  int
	}{
		{"bare at", "hello @", KindUser, "", 6},
		{"user query", "hello @sen", KindUser, "sen", 6},
		{"team trigger", "gg @team:sent", KindTeam, "sent", 3},
		{"team empty query", "gg @team:", KindTeam, "", 3},
		{"player trigger", "@player:tenz", KindPlayer, "tenz", 0},
		{"mid text", "props to @fra", KindUser, "fra", 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := DetectTrigger(tc.before)
			if tr == nil {
				t.Fatalf("Expected trigger for %q, got nil", tc.before)
			}
			if tr.Kind != tc.kind {
				t.Errorf("Expected kind %q, got %q", tc.kind, tr.Kind)
			}
			if tr.Query != tc.query {
				t.Errorf("Expected query %q, got %q", tc.query, tr.Query)
			}
			if tr.Start != tc.start {
				t.Errorf("Expected start %d, got %d", tc.start, tr.Start)
			}
		})
	}
}

func TestDetectTrigger_None(t *testing.T) {
	tests := []struct {
		name   string
		before string
	}{
		{"no at", "plain text"},
		{"completed mention", "hey @sentinels "},
		{"at followed by space", "a @ b"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tr := DetectTrigger(tc.before); tr != nil {
				t.Errorf("Expected nil trigger for %q, got %+v", tc.before, tr)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(KindUser, "frank"); got != "@frank" {
		t.Errorf("Expected @frank, got %q", got)
	}
	if got := Format(KindTeam, "sentinels"); got != "@team:sentinels" {
		t.Errorf("Expected @team:sentinels, got %q", got)
	}
	if got := Format(KindPlayer, "tenz"); got != "@player:tenz" {
		t.Errorf("Expected @player:tenz, got %q", got)
	}
}

func TestSplice(t *testing.T) {
	text := "props to @fra and others"
	caret := len("props to @fra")

	out, newCaret := Splice(text, 9, caret, "@player:franky")
	want := "props to @player:franky  and others"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
	if newCaret != 9+len("@player:franky ") {
		t.Errorf("Unexpected caret %d", newCaret)
	}
}

func TestSplice_OutOfRange(t *testing.T) {
	text := "short"
	out, caret := Splice(text, 10, 12, "@x")
	if out != text || caret != 12 {
		t.Errorf("Expected passthrough on bad offsets, got %q/%d", out, caret)
	}
}

func TestExtract(t *testing.T) {
	content := "gg @team:sentinels, huge plays from @player:tenz and @frank"

	tokens := Extract(content)
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}

	want := []Token{
		{KindTeam, "sentinels", "@team:sentinels"},
		{KindPlayer, "tenz", "@player:tenz"},
		{KindUser, "frank", "@frank"},
	}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("Token %d: expected %+v, got %+v", i, w, tokens[i])
		}
	}
}

func TestExtract_None(t *testing.T) {
	if tokens := Extract("no mentions here"); len(tokens) != 0 {
		t.Errorf("Expected no tokens, got %d", len(tokens))
	}
}
