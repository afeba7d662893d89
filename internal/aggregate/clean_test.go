package aggregate

import "testing"

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "punctuation collapsed", input: "Hello, World!!", want: "hello world"},
		{name: "hyphen and underscore kept", input: "Go-lang_Tips: Part 2", want: "go-lang_tips part 2"},
		{name: "whitespace runs collapsed", input: "  a \t\n b  ", want: "a b"},
		{name: "only punctuation", input: "!!!...???", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "unicode letters kept", input: "Café — Été", want: "café été"},
		{name: "non-latin scripts kept", input: "日本語のページ | YouTube", want: "日本語のページ youtube"},
		{name: "apostrophe split", input: "Don't Panic", want: "don t panic"},
		{name: "pipes and slashes", input: "Inbox (3) | Mail/Work", want: "inbox 3 mail work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanTitle(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCleanTitleDeterministic(t *testing.T) {
	t.Parallel()

	in := "Some Title: With (Parens) & Symbols"
	first := CleanTitle(in)
	for range 5 {
		if got := CleanTitle(in); got != first {
			t.Fatalf("expected %q, got %q", first, got)
		}
	}
	if CleanTitle(first) != first {
		t.Errorf("expected cleaning to be stable on its own output, got %q", CleanTitle(first))
	}
}
