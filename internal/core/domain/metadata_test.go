package domain

import (
	"strings"
	"testing"
)

func TestSanitizeMetadata(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "plain ascii passes through", input: "Sadaqah for the new roof", want: "Sadaqah for the new roof"},
		{
			name:  "zero-width and non-breaking spaces are stripped",
			input: "Hello​World Test",
			want:  "HelloWorldTest",
		},
		{name: "control characters are stripped", input: "line1\nline2\tend\r", want: "line1line2end"},
		{name: "non-ascii text is dropped", input: "دعاء for the family", want: "for the family"},
		{name: "surrounding whitespace is trimmed", input: "  hello  ", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeMetadata(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeMetadataTruncates(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := SanitizeMetadata(long)
	if len(got) != 500 {
		t.Fatalf("length: got %d, want 500", len(got))
	}
}

func TestSanitizeMetadataIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"Hello​World Test",
		"  padded  ",
		strings.Repeat("word ", 200),
	}
	for _, in := range inputs {
		once := SanitizeMetadata(in)
		twice := SanitizeMetadata(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q vs %q", in, once, twice)
		}
		if len(once) > 500 {
			t.Errorf("output exceeds cap: %d", len(once))
		}
	}
}
