package sanitizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "trims whitespace", raw: "  hello world \n\t", want: "hello world"},
		{name: "empty", raw: "", want: ""},
		{name: "only whitespace", raw: " \t\n ", want: ""},
		{name: "keeps inner whitespace", raw: "a  b", want: "a  b"},
		{name: "exact limit untouched", raw: strings.Repeat("x", MaxInputLength), want: strings.Repeat("x", MaxInputLength)},
		{name: "truncates to limit", raw: strings.Repeat("y", MaxInputLength+50), want: strings.Repeat("y", MaxInputLength)},
		{
			name: "cut exposing whitespace is trimmed",
			raw:  strings.Repeat("z", MaxInputLength-1) + " tail",
			want: strings.Repeat("z", MaxInputLength-1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.raw); got != tt.want {
				t.Errorf("Sanitize() returned %d chars, want %d", utf8.RuneCountInString(got), utf8.RuneCountInString(tt.want))
			}
		})
	}
}

func TestSanitize_CountsCharactersNotBytes(t *testing.T) {
	raw := strings.Repeat("é", MaxInputLength+10)

	got := Sanitize(raw)

	if n := utf8.RuneCountInString(got); n != MaxInputLength {
		t.Errorf("expected %d runes, got %d", MaxInputLength, n)
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a multi-byte character")
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"  I have a headache  ",
		strings.Repeat("ab ", 600),
		strings.Repeat("x", MaxInputLength-1) + "  " + strings.Repeat("y", 20),
		"",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize is not idempotent for input of length %d", len(in))
		}
	}
}

func TestNormalizeApostrophes(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "I’ve been", want: "I've been"},
		{raw: "can‘t", want: "can't"},
		{raw: "itʼs", want: "it's"},
		{raw: "plain text", want: "plain text"},
	}

	for _, tt := range tests {
		if got := NormalizeApostrophes(tt.raw); got != tt.want {
			t.Errorf("NormalizeApostrophes(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
