package sanitizer

import "strings"

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// NormalizeApostrophes rewrites typographic apostrophes to ASCII so phrase
// lists written with "'" match input from mobile keyboards.
func NormalizeApostrophes(text string) string {
	return apostrophes.Replace(text)
}

// MaxInputLength bounds every user input, counted in characters.
const MaxInputLength = 1000

// Sanitize trims surrounding whitespace and truncates to MaxInputLength runes.
// It is idempotent.
func Sanitize(raw string) string {
	text := strings.TrimSpace(raw)

	n := 0
	for i := range text {
		if n == MaxInputLength {
			// a cut after trimming can expose trailing whitespace again
			return strings.TrimSpace(text[:i])
		}
		n++
	}

	return text
}
