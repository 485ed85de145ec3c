// Package report extracts text from medical report images and annotates
// clinical terms with plain-language explanations.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

type term struct {
	complex string
	simple  string
	pattern *regexp.Regexp
}

// Simplifier is built once from the term dictionary and is read-only after.
type Simplifier struct {
	terms []term
}

// NewSimplifier orders terms longest first so a longer phrase is annotated
// before any term it contains. Equal lengths sort alphabetically.
func NewSimplifier(dictionary map[string]string) *Simplifier {
	terms := make([]term, 0, len(dictionary))
	for complex, simple := range dictionary {
		if complex == "" {
			continue
		}
		terms = append(terms, term{
			complex: complex,
			simple:  simple,
			pattern: regexp.MustCompile("(?i)" + regexp.QuoteMeta(complex)),
		})
	}

	sort.Slice(terms, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(terms[i].complex), utf8.RuneCountInString(terms[j].complex)
		if li != lj {
			return li > lj
		}
		return terms[i].complex < terms[j].complex
	})

	return &Simplifier{terms: terms}
}

// LoadDictionary reads a JSON object mapping clinical terms to explanations.
func LoadDictionary(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read medical terms %s: %w", path, err)
	}

	var dict map[string]string
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse medical terms %s: %w", path, err)
	}
	return dict, nil
}

// Simplify replaces every case-insensitive occurrence of a dictionary term
// with "term (explanation)". Each term found is reported once. Shorter terms
// run against the already annotated text.
func (s *Simplifier) Simplify(text string) models.SimplifiedReport {
	simplified := text
	found := []models.TermMatch{}

	for _, t := range s.terms {
		if !t.pattern.MatchString(simplified) {
			continue
		}
		found = append(found, models.TermMatch{Complex: t.complex, Simple: t.simple})
		simplified = t.pattern.ReplaceAllLiteralString(simplified, t.complex+" ("+t.simple+")")
	}

	return models.SimplifiedReport{
		OriginalText:   text,
		SimplifiedText: simplified,
		TermsFound:     found,
	}
}

func (s *Simplifier) Len() int {
	return len(s.terms)
}
