package nlp

import (
	"sort"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/entities"
)

// Lexicon tags domain terms the general-purpose tagger does not know, such as
// symptom and drug names.
type Lexicon struct {
	entries []lexiconEntry
}

type lexiconEntry struct {
	words []string
	label string
}

// NewLexicon builds a lexicon from term -> label pairs. Longer terms are
// preferred when matches overlap.
func NewLexicon(terms map[string]string) *Lexicon {
	entries := make([]lexiconEntry, 0, len(terms))
	for term, label := range terms {
		words := strings.Fields(strings.ToLower(term))
		if len(words) == 0 {
			continue
		}
		entries = append(entries, lexiconEntry{words: words, label: label})
	}

	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].words) != len(entries[j].words) {
			return len(entries[i].words) > len(entries[j].words)
		}
		return strings.Join(entries[i].words, " ") < strings.Join(entries[j].words, " ")
	})

	return &Lexicon{entries: entries}
}

// Match scans tokens left to right and returns non-overlapping lexicon hits.
func (l *Lexicon) Match(tokens []string) []entities.Entity {
	if l == nil || len(l.entries) == 0 {
		return nil
	}

	lower := make([]string, len(tokens))
	for i, tok := range tokens {
		lower[i] = strings.ToLower(tok)
	}

	var found []entities.Entity
	for i := 0; i < len(lower); {
		matched := false
		for _, entry := range l.entries {
			n := len(entry.words)
			if i+n > len(lower) || !equalWords(lower[i:i+n], entry.words) {
				continue
			}
			found = append(found, entities.Entity{
				Text:  strings.Join(tokens[i:i+n], " "),
				Label: entry.label,
			})
			i += n
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return found
}

func equalWords(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
