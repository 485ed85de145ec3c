package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/health-agent/internal/config"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

// Rule is one predicate -> result pair of the cascade. Match receives
// sanitized, lowercased text.
type Rule struct {
	Name       string
	Intent     models.Intent
	Confidence float64
	Match      func(text string) bool
}

// BuildRules returns the cascade in priority order.
func BuildRules(cfg *config.IntentsConfig) []Rule {
	kw := cfg.Keywords
	conf := cfg.Confidence

	return []Rule{
		{
			Name:       "mental_health",
			Intent:     models.IntentMentalHealth,
			Confidence: conf.MentalHealth,
			Match: func(text string) bool {
				return containsAny(text, kw.MentalHealth) &&
					(containsAny(text, kw.CopingActions) || strings.Contains(text, "?"))
			},
		},
		{
			Name:       "medication",
			Intent:     models.IntentMedicationExplainer,
			Confidence: conf.Medication,
			Match: func(text string) bool {
				return containsAny(text, kw.Medications) && containsAny(text, kw.QuestionPhrases)
			},
		},
		{
			Name:       "symptom_phrase",
			Intent:     models.IntentSymptomChecker,
			Confidence: conf.SymptomPhrase,
			Match: func(text string) bool {
				return containsAny(text, kw.SymptomPhrases)
			},
		},
		{
			Name:       "symptom_word",
			Intent:     models.IntentSymptomChecker,
			Confidence: conf.SymptomWord,
			Match: func(text string) bool {
				return containsAny(text, kw.SymptomWords)
			},
		},
		{
			Name:       "wellness",
			Intent:     models.IntentGeneralWellness,
			Confidence: conf.Wellness,
			Match: func(text string) bool {
				return containsAny(text, kw.WellnessTopics) && containsAny(text, kw.AdviceWords)
			},
		},
		{
			Name:       "summary",
			Intent:     models.IntentHealthSummary,
			Confidence: conf.Summary,
			Match: func(text string) bool {
				return containsAny(text, kw.Summary)
			},
		},
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if containsTerm(text, term) {
			return true
		}
	}
	return false
}

// containsTerm reports whether term occurs in text on word boundaries, so
// "ache" matches "my back ache" but not "mustache".
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}

	for offset := 0; offset <= len(text)-len(term); {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(term)

		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
