package entities

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/sanitizer"
)

// Entity is a recognized span with its type label.
type Entity struct {
	Text  string
	Label string
}

// Analysis is what the linguistic toolkit reports for one text.
type Analysis struct {
	Entities   []Entity
	NounChunks []string
}

type Analyzer interface {
	Analyze(text string) (Analysis, error)
}

var (
	symptomLabels    = map[string]bool{"DISEASE": true, "SYMPTOM": true}
	medicationLabels = map[string]bool{"PRODUCT": true, "ORG": true}
	painIndicators   = []string{"pain", "ache", "hurt", "sore"}
)

type Extractor struct {
	analyzer Analyzer
}

func NewExtractor(analyzer Analyzer) *Extractor {
	return &Extractor{analyzer: analyzer}
}

// Extract buckets named entities by label, then appends every noun chunk that
// mentions pain to Symptoms. Spans may appear more than once.
func (e *Extractor) Extract(text string) (models.EntityBag, error) {
	bag := models.NewEntityBag()

	analysis, err := e.analyzer.Analyze(sanitizer.Sanitize(text))
	if err != nil {
		return bag, fmt.Errorf("entity analysis failed: %w", err)
	}

	for _, ent := range analysis.Entities {
		switch {
		case symptomLabels[ent.Label]:
			bag.Symptoms = append(bag.Symptoms, ent.Text)
		case medicationLabels[ent.Label]:
			bag.Medications = append(bag.Medications, ent.Text)
		default:
			bag.General = append(bag.General, ent.Text)
		}
	}

	for _, chunk := range analysis.NounChunks {
		lower := strings.ToLower(chunk)
		for _, indicator := range painIndicators {
			if strings.Contains(lower, indicator) {
				bag.Symptoms = append(bag.Symptoms, chunk)
				break
			}
		}
	}

	return bag, nil
}
