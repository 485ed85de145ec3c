// Package nlp adapts the prose toolkit to the entities.Analyzer contract.
package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/povarna/generative-ai-agents/health-agent/internal/entities"
)

type ProseAnalyzer struct {
	lexicon *Lexicon
}

func NewProseAnalyzer(lexicon *Lexicon) *ProseAnalyzer {
	return &ProseAnalyzer{lexicon: lexicon}
}

// Analyze runs tokenization, tagging and named-entity recognition. Lexicon
// hits are reported after the tagger's own entities.
func (a *ProseAnalyzer) Analyze(text string) (entities.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return entities.Analysis{}, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return entities.Analysis{}, fmt.Errorf("prose: %w", err)
	}

	var analysis entities.Analysis
	for _, ent := range doc.Entities() {
		analysis.Entities = append(analysis.Entities, entities.Entity{Text: ent.Text, Label: ent.Label})
	}

	tokens := doc.Tokens()
	tagged := make([]taggedToken, len(tokens))
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		tagged[i] = taggedToken{Text: tok.Text, Tag: tok.Tag}
		words[i] = tok.Text
	}

	analysis.Entities = append(analysis.Entities, a.lexicon.Match(words)...)
	analysis.NounChunks = nounChunks(tagged)

	return analysis, nil
}
