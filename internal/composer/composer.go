// Package composer turns a classified, enriched query into the reply text.
package composer

import (
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose is deterministic in its inputs. Only the first retrieved entry is
// rendered; an empty retrieval yields the intent's clarifying question.
func (c *Composer) Compose(intent models.Intent, retrieved []models.KnowledgeEntry, entities models.EntityBag) string {
	tmpl, ok := templates[intent]
	if !ok {
		return rephrasePrompt
	}
	if len(retrieved) == 0 {
		return tmpl.fallback
	}

	var b strings.Builder
	b.WriteString(tmpl.heading)
	b.WriteString("\n\n")
	b.WriteString(retrieved[0].Content)
	b.WriteString("\n\n")

	if intent == models.IntentSymptomChecker && len(entities.Symptoms) > 0 {
		b.WriteString("**Identified symptoms:** ")
		b.WriteString(strings.Join(entities.Symptoms, ", "))
		b.WriteString("\n\n")
	}

	b.WriteString(tmpl.footer)
	return b.String()
}

// Rephrase is the generic reply used when a query cannot be understood or
// processing failed.
func Rephrase() string {
	return rephrasePrompt
}
