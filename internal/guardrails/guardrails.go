package guardrails

import (
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/sanitizer"
	"github.com/rs/zerolog"
)

// Guardrails runs its checkers in order on the raw query; the first verdict
// wins. It depends on no external resource.
type Guardrails struct {
	checkers []Checker
	logger   *zerolog.Logger
}

func NewGuardrails(logger *zerolog.Logger) *Guardrails {
	return NewGuardrailsWithCheckers(logger, NewEmergencyChecker(), NewCrisisChecker())
}

func NewGuardrailsWithCheckers(logger *zerolog.Logger, checkers ...Checker) *Guardrails {
	return &Guardrails{
		checkers: checkers,
		logger:   logger,
	}
}

func (g *Guardrails) Check(query string) Verdict {
	text := sanitizer.NormalizeApostrophes(strings.ToLower(query))

	for _, checker := range g.checkers {
		verdict, ok := checker.Check(text)
		if !ok {
			continue
		}
		g.logger.Warn().
			Str("level", string(verdict.Level)).
			Str("method", verdict.Method).
			Str("matched", verdict.Matched).
			Msg("Query short-circuited by safety gate")
		return verdict
	}

	return noneVerdict
}
