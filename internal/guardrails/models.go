package guardrails

import "github.com/povarna/generative-ai-agents/health-agent/internal/models"

type Verdict struct {
	Level   models.SafetyLevel // none, emergency or crisis
	Intent  models.Intent      // empty when Level is none
	Message string             // fixed script shown instead of a composed answer
	Matched string             // phrase that triggered the verdict
	Method  string             // checker that produced it
}

func (v Verdict) Triggered() bool {
	return v.Level != models.SafetyNone
}

var noneVerdict = Verdict{Level: models.SafetyNone, Method: "static"}
