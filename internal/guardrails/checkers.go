package guardrails

import (
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

// Checker inspects lowercased query text. ok is false when the checker has
// nothing to report.
type Checker interface {
	Check(text string) (verdict Verdict, ok bool)
}

// DefaultEmergencyPhrases includes the self-harm phrases too, so they escalate
// to emergency when a cardiac anchor is present.
var DefaultEmergencyPhrases = []string{
	"chest pain", "chest pressure", "crushing chest", "tight chest",
	"pain radiating", "pain down arm", "pain in jaw",
	"shortness of breath", "difficulty breathing", "can't breathe",
	"sudden severe headache", "worst headache", "severe headache",
	"confusion", "slurred speech", "face drooping", "arm weakness",
	"severe bleeding", "bleeding heavily", "won't stop bleeding",
	"suicidal", "want to die", "kill myself", "end my life",
	"passed out", "loss of consciousness", "can't wake up",
}

// DefaultCardiacAnchors must co-occur with an emergency phrase.
var DefaultCardiacAnchors = []string{"chest", "heart", "arm"}

// DefaultCrisisPhrases fire on their own when no emergency verdict applies.
var DefaultCrisisPhrases = []string{"suicidal", "kill myself", "want to die", "end my life"}

// EmergencyChecker fires on an emergency phrase together with a cardiac
// anchor word. Matching is plain substring containment.
type EmergencyChecker struct {
	Phrases []string
	Anchors []string
}

func NewEmergencyChecker() *EmergencyChecker {
	return &EmergencyChecker{
		Phrases: DefaultEmergencyPhrases,
		Anchors: DefaultCardiacAnchors,
	}
}

func (c *EmergencyChecker) Check(text string) (Verdict, bool) {
	phrase, ok := firstContained(text, c.Phrases)
	if !ok {
		return Verdict{}, false
	}
	if _, anchored := firstContained(text, c.Anchors); !anchored {
		return Verdict{}, false
	}

	return Verdict{
		Level:   models.SafetyEmergency,
		Intent:  models.IntentEmergencyDetected,
		Message: EmergencyMessage,
		Matched: phrase,
		Method:  "emergency",
	}, true
}

type CrisisChecker struct {
	Phrases []string
}

func NewCrisisChecker() *CrisisChecker {
	return &CrisisChecker{Phrases: DefaultCrisisPhrases}
}

func (c *CrisisChecker) Check(text string) (Verdict, bool) {
	phrase, ok := firstContained(text, c.Phrases)
	if !ok {
		return Verdict{}, false
	}

	return Verdict{
		Level:   models.SafetyCrisis,
		Intent:  models.IntentCrisisDetected,
		Message: CrisisMessage,
		Matched: phrase,
		Method:  "crisis",
	}, true
}

func firstContained(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if p != "" && strings.Contains(text, p) {
			return p, true
		}
	}
	return "", false
}
