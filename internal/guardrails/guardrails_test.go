package guardrails

import (
	"testing"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestGuardrails_Check(t *testing.T) {
	g := NewGuardrails(newTestLogger())

	tests := []struct {
		name        string
		query       string
		wantLevel   models.SafetyLevel
		wantIntent  models.Intent
		wantMessage string
	}{
		{
			name:        "chest pain radiating to arm",
			query:       "I have a chest pain radiating to my arm",
			wantLevel:   models.SafetyEmergency,
			wantIntent:  models.IntentEmergencyDetected,
			wantMessage: EmergencyMessage,
		},
		{
			name:       "uppercase input",
			query:      "CRUSHING CHEST feeling",
			wantLevel:  models.SafetyEmergency,
			wantIntent: models.IntentEmergencyDetected,
		},
		{
			name:       "curly apostrophe",
			query:      "I can’t breathe and my heart is racing",
			wantLevel:  models.SafetyEmergency,
			wantIntent: models.IntentEmergencyDetected,
		},
		{
			name:      "severe headache alone is not an emergency",
			query:     "I have a severe headache",
			wantLevel: models.SafetyNone,
		},
		{
			name:      "anchor word without emergency phrase",
			query:     "my arm is itchy",
			wantLevel: models.SafetyNone,
		},
		{
			name:        "crisis phrase",
			query:       "I feel suicidal",
			wantLevel:   models.SafetyCrisis,
			wantIntent:  models.IntentCrisisDetected,
			wantMessage: CrisisMessage,
		},
		{
			name:       "crisis phrase with anchor resolves to emergency",
			query:      "I want to die, my heart is broken",
			wantLevel:  models.SafetyEmergency,
			wantIntent: models.IntentEmergencyDetected,
		},
		{
			name:       "both scripts match, emergency wins",
			query:      "chest pressure and I want to end my life",
			wantLevel:  models.SafetyEmergency,
			wantIntent: models.IntentEmergencyDetected,
		},
		{
			name:       "crisis without anchor",
			query:      "sometimes I think I should kill myself",
			wantLevel:  models.SafetyCrisis,
			wantIntent: models.IntentCrisisDetected,
		},
		{
			name:      "empty query",
			query:     "",
			wantLevel: models.SafetyNone,
		},
		{
			name:      "ordinary question",
			query:     "How can I improve my sleep?",
			wantLevel: models.SafetyNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Check(tt.query)
			if got.Level != tt.wantLevel {
				t.Fatalf("Level: %v, want %v", got.Level, tt.wantLevel)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent: %v, want %v", got.Intent, tt.wantIntent)
			}
			if tt.wantMessage != "" && got.Message != tt.wantMessage {
				t.Errorf("unexpected message for %v", tt.wantLevel)
			}
			if got.Triggered() != (tt.wantLevel != models.SafetyNone) {
				t.Errorf("Triggered() = %v", got.Triggered())
			}
		})
	}
}

func TestGuardrails_CheckerOrderIsPriority(t *testing.T) {
	g := NewGuardrailsWithCheckers(newTestLogger(), NewCrisisChecker(), NewEmergencyChecker())

	got := g.Check("chest pain and I want to die")

	if got.Level != models.SafetyCrisis {
		t.Errorf("expected first checker to win, got %v", got.Level)
	}
}

func TestEmergencyChecker_ReportsMatchedPhrase(t *testing.T) {
	c := NewEmergencyChecker()

	got, ok := c.Check("slurred speech and arm weakness")

	if !ok {
		t.Fatal("expected emergency verdict")
	}
	if got.Matched != "slurred speech" {
		t.Errorf("Matched: %q", got.Matched)
	}
}
