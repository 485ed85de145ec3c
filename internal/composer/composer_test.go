package composer

import (
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

var sleepEntry = models.KnowledgeEntry{
	Topic:    "Sleep Hygiene",
	Keywords: []string{"sleep", "insomnia"},
	Content:  "Keep a consistent sleep schedule.",
}

func TestCompose_RendersTopEntryWithFooter(t *testing.T) {
	c := NewComposer()
	second := models.KnowledgeEntry{Topic: "Other", Content: "should not appear"}

	tests := []struct {
		intent     models.Intent
		wantHead   string
		wantFooter string
	}{
		{models.IntentSymptomChecker, "**Based on what you've described:**", "consult a healthcare provider"},
		{models.IntentMedicationExplainer, "**Medication Information:**", "Never adjust dosages"},
		{models.IntentGeneralWellness, "**Wellness Advice:**", "small consistent changes"},
		{models.IntentMentalHealth, "**Mental Health Support:**", "Text HOME to 741741"},
		{models.IntentHealthSummary, "**Your Health Summary:**", "personalized nudges"},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			got := c.Compose(tt.intent, []models.KnowledgeEntry{sleepEntry, second}, models.NewEntityBag())

			if !strings.HasPrefix(got, tt.wantHead+"\n\n"+sleepEntry.Content) {
				t.Errorf("unexpected opening: %q", got)
			}
			if !strings.Contains(got, tt.wantFooter) {
				t.Errorf("missing footer %q in %q", tt.wantFooter, got)
			}
			if strings.Contains(got, second.Content) {
				t.Error("only the top entry should be rendered")
			}
		})
	}
}

func TestCompose_MentalHealthHotlines(t *testing.T) {
	got := NewComposer().Compose(models.IntentMentalHealth, []models.KnowledgeEntry{sleepEntry}, models.NewEntityBag())

	for _, want := range []string{"988", "741741", "911"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %s in mental health reply", want)
		}
	}
}

func TestCompose_SymptomList(t *testing.T) {
	c := NewComposer()
	bag := models.NewEntityBag()
	bag.Symptoms = []string{"headache", "a sharp pain"}

	got := c.Compose(models.IntentSymptomChecker, []models.KnowledgeEntry{sleepEntry}, bag)

	if !strings.Contains(got, "**Identified symptoms:** headache, a sharp pain\n\n⚠️") {
		t.Errorf("symptom list missing or misplaced: %q", got)
	}

	// other intents ignore symptoms
	got = c.Compose(models.IntentGeneralWellness, []models.KnowledgeEntry{sleepEntry}, bag)
	if strings.Contains(got, "Identified symptoms") {
		t.Error("symptoms should only be listed for symptom_checker")
	}
}

func TestCompose_NoSymptomsNoList(t *testing.T) {
	got := NewComposer().Compose(models.IntentSymptomChecker, []models.KnowledgeEntry{sleepEntry}, models.NewEntityBag())

	if strings.Contains(got, "Identified symptoms") {
		t.Errorf("unexpected symptom list: %q", got)
	}
}

func TestCompose_EmptyRetrievalUsesIntentFallback(t *testing.T) {
	c := NewComposer()
	seen := map[string]models.Intent{}

	for intent, tmpl := range templates {
		got := c.Compose(intent, nil, models.NewEntityBag())

		if got != tmpl.fallback {
			t.Errorf("%s: expected its clarifying fallback, got %q", intent, got)
		}
		if got == Rephrase() {
			t.Errorf("%s: fallback must not be the generic prompt", intent)
		}
		if other, dup := seen[got]; dup {
			t.Errorf("%s shares its fallback with %s", intent, other)
		}
		seen[got] = intent
	}

	if len(templates) != 5 {
		t.Errorf("expected a template per answerable intent, got %d", len(templates))
	}
}

func TestCompose_UnknownIntent(t *testing.T) {
	c := NewComposer()

	for _, intent := range []models.Intent{"", "weather", models.IntentEmergencyDetected} {
		if got := c.Compose(intent, []models.KnowledgeEntry{sleepEntry}, models.NewEntityBag()); got != Rephrase() {
			t.Errorf("Compose(%q) = %q", intent, got)
		}
	}
}
