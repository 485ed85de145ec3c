package intentmodel

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
)

func tinyArtifact() Artifact {
	return Artifact{
		Name:    "tiny",
		Version: "test",
		Vectorizer: tfidf.State{
			Options:    tfidf.Options{NGramMin: 1, NGramMax: 1, StopWords: true},
			Vocabulary: map[string]int{"pill": 0, "sleep": 1},
			IDF:        []float64{1, 1},
		},
		Classes:   []string{"general_wellness", "medication_explainer"},
		Coef:      [][]float64{{0, 3}, {3, 0}},
		Intercept: []float64{0.5, 0},
	}
}

func TestModel_PredictAndProba(t *testing.T) {
	m, err := New(tinyArtifact())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		name      string
		text      string
		wantLabel string
	}{
		{name: "medication term", text: "which pill", wantLabel: "medication_explainer"},
		{name: "wellness term", text: "better sleep", wantLabel: "general_wellness"},
		{name: "no known terms uses intercept", text: "", wantLabel: "general_wellness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := m.Transform(tt.text)
			if got := m.Predict(x); got != tt.wantLabel {
				t.Errorf("Predict: %v, want %v", got, tt.wantLabel)
			}

			proba := m.PredictProba(x)
			if len(proba) != 2 {
				t.Fatalf("expected 2 probabilities, got %d", len(proba))
			}
			sum := proba[0] + proba[1]
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("probabilities sum to %v", sum)
			}
		})
	}
}

func TestModel_ProbaIsSoftmax(t *testing.T) {
	m, err := New(tinyArtifact())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	proba := m.PredictProba(tfidf.Vector{})

	want := math.Exp(0.5) / (math.Exp(0.5) + 1)
	if math.Abs(proba[0]-want) > 1e-12 {
		t.Errorf("proba[0] = %v, want %v", proba[0], want)
	}
}

func TestNew_InvalidArtifacts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Artifact)
	}{
		{name: "no classes", mutate: func(a *Artifact) { a.Classes = nil; a.Coef = nil; a.Intercept = nil }},
		{name: "missing intercept", mutate: func(a *Artifact) { a.Intercept = a.Intercept[:1] }},
		{name: "short coef row", mutate: func(a *Artifact) { a.Coef[1] = []float64{1} }},
		{name: "broken vectorizer", mutate: func(a *Artifact) { a.Vectorizer.IDF = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tinyArtifact()
			tt.mutate(&a)
			if _, err := New(a); !errors.Is(err, ErrInvalidArtifact) {
				t.Errorf("expected ErrInvalidArtifact, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoad_ShippedModel(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "models", "intent_model.json"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := m.Predict(m.Transform("what is amoxicillin")); got != "medication_explainer" {
		t.Errorf("Predict(amoxicillin) = %v", got)
	}
	if got := m.Predict(m.Transform("i feel hopeless lately")); got != "mental_health" {
		t.Errorf("Predict(hopeless) = %v", got)
	}
	if len(m.Classes()) != 5 {
		t.Errorf("expected 5 classes, got %v", m.Classes())
	}
}
