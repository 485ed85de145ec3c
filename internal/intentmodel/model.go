// Package intentmodel loads the pre-trained intent classifier artifact: a
// fitted tf-idf vectorizer plus multinomial logistic regression weights.
package intentmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
)

var ErrInvalidArtifact = errors.New("invalid intent model artifact")

// Artifact is the on-disk form of the model.
type Artifact struct {
	Name       string      `json:"name"`
	Version    string      `json:"version"`
	Vectorizer tfidf.State `json:"vectorizer"`
	Classes    []string    `json:"classes"`
	Coef       [][]float64 `json:"coef"`
	Intercept  []float64   `json:"intercept"`
}

// Model is immutable once loaded and safe for concurrent use.
type Model struct {
	name       string
	version    string
	vectorizer *tfidf.Vectorizer
	classes    []string
	coef       [][]float64
	intercept  []float64
}

func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intent model %s: %w", path, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode intent model %s: %w", path, err)
	}

	return New(artifact)
}

func New(a Artifact) (*Model, error) {
	vectorizer, err := tfidf.FromState(a.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	if len(a.Classes) == 0 {
		return nil, fmt.Errorf("%w: no classes", ErrInvalidArtifact)
	}
	if len(a.Coef) != len(a.Classes) || len(a.Intercept) != len(a.Classes) {
		return nil, fmt.Errorf("%w: %d classes, %d coef rows, %d intercepts",
			ErrInvalidArtifact, len(a.Classes), len(a.Coef), len(a.Intercept))
	}
	for i, row := range a.Coef {
		if len(row) != vectorizer.Dimension() {
			return nil, fmt.Errorf("%w: coef row %d has %d weights, vectorizer has %d features",
				ErrInvalidArtifact, i, len(row), vectorizer.Dimension())
		}
	}

	return &Model{
		name:       a.Name,
		version:    a.Version,
		vectorizer: vectorizer,
		classes:    a.Classes,
		coef:       a.Coef,
		intercept:  a.Intercept,
	}, nil
}

func (m *Model) Transform(text string) tfidf.Vector {
	return m.vectorizer.Transform(text)
}

// Predict returns the class with the highest decision score. Ties resolve to
// the earlier class.
func (m *Model) Predict(x tfidf.Vector) string {
	scores := m.decision(x)

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return m.classes[best]
}

// PredictProba returns the softmax of the decision scores, aligned with Classes.
func (m *Model) PredictProba(x tfidf.Vector) []float64 {
	scores := m.decision(x)

	maxScore := math.Inf(-1)
	for _, s := range scores {
		maxScore = math.Max(maxScore, s)
	}

	sum := 0.0
	proba := make([]float64, len(scores))
	for i, s := range scores {
		proba[i] = math.Exp(s - maxScore)
		sum += proba[i]
	}
	for i := range proba {
		proba[i] /= sum
	}
	return proba
}

func (m *Model) Classes() []string {
	return append([]string(nil), m.classes...)
}

func (m *Model) Name() string    { return m.name }
func (m *Model) Version() string { return m.version }

func (m *Model) decision(x tfidf.Vector) []float64 {
	indices := x.Indices()
	scores := make([]float64, len(m.classes))
	for c := range m.classes {
		score := m.intercept[c]
		for _, idx := range indices {
			score += m.coef[c][idx] * x[idx]
		}
		scores[c] = score
	}
	return scores
}
