package classifier

import (
	"errors"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/sanitizer"
	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
	"github.com/rs/zerolog"
)

var ErrModelUnavailable = errors.New("intent model unavailable")

// Model is the pre-trained statistical classifier together with the
// vectorizer it was trained with.
type Model interface {
	Transform(text string) tfidf.Vector
	Predict(x tfidf.Vector) string
	PredictProba(x tfidf.Vector) []float64
}

type Classifier struct {
	rules  []Rule
	model  Model
	logger *zerolog.Logger
}

// New fails when model is nil: the cascade always needs its terminal fallback.
func New(rules []Rule, model Model, logger *zerolog.Logger) (*Classifier, error) {
	if model == nil {
		return nil, ErrModelUnavailable
	}

	return &Classifier{
		rules:  rules,
		model:  model,
		logger: logger,
	}, nil
}

// Classify evaluates the rules in order; the first match wins. When no rule
// matches the statistical model decides, with its top class probability as
// confidence.
func (c *Classifier) Classify(text string) models.IntentResult {
	normalized := sanitizer.NormalizeApostrophes(strings.ToLower(sanitizer.Sanitize(text)))

	for _, rule := range c.rules {
		if rule.Match(normalized) {
			c.logger.Debug().Str("rule", rule.Name).Str("intent", string(rule.Intent)).Msg("rule matched")
			return models.IntentResult{
				Intent:     rule.Intent,
				Confidence: rule.Confidence,
				Method:     "rule",
			}
		}
	}

	return c.predict(normalized)
}

func (c *Classifier) predict(text string) models.IntentResult {
	vec := c.model.Transform(text)
	label := c.model.Predict(vec)

	confidence := 0.0
	for _, p := range c.model.PredictProba(vec) {
		if p > confidence {
			confidence = p
		}
	}

	c.logger.Debug().Str("intent", label).Float64("confidence", confidence).Msg("model fallback")

	return models.IntentResult{
		Intent:     models.Intent(label),
		Confidence: confidence,
		Method:     "model",
	}
}
