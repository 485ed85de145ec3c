// Package pipeline answers a single health query: safety gate, sanitizer,
// intent classifier, entity extractor, knowledge retriever and composer.
package pipeline

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/health-agent/internal/composer"
	"github.com/povarna/generative-ai-agents/health-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/sanitizer"
	"github.com/rs/zerolog"
)

const (
	MethodSafety   = "safety"
	MethodFallback = "fallback"
)

type SafetyGate interface {
	Check(query string) guardrails.Verdict
}

type IntentClassifier interface {
	Classify(text string) models.IntentResult
}

type EntityExtractor interface {
	Extract(text string) (models.EntityBag, error)
}

type KnowledgeRetriever interface {
	Search(query string, topK int) []models.KnowledgeEntry
}

type ResponseComposer interface {
	Compose(intent models.Intent, retrieved []models.KnowledgeEntry, entities models.EntityBag) string
}

// Recorder observes every finished query.
type Recorder interface {
	ObserveQuery(outcome models.QueryOutcome)
}

type Config struct {
	TopK int
	// LogQueries includes the sanitized query text in debug logs.
	LogQueries bool
}

// Pipeline holds only read-only collaborators and is safe for concurrent use.
type Pipeline struct {
	gate      SafetyGate
	intents   IntentClassifier
	extractor EntityExtractor
	retriever KnowledgeRetriever
	composer  ResponseComposer
	recorder  Recorder
	cfg       Config
	logger    *zerolog.Logger
}

func NewPipeline(
	gate SafetyGate,
	intents IntentClassifier,
	extractor EntityExtractor,
	retriever KnowledgeRetriever,
	composer ResponseComposer,
	cfg Config,
	logger *zerolog.Logger,
) *Pipeline {
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	return &Pipeline{
		gate:      gate,
		intents:   intents,
		extractor: extractor,
		retriever: retriever,
		composer:  composer,
		cfg:       cfg,
		logger:    logger,
	}
}

// WithRecorder attaches r and returns p.
func (p *Pipeline) WithRecorder(r Recorder) *Pipeline {
	p.recorder = r
	return p
}

// Process answers req, assigning a request ID when the caller did not.
func (p *Pipeline) Process(ctx context.Context, req models.QueryRequest) models.QueryOutcome {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	outcome := p.ProcessQuery(ctx, req.Query)
	outcome.ID = id
	return outcome
}

// ProcessQuery never fails. A safety match short-circuits everything else;
// any per-query failure degrades to the generic rephrase reply.
func (p *Pipeline) ProcessQuery(ctx context.Context, raw string) (outcome models.QueryOutcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Interface("panic", r).Msg("query processing panicked")
			outcome = rephraseOutcome()
		}
		outcome.Duration = time.Since(start)
		if p.recorder != nil {
			p.recorder.ObserveQuery(outcome)
		}
	}()

	if verdict := p.gate.Check(raw); verdict.Triggered() {
		return models.QueryOutcome{
			Response:   verdict.Message,
			Intent:     verdict.Intent,
			Confidence: 1.0,
			Method:     MethodSafety,
			Entities:   models.NewEntityBag(),
			Sources:    []models.KnowledgeEntry{},
			Safety:     verdict.Level,
		}
	}

	if err := ctx.Err(); err != nil {
		p.logger.Warn().Err(err).Msg("query abandoned before classification")
		return rephraseOutcome()
	}

	outcome, err := p.answer(raw)
	if err != nil {
		p.logger.Error().Err(err).Msg("query degraded to rephrase")
		return rephraseOutcome()
	}
	return outcome
}

func (p *Pipeline) answer(raw string) (models.QueryOutcome, error) {
	text := sanitizer.Sanitize(raw)

	intent := p.intents.Classify(text)

	bag, err := p.extractor.Extract(text)
	if err != nil {
		return models.QueryOutcome{}, fmt.Errorf("extract entities: %w", err)
	}

	retrieved := p.retriever.Search(text, p.cfg.TopK)
	if retrieved == nil {
		retrieved = []models.KnowledgeEntry{}
	}

	event := p.logger.Debug().
		Str("intent", string(intent.Intent)).
		Float64("confidence", intent.Confidence).
		Str("method", intent.Method).
		Int("sources", len(retrieved))
	if p.cfg.LogQueries {
		event = event.Str("query", text)
	}
	event.Msg("query classified")

	return models.QueryOutcome{
		Response:   p.composer.Compose(intent.Intent, retrieved, bag),
		Intent:     intent.Intent,
		Confidence: intent.Confidence,
		Method:     intent.Method,
		Entities:   bag,
		Sources:    retrieved,
		Safety:     models.SafetyNone,
	}, nil
}

func rephraseOutcome() models.QueryOutcome {
	return models.QueryOutcome{
		Response: composer.Rephrase(),
		Method:   MethodFallback,
		Entities: models.NewEntityBag(),
		Sources:  []models.KnowledgeEntry{},
		Safety:   models.SafetyNone,
	}
}
