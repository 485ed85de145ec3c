package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/health-agent/internal/bedrock"
	"github.com/povarna/generative-ai-agents/health-agent/internal/classifier"
	"github.com/povarna/generative-ai-agents/health-agent/internal/composer"
	"github.com/povarna/generative-ai-agents/health-agent/internal/config"
	"github.com/povarna/generative-ai-agents/health-agent/internal/database"
	"github.com/povarna/generative-ai-agents/health-agent/internal/entities"
	"github.com/povarna/generative-ai-agents/health-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/health-agent/internal/intentmodel"
	"github.com/povarna/generative-ai-agents/health-agent/internal/knowledge"
	"github.com/povarna/generative-ai-agents/health-agent/internal/metrics"
	"github.com/povarna/generative-ai-agents/health-agent/internal/nlp"
	"github.com/povarna/generative-ai-agents/health-agent/internal/pipeline"
	"github.com/povarna/generative-ai-agents/health-agent/internal/report"
	"github.com/povarna/generative-ai-agents/health-agent/internal/retrieval"
	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
	"github.com/povarna/generative-ai-agents/health-agent/internal/wellness"
	"github.com/rs/zerolog"
)

const (
	KnowledgeSourceFile     = "file"
	KnowledgeSourcePostgres = "postgres"
)

type Config struct {
	APIPort        int
	LogLevel       string
	LogFormat      string
	LogUserQueries bool

	KnowledgeSource   string
	KnowledgeBasePath string
	WatchKnowledge    bool
	IntentModelPath   string
	WellnessTipsPath  string
	MedicalTermsPath  string
	RetrievalTopK     int

	AWSRegion     string
	ClaudeModelID string
	OCREnabled    bool

	RedisAddr      string
	RedisPassword  string
	StreamProvider string

	Database database.Config
}

type Dependencies struct {
	Pipeline    *pipeline.Pipeline
	Knowledge   *retrieval.Store
	Recommender *wellness.Recommender
	Reports     *report.Processor
	Metrics     *metrics.Collector
	// Watcher is nil unless the knowledge base is a watched file.
	Watcher *knowledge.Watcher
	// DB is nil unless the knowledge source is postgres.
	DB     *database.DB
	Logger *zerolog.Logger
}

// Close releases connections opened by Wire.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}

func LoadConfig() *Config {
	return &Config{
		APIPort:        getEnvInt("HEALTH_AGENT_API_PORT", 18082),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogUserQueries: getEnvBool("LOG_USER_QUERIES", false),

		KnowledgeSource:   getEnv("KNOWLEDGE_SOURCE", KnowledgeSourceFile),
		KnowledgeBasePath: getEnv("KNOWLEDGE_BASE_PATH", "data/knowledge_base.json"),
		WatchKnowledge:    getEnvBool("KNOWLEDGE_WATCH", false),
		IntentModelPath:   getEnv("INTENT_MODEL_PATH", "models/intent_model.json"),
		WellnessTipsPath:  getEnv("WELLNESS_TIPS_PATH", "data/wellness_tips.json"),
		MedicalTermsPath:  getEnv("MEDICAL_TERMS_PATH", "data/medical_terms.json"),
		RetrievalTopK:     getEnvInt("RETRIEVAL_TOP_K", retrieval.DefaultTopK),

		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", ""),
		OCREnabled:    getEnvBool("OCR_ENABLED", false),

		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		StreamProvider: getEnv("STREAM_PROVIDER", "redis"),

		Database: LoadDatabaseConfig(),
	}
}

func LoadDatabaseConfig() database.Config {
	return database.Config{
		Host:     getEnv("HEALTH_DB_HOST", "localhost"),
		Port:     getEnv("HEALTH_DB_PORT", "5432"),
		User:     getEnv("HEALTH_DB_USER", "postgres"),
		Password: getEnv("HEALTH_DB_PASSWORD", ""),
		Database: getEnv("HEALTH_DB_NAME", "health_agent"),
		SSLMode:  getEnv("HEALTH_DB_SSLMODE", "disable"),
	}
}

// Wire loads every startup artifact. Any failure here is fatal for the
// binary: a missing model or knowledge base must not produce a half-working
// service.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	intentsConfig, err := config.LoadIntentsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load intents config: %w", err)
	}

	model, err := intentmodel.Load(cfg.IntentModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load intent model: %w", err)
	}
	logger.Info().
		Str("name", model.Name()).
		Str("version", model.Version()).
		Strs("classes", model.Classes()).
		Msg("Intent model loaded")

	intents, err := classifier.New(classifier.BuildRules(intentsConfig), model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build intent classifier: %w", err)
	}

	deps := &Dependencies{
		Metrics: metrics.NewCollector(),
		Logger:  logger,
	}

	source, err := knowledgeSource(ctx, cfg, deps)
	if err != nil {
		return nil, err
	}

	opts := tfidf.DefaultOptions()
	idx, err := knowledge.BuildIndex(ctx, source, opts, logger)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Knowledge = retrieval.NewStore(idx)
	deps.Metrics.KnowledgeSize.Set(float64(idx.Len()))

	if fileSource, ok := source.(*knowledge.FileSource); ok && cfg.WatchKnowledge {
		deps.Watcher = knowledge.NewWatcher(fileSource, deps.Knowledge, opts, logger).
			OnSwap(func(idx *retrieval.Index) {
				deps.Metrics.KnowledgeSize.Set(float64(idx.Len()))
			})
	}

	deps.Pipeline = pipeline.NewPipeline(
		guardrails.NewGuardrails(logger),
		intents,
		entities.NewExtractor(nlp.NewProseAnalyzer(nlp.DefaultLexicon())),
		deps.Knowledge,
		composer.NewComposer(),
		pipeline.Config{TopK: cfg.RetrievalTopK, LogQueries: cfg.LogUserQueries},
		logger,
	).WithRecorder(deps.Metrics)

	tips, err := wellness.LoadTips(cfg.WellnessTipsPath)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to load wellness tips: %w", err)
	}
	deps.Recommender = wellness.NewRecommender(tips)

	dictionary, err := report.LoadDictionary(cfg.MedicalTermsPath)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to load medical terms: %w", err)
	}

	var ocr report.OCR
	if cfg.OCREnabled {
		client, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
		}
		ocr = bedrock.NewOCR(client, bedrock.DefaultBreakerConfig(), logger)
	} else {
		logger.Warn().Msg("OCR disabled, report image uploads will be rejected")
	}
	deps.Reports = report.NewProcessor(ocr, report.NewSimplifier(dictionary), logger)

	return deps, nil
}

func knowledgeSource(ctx context.Context, cfg *Config, deps *Dependencies) (knowledge.Source, error) {
	switch cfg.KnowledgeSource {
	case KnowledgeSourceFile, "":
		return knowledge.NewFileSource(cfg.KnowledgeBasePath), nil
	case KnowledgeSourcePostgres:
		db, err := database.New(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		deps.DB = db
		return knowledge.NewPostgresSource(db), nil
	default:
		return nil, fmt.Errorf("unsupported knowledge source: %s", cfg.KnowledgeSource)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
