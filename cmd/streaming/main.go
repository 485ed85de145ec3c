package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/health-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/health-agent/internal/stream"
	"github.com/povarna/generative-ai-agents/health-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	consumerName, _ := os.Hostname()
	redisCfg := redis.NewRedisStreamConfig(cfg.RedisAddr, cfg.RedisPassword, consumerName)
	if s := os.Getenv("QUERY_STREAM"); s != "" {
		redisCfg.Stream = s
	}
	if s := os.Getenv("OUTCOME_STREAM"); s != "" {
		redisCfg.OutputStream = s
	}

	streamCfg := &stream.StreamConfig{
		Provider:    cfg.StreamProvider,
		RedisConfig: redisCfg,
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Pipeline, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}
	defer consumer.Stop()

	// Setup consumer
	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	if deps.Watcher != nil {
		go func() {
			if err := deps.Watcher.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("Knowledge base watcher stopped")
			}
		}()
	}

	// Start consumer
	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Wait for context to be done
	<-ctx.Done()
	logger.Info().Msg("Shutting down...")

	log.Info().Msg("Health Agent stream consumer stopped")
}
