package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	red "github.com/povarna/generative-ai-agents/health-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/health-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	query := flag.String("q", "", "Query text to publish")
	data := flag.String("d", "", "Inline JSON QueryRequest (overrides -q)")
	stream := flag.String("stream", redis.DefaultQueryStream, "Stream name")
	flag.Parse()

	if *data == "" && *query == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -q '<query>' | -d '<json>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*query, *data, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(query, data, stream string) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	req := models.QueryRequest{Query: query}
	if data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return err
		}
	}

	ctx := context.Background()
	client, err := red.Connect(ctx, red.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), MaxRetries: 3}, &log.Logger)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.Publish(ctx, client, stream, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("request_id", req.ID).Msg("Published successfully!")
	return nil
}
