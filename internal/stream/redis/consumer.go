package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const readBlock = 2 * time.Second

type QueryProcessor interface {
	Process(ctx context.Context, req models.QueryRequest) models.QueryOutcome
}

// Consumer reads QueryRequest payloads from a consumer group and publishes
// each QueryOutcome to the output stream before acknowledging.
type Consumer struct {
	client  *redis.Client
	cfg     RedisStreamConfig
	queries QueryProcessor
	logger  *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, queries QueryProcessor, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:  client,
		cfg:     *cfg,
		queries: queries,
		logger:  logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.cfg.Stream).
		Str("output", c.cfg.OutputStream).
		Str("group", c.cfg.Group).
		Str("consumer", c.cfg.ConsumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := c.poll(ctx, readBlock); err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}
			c.logger.Error().Err(err).Msg("Failed to read from stream")
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

// poll reads at most one batch and handles it. It returns the number of
// messages seen; a read timeout is not an error.
func (c *Consumer) poll(ctx context.Context, block time.Duration) (int, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.ConsumerName,
		Streams:  []string{c.cfg.Stream, ">"},
		Count:    10,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, s := range streams {
		for _, msg := range s.Messages {
			c.process(ctx, msg)
			count++
		}
	}
	return count, nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values[PayloadField].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var req models.QueryRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}
	if req.ID == "" {
		req.ID = msg.ID
	}

	outcome := c.queries.Process(ctx, req)

	body, err := json.Marshal(outcome)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to encode outcome")
		c.ack(ctx, msg.ID)
		return
	}

	args := &redis.XAddArgs{
		Stream: c.cfg.OutputStream,
		Values: map[string]any{PayloadField: string(body), "request_id": outcome.ID},
	}
	if c.cfg.MaxOutputLen > 0 {
		args.MaxLen = c.cfg.MaxOutputLen
		args.Approx = true
	}
	if err := c.client.XAdd(ctx, args).Err(); err != nil {
		// left pending so another delivery can retry
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish outcome")
		return
	}

	c.logger.Info().
		Str("id", outcome.ID).
		Str("intent", string(outcome.Intent)).
		Str("safety", string(outcome.Safety)).
		Msg("Query processed")

	c.ack(ctx, msg.ID)
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
