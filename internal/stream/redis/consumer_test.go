package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// noBlock makes XREADGROUP return immediately.
const noBlock = -1

type echoProcessor struct {
	seen []models.QueryRequest
}

func (p *echoProcessor) Process(_ context.Context, req models.QueryRequest) models.QueryOutcome {
	p.seen = append(p.seen, req)
	return models.QueryOutcome{
		ID:       req.ID,
		Response: "echo: " + req.Query,
		Intent:   models.IntentGeneralWellness,
		Safety:   models.SafetyNone,
	}
}

func setupConsumer(t *testing.T) (*Consumer, *redis.Client, *echoProcessor) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zerolog.Nop()
	processor := &echoProcessor{}
	consumer := NewConsumer(client, NewRedisStreamConfig(mr.Addr(), "", "test-consumer"), processor, &logger)
	require.NoError(t, consumer.Setup(context.Background()))
	return consumer, client, processor
}

func readOutcomes(t *testing.T, client *redis.Client) []models.QueryOutcome {
	t.Helper()
	msgs, err := client.XRange(context.Background(), DefaultOutcomeStream, "-", "+").Result()
	require.NoError(t, err)

	var outcomes []models.QueryOutcome
	for _, msg := range msgs {
		var o models.QueryOutcome
		require.NoError(t, json.Unmarshal([]byte(msg.Values[PayloadField].(string)), &o))
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func pending(t *testing.T, client *redis.Client) int64 {
	t.Helper()
	p, err := client.XPending(context.Background(), DefaultQueryStream, DefaultGroup).Result()
	require.NoError(t, err)
	return p.Count
}

func TestConsumer_SetupIsIdempotent(t *testing.T) {
	consumer, _, _ := setupConsumer(t)

	require.NoError(t, consumer.Setup(context.Background()))
}

func TestConsumer_ProcessesAndPublishes(t *testing.T) {
	consumer, client, processor := setupConsumer(t)
	ctx := context.Background()

	_, err := Publish(ctx, client, DefaultQueryStream, models.QueryRequest{ID: "q-1", Query: "tips for sleep"})
	require.NoError(t, err)

	n, err := consumer.poll(ctx, noBlock)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.Len(t, processor.seen, 1)
	outcomes := readOutcomes(t, client)
	require.Len(t, outcomes, 1)
	require.Equal(t, "q-1", outcomes[0].ID)
	require.Equal(t, "echo: tips for sleep", outcomes[0].Response)
	require.Zero(t, pending(t, client))
}

func TestConsumer_MissingIDUsesEntryID(t *testing.T) {
	consumer, client, _ := setupConsumer(t)
	ctx := context.Background()

	entryID, err := Publish(ctx, client, DefaultQueryStream, models.QueryRequest{Query: "fever"})
	require.NoError(t, err)

	_, err = consumer.poll(ctx, noBlock)
	require.NoError(t, err)

	outcomes := readOutcomes(t, client)
	require.Len(t, outcomes, 1)
	require.Equal(t, entryID, outcomes[0].ID)
}

func TestConsumer_BadMessagesAreSkipped(t *testing.T) {
	consumer, client, processor := setupConsumer(t)
	ctx := context.Background()

	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: DefaultQueryStream,
		Values: map[string]any{PayloadField: "{not json"},
	}).Err())
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: DefaultQueryStream,
		Values: map[string]any{"other": "x"},
	}).Err())

	n, err := consumer.poll(ctx, noBlock)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Empty(t, processor.seen)
	require.Empty(t, readOutcomes(t, client))
	require.Zero(t, pending(t, client))
}

func TestConsumer_EmptyStream(t *testing.T) {
	consumer, _, _ := setupConsumer(t)

	n, err := consumer.poll(context.Background(), noBlock)
	require.NoError(t, err)
	require.Zero(t, n)
}
