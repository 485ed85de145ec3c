package stream

import "github.com/povarna/generative-ai-agents/health-agent/internal/stream/redis"

type StreamConfig struct {
	Provider    string // redis, kafka, sqs, etc
	RedisConfig *redis.RedisStreamConfig
}
