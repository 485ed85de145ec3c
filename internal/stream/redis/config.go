package redis

const (
	DefaultQueryStream   = "health-queries"
	DefaultOutcomeStream = "health-outcomes"
	DefaultGroup         = "health-agent"

	// PayloadField holds the JSON body of every stream entry.
	PayloadField = "payload"
)

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	OutputStream  string
	Group         string
	ConsumerName  string
	// MaxOutputLen caps the outcome stream (approximate trimming). Zero keeps everything.
	MaxOutputLen int64
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, consumerName string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        DefaultQueryStream,
		OutputStream:  DefaultOutcomeStream,
		Group:         DefaultGroup,
		ConsumerName:  consumerName,
		MaxOutputLen:  10000,
	}
}
