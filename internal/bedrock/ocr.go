package bedrock

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

const ocrPrompt = `Transcribe all text in this medical report image exactly as written.
Preserve line breaks. Do not explain, summarize or add anything. If there is no text, reply with an empty message.`

var ErrOCRUnavailable = errors.New("OCR service temporarily unavailable")

type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "bedrock-ocr",
		MaxRequests:      2,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

type invoker interface {
	InvokeModelWithRetry(ctx context.Context, request ClaudeRequest) (*ClaudeResponse, error)
}

// OCR reads report images with Claude vision. Calls go through a circuit
// breaker so a failing Bedrock endpoint is not hammered by uploads.
type OCR struct {
	client  invoker
	breaker *gobreaker.CircuitBreaker
	logger  *zerolog.Logger
}

func NewOCR(client invoker, cfg BreakerConfig, logger *zerolog.Logger) *OCR {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			// a cancelled upload says nothing about Bedrock health
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &OCR{
		client:  client,
		breaker: breaker,
		logger:  logger,
	}
}

func (o *OCR) ExtractText(ctx context.Context, png []byte) (string, error) {
	result, err := o.breaker.Execute(func() (any, error) {
		return o.client.InvokeModelWithRetry(ctx, ClaudeRequest{
			Prompt:      ocrPrompt,
			Image:       png,
			MediaType:   "image/png",
			MaxTokens:   2048,
			Temperature: 0,
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", ErrOCRUnavailable
		}
		return "", err
	}

	return strings.TrimSpace(result.(*ClaudeResponse).Content), nil
}

func (o *OCR) State() gobreaker.State {
	return o.breaker.State()
}
