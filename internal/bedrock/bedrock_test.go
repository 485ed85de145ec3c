package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type fakeRuntime struct {
	errs   []error
	body   string
	calls  int
	inputs []*bedrockruntime.InvokeModelInput
}

func (f *fakeRuntime) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.calls++
	f.inputs = append(f.inputs, in)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func newTestClient(rt *fakeRuntime) *Client {
	return &Client{
		Client:       rt,
		ModelID:      "anthropic.claude-test",
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}
}

func TestInvokeModel_SendsImageBlock(t *testing.T) {
	rt := &fakeRuntime{body: `{"content":[{"type":"text","text":"Line 1"},{"type":"text","text":"Line 2"}],"stop_reason":"end_turn"}`}
	c := newTestClient(rt)

	resp, err := c.InvokeModel(context.Background(), ClaudeRequest{
		Prompt: "read", Image: []byte{1, 2, 3}, MediaType: "image/png", MaxTokens: 10,
	})

	require.NoError(t, err)
	require.Equal(t, "Line 1\nLine 2", resp.Content)
	require.Equal(t, "end_turn", resp.StopReason)

	var sent claudeMessageRequest
	require.NoError(t, json.Unmarshal(rt.inputs[0].Body, &sent))
	require.Equal(t, anthropicVersion, sent.AnthropicVersion)
	blocks := sent.Messages[0].Content
	require.Len(t, blocks, 2)
	require.Equal(t, "image", blocks[0].Type)
	require.Equal(t, "AQID", blocks[0].Source.Data)
	require.Equal(t, "text", blocks[1].Type)
}

func TestInvokeModel_TextOnly(t *testing.T) {
	rt := &fakeRuntime{body: `{"content":[{"type":"text","text":"hi"}]}`}

	_, err := newTestClient(rt).InvokeModel(context.Background(), ClaudeRequest{Prompt: "hello"})

	require.NoError(t, err)
	var sent claudeMessageRequest
	require.NoError(t, json.Unmarshal(rt.inputs[0].Body, &sent))
	require.Len(t, sent.Messages[0].Content, 1)
}

func TestInvokeModelWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantErr   string
		wantCalls int
	}{
		{name: "succeeds after throttling", errs: []error{errors.New("ThrottlingException: slow down"), nil}, wantCalls: 2},
		{name: "non retryable fails fast", errs: []error{errors.New("ValidationException: bad body")}, wantErr: "non-retryable", wantCalls: 1},
		{
			name:      "gives up after max retries",
			errs:      []error{errors.New("ServiceUnavailableException"), errors.New("ServiceUnavailableException"), errors.New("ServiceUnavailableException")},
			wantErr:   "max retries 3 exceeded",
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &fakeRuntime{errs: tt.errs, body: `{"content":[{"type":"text","text":"ok"}]}`}

			resp, err := newTestClient(rt).InvokeModelWithRetry(context.Background(), ClaudeRequest{Prompt: "x"})

			require.Equal(t, tt.wantCalls, rt.calls)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "ok", resp.Content)
		})
	}
}

func TestCalculateBackoff_Bounds(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := calculateBackoff(attempt, 100*time.Millisecond, time.Second)
		require.LessOrEqual(t, d, 1200*time.Millisecond)
		require.GreaterOrEqual(t, d, 80*time.Millisecond)
	}
}

type fakeInvoker struct {
	content string
	err     error
	calls   int
}

func (f *fakeInvoker) InvokeModelWithRetry(context.Context, ClaudeRequest) (*ClaudeResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &ClaudeResponse{Content: f.content}, nil
}

func TestOCR_ExtractText(t *testing.T) {
	ocr := NewOCR(&fakeInvoker{content: "\n Hemoglobin 13.2 g/dL \n"}, DefaultBreakerConfig(), newTestLogger())

	text, err := ocr.ExtractText(context.Background(), []byte("png"))

	require.NoError(t, err)
	require.Equal(t, "Hemoglobin 13.2 g/dL", text)
}

func TestOCR_BreakerOpensAfterFailures(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("ServiceUnavailableException")}
	cfg := DefaultBreakerConfig()
	ocr := NewOCR(inv, cfg, newTestLogger())

	for i := 0; i < int(cfg.MinRequests); i++ {
		_, err := ocr.ExtractText(context.Background(), []byte("png"))
		require.Error(t, err)
	}
	require.Equal(t, gobreaker.StateOpen, ocr.State())

	_, err := ocr.ExtractText(context.Background(), []byte("png"))
	require.ErrorIs(t, err, ErrOCRUnavailable)
	require.Equal(t, int(cfg.MinRequests), inv.calls, "open breaker must not reach Bedrock")
}

func TestOCR_CancellationDoesNotTrip(t *testing.T) {
	inv := &fakeInvoker{err: context.Canceled}
	ocr := NewOCR(inv, DefaultBreakerConfig(), newTestLogger())

	for i := 0; i < 10; i++ {
		_, err := ocr.ExtractText(context.Background(), []byte("png"))
		require.ErrorIs(t, err, context.Canceled)
	}
	require.Equal(t, gobreaker.StateClosed, ocr.State())
}
