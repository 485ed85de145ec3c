package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeQueries struct {
	calls atomic.Int32
}

func (f *fakeQueries) Process(_ context.Context, req models.QueryRequest) models.QueryOutcome {
	f.calls.Add(1)
	intent := models.IntentGeneralWellness
	if strings.Contains(req.Query, "chest") {
		return models.QueryOutcome{ID: req.ID, Intent: models.IntentEmergencyDetected, Method: "safety", Confidence: 1, Safety: models.SafetyEmergency, Duration: 2 * time.Millisecond}
	}
	return models.QueryOutcome{ID: req.ID, Intent: intent, Method: "rule", Confidence: 0.9, Safety: models.SafetyNone, Duration: 4 * time.Millisecond}
}

func collect(ch <-chan Result) map[string]Result {
	out := map[string]Result{}
	for r := range ch {
		out[r.ID] = r
	}
	return out
}

func TestProcessor_AnswersEveryRecord(t *testing.T) {
	queries := &fakeQueries{}
	p := NewProcessor(queries, 3, newTestLogger())

	records := []InputRecord{
		{LineNumber: 1, Request: models.QueryRequest{ID: "a", Query: "sleep tips"}},
		{LineNumber: 2, Request: models.QueryRequest{Query: "chest pain in my arm"}},
		{LineNumber: 3, Error: errors.New("line 3: invalid JSON")},
		{LineNumber: 4, Request: models.QueryRequest{ID: "d", Query: "hydration"}},
	}

	results := collect(p.Process(context.Background(), records))

	require.Len(t, results, 4)
	require.EqualValues(t, 3, queries.calls.Load())
	require.Equal(t, models.IntentEmergencyDetected, results["line-2"].Outcome.Intent)
	require.Nil(t, results["line-3"].Outcome)
	require.Contains(t, results["line-3"].Error, "invalid JSON")
	require.Equal(t, 4, results["d"].LineNumber)
}

func TestProcessor_CancelledContextSkips(t *testing.T) {
	queries := &fakeQueries{}
	p := NewProcessor(queries, 2, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := collect(p.Process(ctx, []InputRecord{
		{LineNumber: 1, Request: models.QueryRequest{ID: "a", Query: "x"}},
	}))

	require.Zero(t, queries.calls.Load())
	require.Equal(t, ErrSkipped.Error(), results["a"].Error)
}

func TestWriter_JSONLAndSummary(t *testing.T) {
	var out bytes.Buffer
	w, err := NewWriter(&out, FormatJSONL, newTestLogger())
	require.NoError(t, err)

	queries := &fakeQueries{}
	for r := range NewProcessor(queries, 2, newTestLogger()).Process(context.Background(), []InputRecord{
		{LineNumber: 1, Request: models.QueryRequest{ID: "a", Query: "sleep"}},
		{LineNumber: 2, Request: models.QueryRequest{ID: "b", Query: "chest pain arm"}},
		{LineNumber: 3, Error: errors.New("bad")},
	}) {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	var first Result
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))

	s := w.Summary()
	require.Equal(t, 3, s.Total)
	require.Equal(t, 2, s.Answered)
	require.Equal(t, 1, s.Failed)
	require.Equal(t, 1, s.BySafety[models.SafetyEmergency])
	require.Equal(t, 1, s.ByMethod["rule"])
	require.InDelta(t, 0.95, s.MeanConfidence, 1e-9)
	require.Equal(t, 3*time.Millisecond, s.MeanDuration)
	require.Equal(t, 4*time.Millisecond, s.MaxDuration)
}

func TestWriter_SummaryFormat(t *testing.T) {
	var out bytes.Buffer
	w, err := NewWriter(&out, FormatSummary, newTestLogger())
	require.NoError(t, err)

	require.NoError(t, w.Write(Result{ID: "x", Error: "bad"}))
	require.Zero(t, out.Len())
	require.NoError(t, w.Close())

	var s Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	require.Equal(t, 1, s.Failed)
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "csv", newTestLogger())
	require.Error(t, err)
}
