package batch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/rs/zerolog"
)

var ErrSkipped = errors.New("skipped: context cancelled")

type QueryProcessor interface {
	Process(ctx context.Context, req models.QueryRequest) models.QueryOutcome
}

// Result pairs an input line with its outcome. Error is empty on success.
type Result struct {
	ID         string               `json:"id"`
	LineNumber int                  `json:"line"`
	Outcome    *models.QueryOutcome `json:"outcome,omitempty"`
	Error      string               `json:"error,omitempty"`
}

type Processor struct {
	queries QueryProcessor
	workers int
	logger  *zerolog.Logger
}

func NewProcessor(queries QueryProcessor, workers int, logger *zerolog.Logger) *Processor {
	if workers <= 0 {
		workers = 1
	}
	return &Processor{queries: queries, workers: workers, logger: logger}
}

// Process answers records on an ants pool. Results arrive in completion
// order; the channel closes once every record has a result.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan Result {
	results := make(chan Result, p.workers)

	go func() {
		defer close(results)

		pool, err := ants.NewPool(p.workers, ants.WithPanicHandler(func(v any) {
			p.logger.Error().Interface("panic", v).Msg("Batch worker panicked")
		}))
		if err != nil {
			p.logger.Error().Err(err).Msg("Failed to create worker pool")
			for _, record := range records {
				results <- failed(record, fmt.Errorf("worker pool unavailable: %w", err))
			}
			return
		}
		defer pool.Release()

		var wg sync.WaitGroup
		for _, record := range records {
			if record.Error != nil {
				results <- failed(record, record.Error)
				continue
			}
			if ctx.Err() != nil {
				results <- failed(record, ErrSkipped)
				continue
			}

			wg.Add(1)
			task := func() {
				defer wg.Done()
				results <- p.answer(ctx, record)
			}
			if err := pool.Submit(task); err != nil {
				wg.Done()
				results <- failed(record, fmt.Errorf("failed to schedule: %w", err))
			}
		}
		wg.Wait()
	}()

	return results
}

func (p *Processor) answer(ctx context.Context, record InputRecord) Result {
	req := record.Request
	if req.ID == "" {
		req.ID = "line-" + strconv.Itoa(record.LineNumber)
	}

	outcome := p.queries.Process(ctx, req)
	p.logger.Debug().
		Str("id", outcome.ID).
		Str("intent", string(outcome.Intent)).
		Dur("duration", outcome.Duration).
		Msg("Record processed")

	return Result{ID: outcome.ID, LineNumber: record.LineNumber, Outcome: &outcome}
}

func failed(record InputRecord, err error) Result {
	id := record.Request.ID
	if id == "" {
		id = "line-" + strconv.Itoa(record.LineNumber)
	}
	return Result{ID: id, LineNumber: record.LineNumber, Error: err.Error()}
}
