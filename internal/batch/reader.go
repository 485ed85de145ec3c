package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/validation"
	"github.com/rs/zerolog"
)

const maxLineBytes = 1 << 20

// InputRecord is one line of the JSONL input. Error is set when the line
// could not be decoded or failed validation.
type InputRecord struct {
	LineNumber int
	Request    models.QueryRequest
	Error      error
}

type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{input: input, logger: logger}
}

// ReadAll streams records until EOF or ctx is cancelled. Blank lines are
// skipped but still counted.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}

			select {
			case out <- parseRecord(line, text):
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", line+1).Msg("Failed to scan input")
			select {
			case out <- InputRecord{LineNumber: line + 1, Error: fmt.Errorf("failed to read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func parseRecord(line int, text string) InputRecord {
	record := InputRecord{LineNumber: line}
	if err := json.Unmarshal([]byte(text), &record.Request); err != nil {
		record.Error = fmt.Errorf("line %d: invalid JSON: %w", line, err)
		return record
	}
	if err := validation.Struct(record.Request); err != nil {
		record.Error = fmt.Errorf("line %d: %w", line, err)
	}
	return record
}
