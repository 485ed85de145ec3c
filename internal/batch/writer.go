package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Writer emits one JSON line per result, or only the final summary.
// Results are always folded into the summary.
type Writer struct {
	encoder *json.Encoder
	format  string
	summary *Summary
	logger  *zerolog.Logger
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Writer{
		encoder: json.NewEncoder(output),
		format:  format,
		summary: NewSummary(),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result Result) error {
	w.summary.Add(result)
	if w.format != FormatJSONL {
		return nil
	}
	if err := w.encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to write result %s: %w", result.ID, err)
	}
	return nil
}

func (w *Writer) Summary() *Summary {
	return w.summary
}

// Close flushes the summary in summary format.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}
	w.encoder.SetIndent("", "  ")
	if err := w.encoder.Encode(w.summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	w.logger.Info().Int("total", w.summary.Total).Int("failed", w.summary.Failed).Msg("Summary written")
	return nil
}

// WriteSummary writes s as indented JSON.
func WriteSummary(output io.Writer, s *Summary) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}
