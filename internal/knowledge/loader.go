package knowledge

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/health-agent/internal/retrieval"
	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
	"github.com/rs/zerolog"
)

// BuildIndex loads src and fits a fresh retrieval index over it.
func BuildIndex(ctx context.Context, src Source, opts tfidf.Options, logger *zerolog.Logger) (*retrieval.Index, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base from %s: %w", src.Describe(), err)
	}

	idx := retrieval.NewIndex(entries, opts)
	logger.Info().
		Str("source", src.Describe()).
		Int("entries", idx.Len()).
		Int("vocabulary", idx.VocabularySize()).
		Msg("Knowledge index built")

	return idx, nil
}
