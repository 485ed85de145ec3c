package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS knowledge_entries (
	id         UUID PRIMARY KEY,
	position   INTEGER NOT NULL,
	topic      TEXT NOT NULL UNIQUE,
	keywords   TEXT[] NOT NULL DEFAULT '{}',
	content    TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create knowledge_entries: %w", err)
	}
	return nil
}

func (db *DB) ListKnowledgeEntries(ctx context.Context) ([]KnowledgeRow, error) {
	query := `SELECT id, position, topic, keywords, content, updated_at FROM knowledge_entries ORDER BY position, topic`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch knowledge entries: %w", err)
	}
	defer rows.Close()

	var entries []KnowledgeRow
	for rows.Next() {
		var row KnowledgeRow
		if err := rows.Scan(&row.ID, &row.Position, &row.Topic, &row.Keywords, &row.Content, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge entry: %w", err)
		}
		entries = append(entries, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// UpsertKnowledgeEntries writes entries in one transaction, keyed by topic.
// The slice order becomes the stored position.
func (db *DB) UpsertKnowledgeEntries(ctx context.Context, entries []models.KnowledgeEntry) (int, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO knowledge_entries (id, position, topic, keywords, content, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (topic) DO UPDATE
		SET position = EXCLUDED.position,
		    keywords = EXCLUDED.keywords,
		    content = EXCLUDED.content,
		    updated_at = now()`

	for i, entry := range entries {
		keywords := entry.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		if _, err := tx.Exec(ctx, query, uuid.New(), i, entry.Topic, keywords, entry.Content); err != nil {
			return 0, fmt.Errorf("failed to upsert topic %q: %w", entry.Topic, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit knowledge entries: %w", err)
	}

	log.Info().Int("entries", len(entries)).Msg("Knowledge entries upserted")
	return len(entries), nil
}

func (db *DB) DeleteByTopic(ctx context.Context, topic string) (bool, error) {
	result, err := db.Pool.Exec(ctx, `DELETE FROM knowledge_entries WHERE topic = $1`, topic)
	if err != nil {
		return false, fmt.Errorf("failed to delete topic %q: %w", topic, err)
	}

	if result.RowsAffected() == 0 {
		log.Warn().Str("topic", topic).Msg("Topic not found")
		return false, nil
	}

	log.Info().Str("topic", topic).Msg("Topic deleted")
	return true, nil
}
