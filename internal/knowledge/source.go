// Package knowledge loads the curated knowledge base from a JSON file or
// Postgres and keeps the retrieval index current.
package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/health-agent/internal/database"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/validation"
)

var ErrEmptyKnowledgeBase = errors.New("knowledge base has no entries")

type Source interface {
	Load(ctx context.Context) ([]models.KnowledgeEntry, error)
	Describe() string
}

// FileSource reads a JSON array of entries.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Describe() string {
	return "file:" + s.path
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Load(_ context.Context) ([]models.KnowledgeEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base %s: %w", s.path, err)
	}

	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("knowledge base %s: %w", s.path, err)
	}
	return entries, nil
}

// Decode parses and validates a JSON knowledge base.
func Decode(data []byte) ([]models.KnowledgeEntry, error) {
	var entries []models.KnowledgeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Validate requires at least one entry and a topic and content on each.
// Topics must be unique.
func Validate(entries []models.KnowledgeEntry) error {
	if len(entries) == 0 {
		return ErrEmptyKnowledgeBase
	}

	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		if err := validation.Struct(entry); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if prev, dup := seen[entry.Topic]; dup {
			return fmt.Errorf("%w: entry %d repeats topic %q of entry %d", validation.ErrInvalid, i, entry.Topic, prev)
		}
		seen[entry.Topic] = i
	}
	return nil
}

type knowledgeStore interface {
	ListKnowledgeEntries(ctx context.Context) ([]database.KnowledgeRow, error)
}

// PostgresSource reads entries from the knowledge_entries table.
type PostgresSource struct {
	db knowledgeStore
}

func NewPostgresSource(db knowledgeStore) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Describe() string {
	return "postgres:knowledge_entries"
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.KnowledgeEntry, error) {
	rows, err := s.db.ListKnowledgeEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.KnowledgeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.Entry())
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
