package database

import (
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

// KnowledgeRow is a stored knowledge entry. Position keeps the curated order,
// which breaks retrieval ties.
type KnowledgeRow struct {
	ID        string
	Position  int
	Topic     string
	Keywords  []string
	Content   string
	UpdatedAt time.Time
}

func (r *KnowledgeRow) Entry() models.KnowledgeEntry {
	return models.KnowledgeEntry{
		Topic:    r.Topic,
		Keywords: r.Keywords,
		Content:  r.Content,
	}
}

func (r *KnowledgeRow) Print() string {
	return fmt.Sprintf("%3d  %-36s  %s (%d keywords)", r.Position, r.ID, r.Topic, len(r.Keywords))
}
