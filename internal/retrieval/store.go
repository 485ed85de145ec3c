package retrieval

import (
	"sync/atomic"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

// Store publishes the current Index. Readers always see a complete index;
// a reload swaps in a freshly built one.
type Store struct {
	current atomic.Pointer[Index]
}

func NewStore(idx *Index) *Store {
	s := &Store{}
	s.current.Store(idx)
	return s
}

func (s *Store) Index() *Index {
	return s.current.Load()
}

func (s *Store) Swap(idx *Index) *Index {
	return s.current.Swap(idx)
}

func (s *Store) Search(query string, topK int) []models.KnowledgeEntry {
	return s.current.Load().Search(query, topK)
}
