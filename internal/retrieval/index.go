package retrieval

import (
	"sort"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
)

// KeywordBoost is how many times an entry's keywords are repeated in its
// search document.
const KeywordBoost = 5

const DefaultTopK = 3

// Match is one ranked hit. Position is the entry's index in the knowledge base.
type Match struct {
	Entry    models.KnowledgeEntry `json:"entry"`
	Score    float64               `json:"score"`
	Position int                   `json:"position"`
	Rank     int                   `json:"rank"`
}

// Index is built once from a knowledge base and never mutated; it is safe
// for concurrent searches.
type Index struct {
	entries    []models.KnowledgeEntry
	vectorizer *tfidf.Vectorizer
	rows       []tfidf.Vector
}

func NewIndex(entries []models.KnowledgeEntry, opts tfidf.Options) *Index {
	owned := make([]models.KnowledgeEntry, len(entries))
	copy(owned, entries)

	docs := make([]string, len(owned))
	for i, entry := range owned {
		docs[i] = SearchDocument(entry)
	}

	vectorizer := tfidf.Fit(docs, opts)

	rows := make([]tfidf.Vector, len(docs))
	for i, doc := range docs {
		rows[i] = vectorizer.Transform(doc)
	}

	return &Index{
		entries:    owned,
		vectorizer: vectorizer,
		rows:       rows,
	}
}

// SearchDocument is the weighted text indexed for an entry: its topic, its
// keywords repeated KeywordBoost times, then its content.
func SearchDocument(entry models.KnowledgeEntry) string {
	parts := make([]string, 0, 2+KeywordBoost*len(entry.Keywords))
	parts = append(parts, entry.Topic)
	for range KeywordBoost {
		parts = append(parts, entry.Keywords...)
	}
	parts = append(parts, entry.Content)
	return strings.Join(parts, " ")
}

// Search returns up to topK entries, best first.
func (idx *Index) Search(query string, topK int) []models.KnowledgeEntry {
	matches := idx.SearchScored(query, topK)

	entries := make([]models.KnowledgeEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, m.Entry)
	}
	return entries
}

// SearchScored ranks entries by cosine similarity to query and keeps the top
// topK. Ties, zero scores included, keep knowledge base order. A query sharing
// no vocabulary with the corpus yields an empty result.
func (idx *Index) SearchScored(query string, topK int) []Match {
	if topK <= 0 || len(idx.entries) == 0 {
		return []Match{}
	}

	queryVec := idx.vectorizer.Transform(query)
	if len(queryVec) == 0 {
		return []Match{}
	}

	scored := make([]Match, 0, len(idx.rows))
	for i, row := range idx.rows {
		// rows and query are both L2-normalized
		scored = append(scored, Match{
			Entry:    idx.entries[i],
			Score:    row.Dot(queryVec),
			Position: i,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}

	return scored
}

func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Topics lists entry topics in knowledge base order.
func (idx *Index) Topics() []string {
	topics := make([]string, len(idx.entries))
	for i, entry := range idx.entries {
		topics[i] = entry.Topic
	}
	return topics
}

func (idx *Index) VocabularySize() int {
	return idx.vectorizer.VocabularySize()
}
