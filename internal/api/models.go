package api

import "github.com/povarna/generative-ai-agents/health-agent/internal/retrieval"

type HealthResponse struct {
	Status           string `json:"status" description:"Service status"`
	Version          string `json:"version" description:"API version"`
	KnowledgeEntries int    `json:"knowledge_entries" description:"Entries in the live knowledge index"`
}

type SimplifyRequest struct {
	Text string `json:"text" description:"Medical report text" validate:"max=50000"`
}

type TopicsResponse struct {
	Count  int      `json:"count" description:"Number of knowledge entries"`
	Topics []string `json:"topics" description:"Entry topics in knowledge base order"`
}

type SearchResponse struct {
	Query   string            `json:"query" description:"Search text"`
	Matches []retrieval.Match `json:"matches" description:"Ranked matches with similarity scores"`
}
