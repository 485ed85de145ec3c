package batch

import (
	"time"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

// Summary aggregates a batch run.
type Summary struct {
	Total          int                        `json:"total"`
	Answered       int                        `json:"answered"`
	Failed         int                        `json:"failed"`
	ByIntent       map[models.Intent]int      `json:"by_intent"`
	BySafety       map[models.SafetyLevel]int `json:"by_safety"`
	ByMethod       map[string]int             `json:"by_method"`
	MeanConfidence float64                    `json:"mean_confidence"`
	MeanDuration   time.Duration              `json:"mean_duration_ns"`
	MaxDuration    time.Duration              `json:"max_duration_ns"`

	confidenceSum float64
	durationSum   time.Duration
}

func NewSummary() *Summary {
	return &Summary{
		ByIntent: map[models.Intent]int{},
		BySafety: map[models.SafetyLevel]int{},
		ByMethod: map[string]int{},
	}
}

func (s *Summary) Add(result Result) {
	s.Total++
	if result.Outcome == nil {
		s.Failed++
		return
	}

	o := result.Outcome
	s.Answered++
	s.ByIntent[o.Intent]++
	s.BySafety[o.Safety]++
	s.ByMethod[o.Method]++

	s.confidenceSum += o.Confidence
	s.durationSum += o.Duration
	s.MeanConfidence = s.confidenceSum / float64(s.Answered)
	s.MeanDuration = s.durationSum / time.Duration(s.Answered)
	s.MaxDuration = max(s.MaxDuration, o.Duration)
}
