// Package wellness matches user goals to wellness tips and decides when a
// proactive nudge is due.
package wellness

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

const DefaultGoal = "general_wellness"

var ErrNoTips = errors.New("no wellness tips loaded")

type Recommender struct {
	tips []models.WellnessTip
	// pick returns an index in [0, n).
	pick func(n int) int
}

func NewRecommender(tips []models.WellnessTip) *Recommender {
	return &Recommender{
		tips: tips,
		pick: rand.IntN,
	}
}

// LoadTips reads a JSON array of tips.
func LoadTips(path string) ([]models.WellnessTip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wellness tips %s: %w", path, err)
	}

	var tips []models.WellnessTip
	if err := json.Unmarshal(data, &tips); err != nil {
		return nil, fmt.Errorf("failed to parse wellness tips %s: %w", path, err)
	}
	return tips, nil
}

// Recommend picks a random tip sharing at least one goal with the profile,
// or any tip when none does. A profile without goals is treated as
// general_wellness.
func (r *Recommender) Recommend(profile models.UserProfile) (models.Recommendation, error) {
	if len(r.tips) == 0 {
		return models.Recommendation{}, ErrNoTips
	}

	goals := profile.HealthGoals
	if len(goals) == 0 {
		goals = []string{DefaultGoal}
	}

	candidates := make([]models.WellnessTip, 0, len(r.tips))
	for _, tip := range r.tips {
		if sharesGoal(tip.HealthGoals, goals) {
			candidates = append(candidates, tip)
		}
	}
	if len(candidates) == 0 {
		candidates = r.tips
	}

	return models.Recommendation{
		Tip:    candidates[r.pick(len(candidates))],
		Reason: "This tip aligns with your health goals: " + strings.Join(goals, ", "),
	}, nil
}

func (r *Recommender) Len() int {
	return len(r.tips)
}

func sharesGoal(tipGoals, goals []string) bool {
	for _, g := range goals {
		if slices.Contains(tipGoals, g) {
			return true
		}
	}
	return false
}
