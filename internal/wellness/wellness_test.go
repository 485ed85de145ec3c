package wellness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/stretchr/testify/require"
)

var testTips = []models.WellnessTip{
	{ID: "t1", Title: "Wind down", Category: "sleep", HealthGoals: []string{"better_sleep"}},
	{ID: "t2", Title: "Walk after lunch", Category: "activity", HealthGoals: []string{"fitness", "general_wellness"}},
	{ID: "t3", Title: "Box breathing", Category: "stress", HealthGoals: []string{"stress_reduction"}},
	{ID: "t4", Title: "Screens off", Category: "sleep", HealthGoals: []string{"better_sleep", "stress_reduction"}},
}

// recorder returns a deterministic picker that always takes the last
// candidate and remembers how many there were.
func recorder(seen *int) func(int) int {
	return func(n int) int {
		*seen = n
		return n - 1
	}
}

func TestRecommend_FiltersByGoal(t *testing.T) {
	r := NewRecommender(testTips)
	var n int
	r.pick = recorder(&n)

	rec, err := r.Recommend(models.UserProfile{HealthGoals: []string{"better_sleep"}})

	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "t4", rec.Tip.ID)
	require.Equal(t, "This tip aligns with your health goals: better_sleep", rec.Reason)
}

func TestRecommend_AnyGoalMatches(t *testing.T) {
	r := NewRecommender(testTips)
	var n int
	r.pick = recorder(&n)

	rec, err := r.Recommend(models.UserProfile{HealthGoals: []string{"fitness", "stress_reduction"}})

	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "This tip aligns with your health goals: fitness, stress_reduction", rec.Reason)
}

func TestRecommend_DefaultsToGeneralWellness(t *testing.T) {
	r := NewRecommender(testTips)
	var n int
	r.pick = recorder(&n)

	rec, err := r.Recommend(models.UserProfile{})

	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "t2", rec.Tip.ID)
	require.Contains(t, rec.Reason, "general_wellness")
}

func TestRecommend_NoMatchUsesAllTips(t *testing.T) {
	r := NewRecommender(testTips)
	var n int
	r.pick = recorder(&n)

	_, err := r.Recommend(models.UserProfile{HealthGoals: []string{"weight_loss"}})

	require.NoError(t, err)
	require.Equal(t, len(testTips), n)
}

func TestRecommend_NoTips(t *testing.T) {
	_, err := NewRecommender(nil).Recommend(models.UserProfile{})
	require.ErrorIs(t, err, ErrNoTips)
}

func TestRecommend_RandomPickStaysInCandidates(t *testing.T) {
	r := NewRecommender(testTips)

	for i := 0; i < 50; i++ {
		rec, err := r.Recommend(models.UserProfile{HealthGoals: []string{"stress_reduction"}})
		require.NoError(t, err)
		require.Contains(t, []string{"t3", "t4"}, rec.Tip.ID)
	}
}

func ptr[T any](v T) *T { return &v }

func TestCheckNudge(t *testing.T) {
	tests := []struct {
		name string
		data models.HealthData
		want models.Nudge
	}{
		{name: "no data", data: models.HealthData{}, want: models.Nudge{}},
		{name: "short sleep", data: models.HealthData{AvgSleepHours: ptr(5.5)}, want: models.Nudge{ShouldNudge: true, Type: models.NudgeSleepHygiene}},
		{name: "six hours is enough", data: models.HealthData{AvgSleepHours: ptr(6.0)}, want: models.Nudge{}},
		{name: "high stress", data: models.HealthData{StressLevel: ptr("high")}, want: models.Nudge{ShouldNudge: true, Type: models.NudgeStressManagement}},
		{name: "medium stress", data: models.HealthData{StressLevel: ptr("medium")}, want: models.Nudge{}},
		{name: "low steps", data: models.HealthData{DailySteps: ptr(2999)}, want: models.Nudge{ShouldNudge: true, Type: models.NudgePhysicalActivity}},
		{name: "3000 steps is enough", data: models.HealthData{DailySteps: ptr(3000)}, want: models.Nudge{}},
		{
			name: "sleep wins over stress and steps",
			data: models.HealthData{AvgSleepHours: ptr(4.0), StressLevel: ptr("high"), DailySteps: ptr(100)},
			want: models.Nudge{ShouldNudge: true, Type: models.NudgeSleepHygiene},
		},
		{
			name: "stress wins over steps",
			data: models.HealthData{StressLevel: ptr("high"), DailySteps: ptr(100)},
			want: models.Nudge{ShouldNudge: true, Type: models.NudgeStressManagement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CheckNudge(tt.data))
		})
	}
}

func TestLoadTips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tips.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","title":"T","content":"C","category":"sleep","health_goals":["better_sleep"]}]`), 0644))

	tips, err := LoadTips(path)

	require.NoError(t, err)
	require.Len(t, tips, 1)
	require.Equal(t, []string{"better_sleep"}, tips[0].HealthGoals)
}

func TestLoadTips_ShippedData(t *testing.T) {
	tips, err := LoadTips(filepath.Join("..", "..", "data", "wellness_tips.json"))

	require.NoError(t, err)
	require.NotEmpty(t, tips)
	for _, tip := range tips {
		require.NotEmpty(t, tip.ID)
		require.NotEmpty(t, tip.HealthGoals, "tip %s has no goals", tip.ID)
	}
}
