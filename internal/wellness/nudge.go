package wellness

import "github.com/povarna/generative-ai-agents/health-agent/internal/models"

const (
	defaultSleepHours = 7.0
	defaultStress     = "low"
	defaultSteps      = 5000

	minSleepHours = 6.0
	minDailySteps = 3000
)

// CheckNudge applies the rules in order: short sleep, then high stress, then
// low activity. Missing measurements count as healthy.
func CheckNudge(data models.HealthData) models.Nudge {
	sleep := defaultSleepHours
	if data.AvgSleepHours != nil {
		sleep = *data.AvgSleepHours
	}
	if sleep < minSleepHours {
		return models.Nudge{ShouldNudge: true, Type: models.NudgeSleepHygiene}
	}

	stress := defaultStress
	if data.StressLevel != nil {
		stress = *data.StressLevel
	}
	if stress == "high" {
		return models.Nudge{ShouldNudge: true, Type: models.NudgeStressManagement}
	}

	steps := defaultSteps
	if data.DailySteps != nil {
		steps = *data.DailySteps
	}
	if steps < minDailySteps {
		return models.Nudge{ShouldNudge: true, Type: models.NudgePhysicalActivity}
	}

	return models.Nudge{}
}
