package models

import (
	"time"
)

type Intent string

const (
	IntentSymptomChecker      Intent = "symptom_checker"
	IntentMedicationExplainer Intent = "medication_explainer"
	IntentGeneralWellness     Intent = "general_wellness"
	IntentMentalHealth        Intent = "mental_health"
	IntentHealthSummary       Intent = "health_summary"
	IntentEmergencyDetected   Intent = "emergency_detected"
	IntentCrisisDetected      Intent = "crisis_detected"
)

type SafetyLevel string

const (
	SafetyNone      SafetyLevel = "none"
	SafetyEmergency SafetyLevel = "emergency"
	SafetyCrisis    SafetyLevel = "crisis"
)

// KnowledgeEntry is one curated record of the knowledge base. Entries are
// identified by their position in the loaded collection.
type KnowledgeEntry struct {
	Topic    string   `json:"topic" validate:"required"`
	Keywords []string `json:"keywords"`
	Content  string   `json:"content" validate:"required"`
}

type IntentResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"` // "rule" or "model"
}

// EntityBag holds extracted spans. Duplicates are allowed.
type EntityBag struct {
	Symptoms    []string `json:"symptoms"`
	BodyParts   []string `json:"body_parts"`
	Medications []string `json:"medications"`
	General     []string `json:"general"`
}

func NewEntityBag() EntityBag {
	return EntityBag{
		Symptoms:    []string{},
		BodyParts:   []string{},
		Medications: []string{},
		General:     []string{},
	}
}

// Input message

type QueryRequest struct {
	ID    string `json:"id,omitempty"`
	Query string `json:"query" validate:"max=20000"`
}

// QueryOutcome is the externally visible result of processing one query.
type QueryOutcome struct {
	ID         string           `json:"id,omitempty"`
	Response   string           `json:"response"`
	Intent     Intent           `json:"intent"`
	Confidence float64          `json:"confidence"`
	Method     string           `json:"method"`
	Entities   EntityBag        `json:"entities"`
	Sources    []KnowledgeEntry `json:"sources"`
	Safety     SafetyLevel      `json:"safety"`
	Duration   time.Duration    `json:"duration_ns"`
}

type WellnessTip struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	HealthGoals []string `json:"health_goals"`
}

type UserProfile struct {
	HealthGoals []string `json:"health_goals" validate:"omitempty,dive,required"`
}

type Recommendation struct {
	Tip    WellnessTip `json:"tip"`
	Reason string      `json:"reason"`
}

// HealthData carries recent self-reported measurements. Nil fields fall back
// to neutral defaults.
type HealthData struct {
	AvgSleepHours *float64 `json:"avg_sleep_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	StressLevel   *string  `json:"stress_level,omitempty" validate:"omitempty,oneof=low medium high"`
	DailySteps    *int     `json:"daily_steps,omitempty" validate:"omitempty,gte=0"`
}

type NudgeType string

const (
	NudgeSleepHygiene     NudgeType = "sleep_hygiene"
	NudgeStressManagement NudgeType = "stress_management"
	NudgePhysicalActivity NudgeType = "physical_activity"
)

type Nudge struct {
	ShouldNudge bool      `json:"should_nudge"`
	Type        NudgeType `json:"type,omitempty"`
}

type TermMatch struct {
	Complex string `json:"complex"`
	Simple  string `json:"simple"`
}

type SimplifiedReport struct {
	OriginalText   string      `json:"original_text"`
	SimplifiedText string      `json:"simplified_text"`
	TermsFound     []TermMatch `json:"terms_found"`
}
