package mcpadapter

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/validation"
	"github.com/povarna/generative-ai-agents/health-agent/internal/wellness"
)

var ErrEmptyReportText = errors.New("report text is empty")

type QueryProcessor interface {
	Process(ctx context.Context, req models.QueryRequest) models.QueryOutcome
}

type Recommender interface {
	Recommend(profile models.UserProfile) (models.Recommendation, error)
}

type ReportSimplifier interface {
	Simplify(text string) models.SimplifiedReport
}

// ProcessQueryInput is the MCP tool input schema (matches HTTP API field names).
type ProcessQueryInput struct {
	ID    string `json:"id,omitempty" jsonschema:"optional request identifier echoed in the outcome"`
	Query string `json:"query" jsonschema:"free-text health question"`
}

type RecommendInput struct {
	HealthGoals []string `json:"health_goals,omitempty" jsonschema:"goals such as better_sleep, stress_management, general_wellness"`
}

type CheckNudgeInput struct {
	AvgSleepHours *float64 `json:"avg_sleep_hours,omitempty" jsonschema:"average nightly sleep in hours (default 7)"`
	StressLevel   *string  `json:"stress_level,omitempty" jsonschema:"low, medium or high (default low)"`
	DailySteps    *int     `json:"daily_steps,omitempty" jsonschema:"average daily step count (default 5000)"`
}

type SimplifyReportInput struct {
	Text string `json:"text" jsonschema:"medical report text to annotate with plain-language explanations"`
}

// NewProcessQueryHandler returns a tool handler that answers through the
// query pipeline. Pass the returned function to mcp.AddTool.
func NewProcessQueryHandler(queries QueryProcessor) func(context.Context, *mcp.CallToolRequest, ProcessQueryInput) (*mcp.CallToolResult, models.QueryOutcome, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ProcessQueryInput) (*mcp.CallToolResult, models.QueryOutcome, error) {
		request := models.QueryRequest{ID: input.ID, Query: input.Query}
		if err := validation.Struct(request); err != nil {
			return nil, models.QueryOutcome{}, err
		}
		return nil, queries.Process(ctx, request), nil
	}
}

func NewRecommendHandler(recommender Recommender) func(context.Context, *mcp.CallToolRequest, RecommendInput) (*mcp.CallToolResult, models.Recommendation, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecommendInput) (*mcp.CallToolResult, models.Recommendation, error) {
		recommendation, err := recommender.Recommend(models.UserProfile{HealthGoals: input.HealthGoals})
		return nil, recommendation, err
	}
}

func NewCheckNudgeHandler() func(context.Context, *mcp.CallToolRequest, CheckNudgeInput) (*mcp.CallToolResult, models.Nudge, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CheckNudgeInput) (*mcp.CallToolResult, models.Nudge, error) {
		data := models.HealthData{
			AvgSleepHours: input.AvgSleepHours,
			StressLevel:   input.StressLevel,
			DailySteps:    input.DailySteps,
		}
		if err := validation.Struct(data); err != nil {
			return nil, models.Nudge{}, err
		}
		return nil, wellness.CheckNudge(data), nil
	}
}

func NewSimplifyReportHandler(reports ReportSimplifier) func(context.Context, *mcp.CallToolRequest, SimplifyReportInput) (*mcp.CallToolResult, models.SimplifiedReport, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SimplifyReportInput) (*mcp.CallToolResult, models.SimplifiedReport, error) {
		if strings.TrimSpace(input.Text) == "" {
			return nil, models.SimplifiedReport{}, ErrEmptyReportText
		}
		return nil, reports.Simplify(input.Text), nil
	}
}
