package mcpadapter

import "github.com/modelcontextprotocol/go-sdk/mcp"

const (
	ServerName    = "health-agent"
	ServerVersion = "1.0.0"
)

// NewServer registers every health tool on a fresh MCP server.
func NewServer(queries QueryProcessor, recommender Recommender, reports ReportSimplifier) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "process_query",
		Description: "Answer a health question. Emergencies and crisis statements return a fixed safety message; otherwise the answer is composed from the curated knowledge base.",
	}, NewProcessQueryHandler(queries))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_wellness_tip",
		Description: "Pick a wellness tip matching the user's health goals",
	}, NewRecommendHandler(recommender))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_nudge",
		Description: "Decide whether recent sleep, stress or activity data warrants a nudge",
	}, NewCheckNudgeHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "simplify_medical_report",
		Description: "Annotate medical jargon in report text with plain-language explanations",
	}, NewSimplifyReportHandler(reports))

	return server
}
