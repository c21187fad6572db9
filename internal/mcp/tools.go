package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/models"
	"github.com/scoutedge/scoutedge-api/internal/report"
	"github.com/scoutedge/scoutedge-api/internal/teams"
)

// defaultLastN is used when a caller omits last_n.
const defaultLastN = 10

// ReportGenerator produces a report for a generation request.
type ReportGenerator interface {
	Generate(ctx context.Context, req report.Request) (*models.Report, error)
}

// ReportRecorder receives every successfully generated report.
type ReportRecorder interface {
	Put(r *models.Report)
}

type toolEntry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func scoutingTools(generator ReportGenerator, recorder ReportRecorder, logger *common.Logger) []toolEntry {
	return []toolEntry{
		{GenerateReportTool(), GenerateReportHandler(generator, recorder, logger)},
		{SearchTeamsTool(), SearchTeamsHandler()},
		{VersionTool(), VersionToolHandler()},
	}
}

// GenerateReportTool describes generate_scouting_report.
func GenerateReportTool() mcp.Tool {
	return mcp.NewTool("generate_scouting_report",
		mcp.WithDescription("Generate a scouting report for a team over its most recent matches."),
		mcp.WithString("team_id",
			mcp.Required(),
			mcp.Description("Team identifier, e.g. demo-team-001"),
		),
		mcp.WithNumber("last_n",
			mcp.Description("Number of most recent matches to analyse (default 10)"),
		),
		mcp.WithString("mode",
			mcp.Description("Data source: demo (fixtures) or live"),
			mcp.Enum(models.ModeDemo, models.ModeLive),
		),
	)
}

// GenerateReportHandler builds a report and returns it as JSON text.
func GenerateReportHandler(generator ReportGenerator, recorder ReportRecorder, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req := report.Request{
			TeamID: request.GetString("team_id", ""),
			LastN:  request.GetInt("last_n", defaultLastN),
			Mode:   request.GetString("mode", models.ModeDemo),
		}

		rpt, err := generator.Generate(ctx, req)
		if err != nil {
			if errors.Is(err, report.ErrModeNotImplemented) {
				return errorResult(report.LiveModeMessage), nil
			}
			logger.Warn().
				Str("team_id", req.TeamID).
				Int("last_n", req.LastN).
				Str("error", err.Error()).
				Msg("MCP report generation failed")
			return errorResult(err.Error()), nil
		}

		if recorder != nil {
			recorder.Put(rpt)
		}
		return jsonResult(rpt)
	}
}

// SearchTeamsTool describes search_teams.
func SearchTeamsTool() mcp.Tool {
	return mcp.NewTool("search_teams",
		mcp.WithDescription("Search the team directory by name."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive name fragment; empty lists every team"),
		),
	)
}

// SearchTeamsHandler returns matching teams as JSON text.
func SearchTeamsHandler() server.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(teams.Search(request.GetString("query", "")))
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult marshals v into a text result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal result"), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}, nil
}
