package domain

import (
	"context"

	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RollStatsInput represents the MCP tool input for rolling extra stats.
type RollStatsInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for replayable dice"`
}

// RollStatsResult represents the MCP tool output for rolled extra stats.
type RollStatsResult struct {
	Hearing  int   `json:"hearing" jsonschema:"4d6 drop lowest"`
	Eyesight int   `json:"eyesight" jsonschema:"4d6 drop lowest"`
	Smell    int   `json:"smell" jsonschema:"4d6 drop lowest"`
	Morality int   `json:"morality" jsonschema:"4d6 drop lowest"`
	Seed     int64 `json:"seed" jsonschema:"seed the dice were drawn from"`
}

// RollStatsTool defines the MCP tool schema for rolling extra stats.
func RollStatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "harn_roll_stats",
		Description: "Rolls hearing, eyesight, smell and morality as 4d6 dropping the lowest die",
	}
}

// RollStatsHandler rolls the extra stats.
func RollStatsHandler(svc *converter.Service) mcp.ToolHandlerFor[RollStatsInput, RollStatsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollStatsInput) (*mcp.CallToolResult, RollStatsResult, error) {
		extras, seed, err := svc.RollStats(ctx, input.Seed)
		if err != nil {
			return nil, RollStatsResult{}, toolError(err)
		}
		return nil, RollStatsResult{
			Hearing:  extras.Hearing,
			Eyesight: extras.Eyesight,
			Smell:    extras.Smell,
			Morality: extras.Morality,
			Seed:     seed,
		}, nil
	}
}
