package tools

import (
	"context"

	"github.com/glowstack/lightbulb-mcp-go/internal/bulb"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetStatusTool implements the get_lightbulb_status MCP tool
type GetStatusTool struct {
	bulb *bulb.Bulb
}

// NewGetStatusTool creates a new get_lightbulb_status tool instance
func NewGetStatusTool(b *bulb.Bulb) *GetStatusTool {
	return &GetStatusTool{
		bulb: b,
	}
}

// Definition returns the MCP tool definition for get_lightbulb_status
func (t *GetStatusTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "get_lightbulb_status",
		Description: "Get the current status of the lightbulb",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
			Required:   []string{},
		},
	}
}

// Execute runs the get_lightbulb_status tool. It never fails.
func (t *GetStatusTool) Execute(ctx context.Context, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: t.bulb.StatusText(),
			},
		},
		IsError: false,
	}, nil
}
