package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowstack/lightbulb-mcp-go/internal/bulb"
	"github.com/mark3labs/mcp-go/mcp"
)

// TurnOnTool implements the turn_on_lightbulb MCP tool
type TurnOnTool struct {
	bulb *bulb.Bulb
}

// NewTurnOnTool creates a new turn_on_lightbulb tool instance
func NewTurnOnTool(b *bulb.Bulb) *TurnOnTool {
	return &TurnOnTool{
		bulb: b,
	}
}

// Definition returns the MCP tool definition for turn_on_lightbulb
func (t *TurnOnTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "turn_on_lightbulb",
		Description: "Turn on the lightbulb",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
			Required:   []string{},
		},
	}
}

// Execute runs the turn_on_lightbulb tool
func (t *TurnOnTool) Execute(ctx context.Context, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	err := t.bulb.TurnOn()
	if errors.Is(err, bulb.ErrAlreadyOn) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: "The lightbulb is already on",
				},
			},
			IsError: true,
		}, nil
	}
	if err != nil {
		// Journal write failed after the state change was applied; the
		// bulb is on but the entry is missing.
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf("Failed to log event: %v", err),
				},
			},
			IsError: true,
		}, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: "Lightbulb turned on successfully",
			},
		},
		IsError: false,
	}, nil
}
