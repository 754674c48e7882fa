package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowstack/lightbulb-mcp-go/internal/bulb"
	"github.com/mark3labs/mcp-go/mcp"
)

// TurnOffTool implements the turn_off_lightbulb MCP tool
type TurnOffTool struct {
	bulb *bulb.Bulb
}

// NewTurnOffTool creates a new turn_off_lightbulb tool instance
func NewTurnOffTool(b *bulb.Bulb) *TurnOffTool {
	return &TurnOffTool{
		bulb: b,
	}
}

// Definition returns the MCP tool definition for turn_off_lightbulb
func (t *TurnOffTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "turn_off_lightbulb",
		Description: "Turn off the lightbulb",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
			Required:   []string{},
		},
	}
}

// Execute runs the turn_off_lightbulb tool
func (t *TurnOffTool) Execute(ctx context.Context, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	err := t.bulb.TurnOff()
	if errors.Is(err, bulb.ErrAlreadyOff) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: "The lightbulb is already off",
				},
			},
			IsError: true,
		}, nil
	}
	if err != nil {
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
				Text: "Lightbulb turned off successfully",
			},
		},
		IsError: false,
	}, nil
}
