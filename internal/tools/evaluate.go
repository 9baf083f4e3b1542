package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/exprlab/internal/results"
	"github.com/averycrespi/exprlab/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// EvaluateTool handles evaluate requests
type EvaluateTool struct {
	config types.Config
}

// NewEvaluateTool creates a new evaluate tool
func NewEvaluateTool(config types.Config) *EvaluateTool {
	return &EvaluateTool{
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Calculate an expression over a list of operands, returning its expression string, result and log record"),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Evaluator kind"), mcp.Enum(kindNames()...)),
		mcp.WithArray("operands", mcp.Required(), mcp.Description("Operands, in order"), mcp.Items(map[string]any{"type": "number"})),
		mcp.WithNumber("count", mcp.Description("Fixed operand count; defaults to the number of operands given. Extra operands are dropped, missing ones are 0")),
	)
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operands, err := ParseOperands(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	e, err := buildEvaluator(req, operands)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create evaluator: %v", err)), nil
	}

	if t.config.LogFile != "" {
		e.LogToFile(t.config.LogFile)
	}
	slog.Debug("Evaluated expression", "name", e.Name(), "count", e.OperandCount())

	toolResult := results.EvaluateToolResult{
		Message: fmt.Sprintf("Evaluated %s over %d operands.", e.Name(), e.OperandCount()),
		Arguments: results.EvaluateToolArgs{
			Kind:     mcp.ParseString(req, "kind", ""),
			Operands: operands,
			Count:    int(mcp.ParseFloat64(req, "count", 0)),
		},
		Evaluation: results.NewEvaluation(e),
	}

	return jsonResult(toolResult)
}
