package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/averycrespi/exprlab/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListEvaluatorsTool handles list evaluators requests
type ListEvaluatorsTool struct{}

// NewListEvaluatorsTool creates a new list evaluators tool
func NewListEvaluatorsTool() *ListEvaluatorsTool {
	return &ListEvaluatorsTool{}
}

// GetTool returns the MCP tool definition
func (t *ListEvaluatorsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListEvaluators,
		mcp.WithDescription("List the available expression evaluators and whether each supports shuffling its operands"),
	)
}

// Handle processes the tool request
func (t *ListEvaluatorsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolResult := results.ListEvaluatorsToolResult{
		Evaluators: make([]results.EvaluatorInfo, 0, len(evaluator.Kinds())),
	}

	for _, kind := range evaluator.Kinds() {
		e, err := evaluator.New(kind, 1)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create evaluator: %v", err)), nil
		}
		_, shuffleable := evaluator.AsShuffler(e)

		toolResult.Evaluators = append(toolResult.Evaluators, results.EvaluatorInfo{
			Kind:        string(kind),
			Name:        e.Name(),
			Operation:   kind.Operation(),
			Shuffleable: shuffleable,
		})
	}
	toolResult.Message = fmt.Sprintf("Found %d evaluators.", len(toolResult.Evaluators))

	return jsonResult(toolResult)
}
