package tools

import (
	"context"
	"fmt"
	"slices"

	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/averycrespi/exprlab/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ShuffleTool handles shuffle requests
type ShuffleTool struct{}

// NewShuffleTool creates a new shuffle tool
func NewShuffleTool() *ShuffleTool {
	return &ShuffleTool{}
}

// GetTool returns the MCP tool definition
func (t *ShuffleTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolShuffle,
		mcp.WithDescription("Reorder the operands of a shuffleable evaluator by sign. "+
			"Without i and j, every pair i < j with a non-negative operand before a negative one is swapped in a single scan. "+
			"With i and j, the two operands are swapped only if operand i is negative and operand j is not."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Evaluator kind"), mcp.Enum(kindNames()...)),
		mcp.WithArray("operands", mcp.Required(), mcp.Description("Operands, in order"), mcp.Items(map[string]any{"type": "number"})),
		mcp.WithNumber("count", mcp.Description("Fixed operand count; defaults to the number of operands given")),
		mcp.WithNumber("i", mcp.Description("First index of a targeted shuffle (0-indexed)")),
		mcp.WithNumber("j", mcp.Description("Second index of a targeted shuffle (0-indexed)")),
	)
}

// Handle processes the tool request
func (t *ShuffleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operands, err := ParseOperands(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	i, hasI, err := ParseIndex(req, "i")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	j, hasJ, err := ParseIndex(req, "j")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if hasI != hasJ {
		return mcp.NewToolResultError("both i and j are required for a targeted shuffle"), nil
	}

	e, err := buildEvaluator(req, operands)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create evaluator: %v", err)), nil
	}

	shuffler, ok := evaluator.AsShuffler(e)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%s does not support shuffling", e.Name())), nil
	}

	toolResult := results.ShuffleToolResult{
		Arguments: results.ShuffleToolArgs{
			Kind:     mcp.ParseString(req, "kind", ""),
			Operands: operands,
			Count:    int(mcp.ParseFloat64(req, "count", 0)),
		},
		Before: results.NewEvaluation(e),
	}

	if hasI {
		toolResult.Arguments.Pair = &results.Pair{I: i, J: j}
		shuffler.ShufflePair(i, j)
	} else {
		shuffler.Shuffle()
	}

	toolResult.After = results.NewEvaluation(e)
	toolResult.Swapped = !slices.Equal(toolResult.Before.Operands, toolResult.After.Operands)

	if toolResult.Swapped {
		toolResult.Message = fmt.Sprintf("Shuffled the operands of %s.", e.Name())
	} else {
		toolResult.Message = fmt.Sprintf("The operands of %s were already in order; nothing was swapped.", e.Name())
	}

	return jsonResult(toolResult)
}
