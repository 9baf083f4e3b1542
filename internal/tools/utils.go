package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/averycrespi/exprlab/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
)

// kindNames returns the registered kinds as strings for enum schemas
func kindNames() []string {
	kinds := evaluator.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseOperands extracts the operands array from an MCP request
func ParseOperands(req mcp.CallToolRequest) ([]float64, error) {
	raw := mcp.ParseArgument(req, "operands", nil)
	if raw == nil {
		return nil, fmt.Errorf("operands parameter is required")
	}

	switch v := raw.(type) {
	case []float64:
		return v, nil
	case []any:
		operands := make([]float64, len(v))
		for i, item := range v {
			f, err := toFloat(item)
			if err != nil {
				return nil, fmt.Errorf("operand %d: %w", i, err)
			}
			operands[i] = f
		}
		return operands, nil
	default:
		return nil, fmt.Errorf("operands must be an array of numbers, got %T", raw)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

// ParseIndex extracts an optional integer index from an MCP request
func ParseIndex(req mcp.CallToolRequest, key string) (int, bool, error) {
	raw := mcp.ParseArgument(req, key, nil)
	if raw == nil {
		return 0, false, nil
	}

	f, err := toFloat(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	if f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%s must be an integer, got %v", key, f)
	}
	return int(f), true, nil
}

// buildEvaluator parses the kind and count arguments and loads the operands
func buildEvaluator(req mcp.CallToolRequest, operands []float64) (types.Evaluator, error) {
	kind, err := evaluator.ParseKind(mcp.ParseString(req, "kind", ""))
	if err != nil {
		return nil, err
	}

	rawCount := mcp.ParseFloat64(req, "count", 0)
	if rawCount > evaluator.MaxOperandCount || len(operands) > evaluator.MaxOperandCount {
		return nil, fmt.Errorf("%w: maximum is %d", evaluator.ErrCountTooLarge, evaluator.MaxOperandCount)
	}
	count := int(rawCount)
	if count <= 0 {
		count = len(operands)
	}

	e, err := evaluator.New(kind, count)
	if err != nil {
		return nil, err
	}
	e.SetOperands(operands)
	return e, nil
}

// jsonResult marshals a tool result into a text result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
