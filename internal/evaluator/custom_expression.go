package evaluator

import (
	"strings"

	"github.com/averycrespi/exprlab/internal/operands"
	"github.com/averycrespi/exprlab/pkg/types"
)

var (
	_ types.Evaluator = &CustomExpression{}
	_ types.Shuffler  = &CustomExpression{}
)

// CustomExpression evaluates op[0] - op[1] + op[2] - op[3] + ...
type CustomExpression struct {
	base
}

// NewCustomExpression creates a custom expression with count zeroed operands
func NewCustomExpression(count int) *CustomExpression {
	return &CustomExpression{base: newBase(count)}
}

// Calculate subtracts odd-indexed operands and adds even-indexed ones
func (c *CustomExpression) Calculate() float64 {
	result := c.store.Get(0)
	for i := 1; i < c.store.Len(); i++ {
		if i%2 == 1 {
			result -= c.store.Get(i)
		} else {
			result += c.store.Get(i)
		}
	}
	return result
}

// Expression renders operand 0 followed by alternating " - " and " + " terms
func (c *CustomExpression) Expression() string {
	if c.store.Len() == 0 {
		return ""
	}

	var expr strings.Builder
	expr.WriteString(operands.Format(c.store.Get(0)))
	for i := 1; i < c.store.Len(); i++ {
		if i%2 == 1 {
			expr.WriteString(" - ")
		} else {
			expr.WriteString(" + ")
		}
		expr.WriteString(operands.Term(c.store.Get(i)))
	}
	return expr.String()
}

// Name returns "CustomExpression"
func (c *CustomExpression) Name() string {
	return KindCustomExpression.DisplayName()
}

func (c *CustomExpression) LogToScreen() {
	LogToScreen(c)
}

func (c *CustomExpression) LogToFile(path string) {
	LogToFile(c, path)
}

// Shuffle moves negative operands ahead of non-negative ones in a single pair scan
func (c *CustomExpression) Shuffle() {
	c.store.ShuffleNegatives()
}

// ShufflePair swaps operands i and j when i is negative and j is not
func (c *CustomExpression) ShufflePair(i, j int) {
	c.store.SwapIfNegativeFirst(i, j)
}
