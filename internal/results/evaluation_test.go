package results

import (
	"encoding/json"
	"testing"

	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvaluation(t *testing.T) {
	d := evaluator.NewDivisor(4)
	d.SetOperands([]float64{100, -4, 2.5, -4})

	eval := NewEvaluation(d)

	assert.Equal(t, &Evaluation{
		Name:       "Divisor",
		Count:      4,
		Operands:   []float64{100, -4, 2.5, -4},
		Expression: "100 / (-4) / 2.5 / (-4)",
		Result:     2.5,
		Record:     []string{"[4]", "100 / (-4) / 2.5 / (-4)", "2.5"},
	}, eval)
}

func TestNewEvaluation_OperandsAreSnapshot(t *testing.T) {
	c := evaluator.NewCustomExpression(2)
	c.SetOperands([]float64{-1, 1})

	eval := NewEvaluation(c)
	c.ShufflePair(0, 1)

	assert.Equal(t, []float64{-1, 1}, eval.Operands)
	assert.Equal(t, []float64{1, -1}, c.Operands())
}

func TestShuffleToolResult_OmitsEmptyPair(t *testing.T) {
	result := ShuffleToolResult{
		Message:   "ok",
		Arguments: ShuffleToolArgs{Kind: "divisor", Operands: []float64{1}},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"pair"`)
	assert.NotContains(t, string(data), `"before"`)
}
