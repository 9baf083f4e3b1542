package results

import (
	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/averycrespi/exprlab/pkg/types"
)

// NewEvaluation captures the current state of an evaluator
func NewEvaluation(e types.Evaluator) *Evaluation {
	return &Evaluation{
		Name:       e.Name(),
		Count:      e.OperandCount(),
		Operands:   e.Operands(),
		Expression: e.Expression(),
		Result:     e.Calculate(),
		Record:     evaluator.Record(e),
	}
}
