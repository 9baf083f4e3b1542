// Package evaluator implements expression evaluators over a fixed set of operands.
package evaluator

import (
	"strings"

	"github.com/averycrespi/exprlab/internal/operands"
)

// base owns the operand store shared by every evaluator
type base struct {
	store *operands.Store
}

func newBase(count int) base {
	return base{store: operands.NewStore(count)}
}

// OperandCount returns the number of operands fixed at construction
func (b *base) OperandCount() int {
	return b.store.Len()
}

// Operand returns the operand at index, or 0 when index is out of range
func (b *base) Operand(index int) float64 {
	return b.store.Get(index)
}

// Operands returns a copy of the current operands
func (b *base) Operands() []float64 {
	return b.store.Values()
}

// SetOperand writes a single operand; out-of-range indices are ignored
func (b *base) SetOperand(index int, value float64) {
	b.store.Set(index, value)
}

// SetOperands copies values into the operands starting at index 0
func (b *base) SetOperands(values []float64) {
	b.store.SetAll(values)
}

// joinTerms renders operands separated by sep, parenthesizing negatives
func (b *base) joinTerms(sep string) string {
	terms := make([]string, b.store.Len())
	for i := range terms {
		terms[i] = operands.Term(b.store.Get(i))
	}
	return strings.Join(terms, sep)
}
