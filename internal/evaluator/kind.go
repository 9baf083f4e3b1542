package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/averycrespi/exprlab/pkg/types"
)

const (
	// DefaultOperandCount is used when an evaluator is requested without a count
	DefaultOperandCount = 20

	// MaxOperandCount bounds the operand count accepted by New
	MaxOperandCount = 1 << 16
)

var (
	// ErrUnknownKind is returned when an evaluator kind is not registered
	ErrUnknownKind = errors.New("unknown evaluator kind")

	// ErrCountTooLarge is returned when an operand count exceeds MaxOperandCount
	ErrCountTooLarge = errors.New("operand count too large")
)

// Kind identifies an evaluator variant
type Kind string

const (
	KindSummator         Kind = "summator"
	KindDivisor          Kind = "divisor"
	KindCustomExpression Kind = "custom_expression"
)

type kindInfo struct {
	displayName string
	operation   string
	build       func(count int) types.Evaluator
}

var kinds = map[Kind]kindInfo{
	KindSummator: {
		displayName: "Summator",
		operation:   "op[0] + op[1] + ... + op[n-1]",
		build:       func(count int) types.Evaluator { return NewSummator(count) },
	},
	KindDivisor: {
		displayName: "Divisor",
		operation:   "op[0] / op[1] / ... / op[n-1], 0 if any divisor is 0",
		build:       func(count int) types.Evaluator { return NewDivisor(count) },
	},
	KindCustomExpression: {
		displayName: "CustomExpression",
		operation:   "op[0] - op[1] + op[2] - op[3] + ...",
		build:       func(count int) types.Evaluator { return NewCustomExpression(count) },
	},
}

// Kinds returns every registered kind in a stable order
func Kinds() []Kind {
	return []Kind{KindSummator, KindDivisor, KindCustomExpression}
}

// ParseKind converts a string to a Kind, accepting display names as well
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kinds[k]; ok {
		return k, nil
	}
	for kind, info := range kinds {
		if strings.EqualFold(info.displayName, strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DisplayName returns the evaluator name reported by Name()
func (k Kind) DisplayName() string {
	if info, ok := kinds[k]; ok {
		return info.displayName
	}
	return string(k)
}

// Operation describes the arithmetic the kind applies to its operands
func (k Kind) Operation() string {
	return kinds[k].operation
}

// New creates an evaluator of the given kind with count operands.
// A non-positive count falls back to DefaultOperandCount; counts above
// MaxOperandCount are rejected.
func New(kind Kind, count int) (types.Evaluator, error) {
	info, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if count <= 0 {
		count = DefaultOperandCount
	}
	if count > MaxOperandCount {
		return nil, fmt.Errorf("%w: %d exceeds the maximum of %d", ErrCountTooLarge, count, MaxOperandCount)
	}
	return info.build(count), nil
}

// AsShuffler reports whether e supports reordering its operands
func AsShuffler(e types.Evaluator) (types.Shuffler, bool) {
	s, ok := e.(types.Shuffler)
	return s, ok
}
