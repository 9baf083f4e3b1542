package evaluator

import "github.com/averycrespi/exprlab/pkg/types"

var _ types.Evaluator = &Summator{}

// Summator adds all of its operands
type Summator struct {
	base
}

// NewSummator creates a summator with count zeroed operands
func NewSummator(count int) *Summator {
	return &Summator{base: newBase(count)}
}

// Calculate returns the sum of all operands
func (s *Summator) Calculate() float64 {
	result := 0.0
	for i := 0; i < s.store.Len(); i++ {
		result += s.store.Get(i)
	}
	return result
}

// Expression renders the operands joined with " + "
func (s *Summator) Expression() string {
	return s.joinTerms(" + ")
}

// Name returns "Summator"
func (s *Summator) Name() string {
	return KindSummator.DisplayName()
}

func (s *Summator) LogToScreen() {
	LogToScreen(s)
}

func (s *Summator) LogToFile(path string) {
	LogToFile(s, path)
}
