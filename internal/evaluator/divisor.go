package evaluator

import "github.com/averycrespi/exprlab/pkg/types"

var (
	_ types.Evaluator = &Divisor{}
	_ types.Shuffler  = &Divisor{}
)

// Divisor divides operand 0 by every following operand, left to right
type Divisor struct {
	base
}

// NewDivisor creates a divisor with count zeroed operands
func NewDivisor(count int) *Divisor {
	return &Divisor{base: newBase(count)}
}

// Calculate returns op[0] / op[1] / ... / op[n-1].
// Any zero divisor makes the whole result 0.
func (d *Divisor) Calculate() float64 {
	result := d.store.Get(0)
	for i := 1; i < d.store.Len(); i++ {
		divisor := d.store.Get(i)
		if divisor == 0 {
			return 0.0
		}
		result /= divisor
	}
	return result
}

// Expression renders the operands joined with " / "
func (d *Divisor) Expression() string {
	return d.joinTerms(" / ")
}

// Name returns "Divisor"
func (d *Divisor) Name() string {
	return KindDivisor.DisplayName()
}

func (d *Divisor) LogToScreen() {
	LogToScreen(d)
}

func (d *Divisor) LogToFile(path string) {
	LogToFile(d, path)
}

// Shuffle moves negative operands ahead of non-negative ones in a single pair scan
func (d *Divisor) Shuffle() {
	d.store.ShuffleNegatives()
}

// ShufflePair swaps operands i and j when i is negative and j is not
func (d *Divisor) ShufflePair(i, j int) {
	d.store.SwapIfNegativeFirst(i, j)
}
