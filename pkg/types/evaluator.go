package types

// Evaluator computes an arithmetic expression over a fixed-length set of operands
type Evaluator interface {
	Loggable

	Calculate() float64
	Expression() string
	Name() string

	OperandCount() int
	Operand(index int) float64
	Operands() []float64
	SetOperand(index int, value float64)
	SetOperands(values []float64)
}

// Loggable writes an evaluator record to the screen or to a file
type Loggable interface {
	LogToScreen()
	LogToFile(path string)
}

// Shuffler is implemented by evaluators that can reorder their operands by sign
type Shuffler interface {
	// Shuffle swaps every pair i < j where operand i is non-negative and operand j is negative
	Shuffle()
	// ShufflePair swaps operands i and j when i is negative and j is non-negative
	ShufflePair(i, j int)
}
