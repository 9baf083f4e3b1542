package results

// ShuffleToolResult represents the result of the shuffle tool
type ShuffleToolResult struct {
	Message   string          `json:"message"`
	Arguments ShuffleToolArgs `json:"arguments"`
	Before    *Evaluation     `json:"before,omitempty"`
	After     *Evaluation     `json:"after,omitempty"`
	Swapped   bool            `json:"swapped"`
}

// ShuffleToolArgs represents the arguments for the shuffle tool
type ShuffleToolArgs struct {
	Kind     string    `json:"kind"`
	Operands []float64 `json:"operands"`
	Count    int       `json:"count,omitempty"`
	Pair     *Pair     `json:"pair,omitempty"`
}

// Pair holds the indices of a targeted shuffle
type Pair struct {
	I int `json:"i"`
	J int `json:"j"`
}
