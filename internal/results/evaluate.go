package results

// EvaluateToolResult represents the result of the evaluate tool
type EvaluateToolResult struct {
	Message    string           `json:"message"`
	Arguments  EvaluateToolArgs `json:"arguments"`
	Evaluation *Evaluation      `json:"evaluation,omitempty"`
}

// EvaluateToolArgs represents the arguments for the evaluate tool
type EvaluateToolArgs struct {
	Kind     string    `json:"kind"`
	Operands []float64 `json:"operands"`
	Count    int       `json:"count,omitempty"`
}

// Evaluation represents a calculated expression
type Evaluation struct {
	Name       string    `json:"name"`
	Count      int       `json:"count"`
	Operands   []float64 `json:"operands"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Record     []string  `json:"record"`
}
