package results

// EvaluatorInfo describes a registered evaluator kind
type EvaluatorInfo struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Operation   string `json:"operation"`
	Shuffleable bool   `json:"shuffleable"`
}

// ListEvaluatorsToolResult represents the result of the list evaluators tool
type ListEvaluatorsToolResult struct {
	Message    string          `json:"message"`
	Evaluators []EvaluatorInfo `json:"evaluators"`
}
