package tools

// Tool names
const (
	ToolListEvaluators = "list_evaluators"
	ToolEvaluate       = "evaluate"
	ToolShuffle        = "shuffle"
)
