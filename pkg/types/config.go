package types

// Config represents the configuration for exprlab
type Config struct {
	LogFile  string        `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogLevel string        `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Stages   []StageConfig `json:"stages,omitempty" yaml:"stages,omitempty"`
}

// StageConfig describes one evaluator run by the demo driver
type StageConfig struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Count    int       `json:"count" yaml:"count"`
	Assign   string    `json:"assign,omitempty" yaml:"assign,omitempty"`
	Operands []float64 `json:"operands" yaml:"operands"`
	Pair     []int     `json:"pair,omitempty" yaml:"pair,omitempty"`
}
