// Package config loads the exprlab configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/averycrespi/exprlab/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogFile  = "Lab3.log"
	DefaultLogLevel = "info"

	// AssignBulk copies all operands in one call; AssignPerIndex sets them one at a time
	AssignBulk     = "bulk"
	AssignPerIndex = "per_index"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration of the classic three-evaluator demo
func Default() types.Config {
	return types.Config{
		LogFile:  DefaultLogFile,
		LogLevel: DefaultLogLevel,
		Stages:   DefaultStages(),
	}
}

// DefaultStages returns the summator, divisor and custom expression stages
func DefaultStages() []types.StageConfig {
	return []types.StageConfig{
		{
			Kind:     string(evaluator.KindSummator),
			Count:    7,
			Assign:   AssignBulk,
			Operands: []float64{5, 12.5, 9, -1.5, -9.5, 0, 11},
		},
		{
			Kind:     string(evaluator.KindDivisor),
			Count:    4,
			Assign:   AssignPerIndex,
			Operands: []float64{100, -4, 2.5, -4},
		},
		{
			Kind:     string(evaluator.KindCustomExpression),
			Count:    5,
			Assign:   AssignBulk,
			Operands: []float64{5, 4, -2, 9, 3},
			Pair:     []int{0, 4},
		},
	}
}

// Load reads a YAML config from path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (types.Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := Parse(data, &config); err != nil {
			return config, err
		}
	}

	if err := Validate(config); err != nil {
		return config, err
	}

	return config, nil
}

// Parse decodes YAML into config, keeping fields the document leaves out
func Parse(data []byte, config *types.Config) error {
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	for i := range config.Stages {
		if config.Stages[i].Assign == "" {
			config.Stages[i].Assign = AssignBulk
		}
	}
	return nil
}

// Validate checks log level, stage kinds, counts and pair indices
func Validate(config types.Config) error {
	if !validLogLevels[strings.ToLower(config.LogLevel)] {
		return fmt.Errorf("%w: log_level must be one of debug, info, warn, error: %q", ErrInvalidConfig, config.LogLevel)
	}

	for i, stage := range config.Stages {
		kind, err := evaluator.ParseKind(stage.Kind)
		if err != nil {
			return fmt.Errorf("%w: stage %d: %w", ErrInvalidConfig, i, err)
		}
		stage.Kind = string(kind)
		if stage.Count < 0 {
			return fmt.Errorf("%w: stage %d: count must be >= 0, got %d", ErrInvalidConfig, i, stage.Count)
		}
		switch stage.Assign {
		case "", AssignBulk, AssignPerIndex:
		default:
			return fmt.Errorf("%w: stage %d: assign must be %q or %q, got %q", ErrInvalidConfig, i, AssignBulk, AssignPerIndex, stage.Assign)
		}
		if stage.Count > evaluator.MaxOperandCount {
			return fmt.Errorf("%w: stage %d: count must be <= %d, got %d", ErrInvalidConfig, i, evaluator.MaxOperandCount, stage.Count)
		}
		if err := validatePair(stage); err != nil {
			return fmt.Errorf("%w: stage %d: %w", ErrInvalidConfig, i, err)
		}
	}

	return nil
}

// validatePair checks that a pair has two in-range indices and that the
// stage's kind can shuffle
func validatePair(stage types.StageConfig) error {
	if len(stage.Pair) == 0 {
		return nil
	}
	if len(stage.Pair) != 2 {
		return fmt.Errorf("pair must have exactly two indices")
	}

	e, err := evaluator.New(evaluator.Kind(stage.Kind), stage.Count)
	if err != nil {
		return err
	}
	if _, ok := evaluator.AsShuffler(e); !ok {
		return fmt.Errorf("pair is set but %s does not support shuffling", e.Name())
	}
	for _, index := range stage.Pair {
		if index < 0 || index >= e.OperandCount() {
			return fmt.Errorf("pair index %d out of range [0, %d)", index, e.OperandCount())
		}
	}
	return nil
}
