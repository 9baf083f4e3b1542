// Package driver runs the evaluator demo: log every stage, then shuffle the
// evaluators that support it and log them again.
package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/exprlab/internal/config"
	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/averycrespi/exprlab/pkg/types"
)

// Driver runs configured evaluator stages
type Driver struct {
	config types.Config
	screen io.Writer
}

// stage pairs a built evaluator with the config it came from
type stage struct {
	evaluator types.Evaluator
	config    types.StageConfig
}

// NewDriver creates a driver that writes screen output to stdout
func NewDriver(config types.Config) *Driver {
	return &Driver{
		config: config,
		screen: os.Stdout,
	}
}

// WithScreen redirects screen output, mainly for tests
func (d *Driver) WithScreen(w io.Writer) *Driver {
	d.screen = w
	return d
}

// Run truncates the log file and runs every stage
func (d *Driver) Run(ctx context.Context) error {
	if d.config.LogFile != "" {
		if err := truncate(d.config.LogFile); err != nil {
			slog.Warn("Could not truncate log file", "path", d.config.LogFile, "error", err)
		}
	}

	stages, err := d.build()
	if err != nil {
		return err
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.config.LogFile != "" {
			s.evaluator.LogToFile(d.config.LogFile)
		}
		if err := d.logToScreen(s.evaluator); err != nil {
			return err
		}
		if err := d.blankLine(); err != nil {
			return err
		}
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		shuffler, ok := evaluator.AsShuffler(s.evaluator)
		if !ok {
			slog.Debug("Evaluator does not support shuffling", "name", s.evaluator.Name())
			continue
		}

		shuffler.Shuffle()
		slog.Debug("Shuffled operands", "name", s.evaluator.Name(), "operands", s.evaluator.Operands())
		if err := d.logToScreen(s.evaluator); err != nil {
			return err
		}
		if err := d.blankLine(); err != nil {
			return err
		}

		if len(s.config.Pair) == 2 {
			snapshot := s.evaluator.Operands()
			slog.Debug("Resetting operands before pair shuffle", "name", s.evaluator.Name(), "snapshot", snapshot)

			s.evaluator.SetOperands(s.config.Operands)
			shuffler.ShufflePair(s.config.Pair[0], s.config.Pair[1])
			if err := d.logToScreen(s.evaluator); err != nil {
				return err
			}
		}
	}

	return nil
}

// build creates the evaluators and assigns their operands
func (d *Driver) build() ([]stage, error) {
	stages := make([]stage, 0, len(d.config.Stages))
	for i, sc := range d.config.Stages {
		kind, err := evaluator.ParseKind(sc.Kind)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}

		e, err := evaluator.New(kind, sc.Count)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}

		if sc.Assign == config.AssignPerIndex {
			for j, v := range sc.Operands {
				e.SetOperand(j, v)
			}
		} else {
			e.SetOperands(sc.Operands)
		}

		slog.Debug("Built evaluator", "stage", i, "name", e.Name(), "count", e.OperandCount())
		stages = append(stages, stage{evaluator: e, config: sc})
	}
	return stages, nil
}

func (d *Driver) logToScreen(e types.Evaluator) error {
	return evaluator.WriteRecord(d.screen, e)
}

func (d *Driver) blankLine() error {
	if _, err := fmt.Fprintln(d.screen); err != nil {
		return fmt.Errorf("failed to write screen output: %w", err)
	}
	return nil
}

// truncate empties the log file, creating it if needed
func truncate(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to truncate log file: %w", err)
	}
	return file.Close()
}
