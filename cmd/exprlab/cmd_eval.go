package main

import (
	"fmt"

	"github.com/averycrespi/exprlab/internal/evaluator"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var (
		kind     string
		operands []float64
		count    int
		shuffle  bool
		pair     []int
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a single expression and print its record",
		Example: `  exprlab eval --kind summator --operands 5,12.5,9,-1.5
  exprlab eval --kind divisor --operands 100,-4,2.5,-4 --shuffle
  exprlab eval --kind custom_expression --operands -5,4,-2,9,3 --pair 0,4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := evaluator.ParseKind(kind)
			if err != nil {
				return err
			}
			if len(pair) != 0 && len(pair) != 2 {
				return fmt.Errorf("--pair needs exactly two indices, got %d", len(pair))
			}
			if count <= 0 {
				count = len(operands)
			}

			e, err := evaluator.New(k, count)
			if err != nil {
				return err
			}
			e.SetOperands(operands)

			if shuffle || len(pair) == 2 {
				shuffler, ok := evaluator.AsShuffler(e)
				if !ok {
					return fmt.Errorf("%s does not support shuffling", e.Name())
				}
				if shuffle {
					shuffler.Shuffle()
				}
				if len(pair) == 2 {
					shuffler.ShufflePair(pair[0], pair[1])
				}
			}

			if logFile != "" {
				e.LogToFile(logFile)
			}
			return evaluator.WriteRecord(cmd.OutOrStdout(), e)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Evaluator kind (summator, divisor, custom_expression)")
	cmd.Flags().Float64SliceVar(&operands, "operands", nil, "Comma-separated operands")
	cmd.Flags().IntVar(&count, "count", 0, "Fixed operand count (defaults to the number of operands)")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Run the full-pass shuffle before printing")
	cmd.Flags().IntSliceVar(&pair, "pair", nil, "Run the targeted shuffle on two indices, e.g. 0,4")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Also append the record to this file")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}
