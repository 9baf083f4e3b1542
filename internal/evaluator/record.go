package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/averycrespi/exprlab/internal/operands"
	"github.com/averycrespi/exprlab/pkg/types"
)

// Record returns the three record lines for an evaluator:
// the operand count in brackets, the expression, and the calculated value.
func Record(e types.Evaluator) []string {
	return []string{
		fmt.Sprintf("[%d]", e.OperandCount()),
		e.Expression(),
		operands.FormatResult(e.Calculate()),
	}
}

// WriteRecord writes the record of e to w, one line each
func WriteRecord(w io.Writer, e types.Evaluator) error {
	for _, line := range Record(e) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// LogToScreen writes the record of e to standard output
func LogToScreen(e types.Evaluator) {
	_ = WriteRecord(os.Stdout, e)
}

// LogToFile appends the record of e to path.
// If the file cannot be opened nothing is written and no error is reported.
func LogToFile(e types.Evaluator, path string) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer file.Close()

	_ = WriteRecord(file, e)
}
