package cli

import (
	"fmt"
	"io"

	"github.com/agbru/snippets/internal/orchestration"
)

// CLIResultPresenter implements orchestration.ResultPresenter for console
// output. It prints each step line verbatim, one per line, with no
// decoration.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResult writes the step line followed by a newline.
func (CLIResultPresenter) PresentResult(result orchestration.StepResult, out io.Writer) {
	DisplayLine(out, result.Line)
}

// DisplayLine writes a single result line to out.
func DisplayLine(out io.Writer, line string) {
	fmt.Fprintln(out, line)
}
