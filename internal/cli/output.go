// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write output to an [io.Writer].
//     Examples: [DisplayLine].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResultsReport].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultsToFile].

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/format"
	"github.com/agbru/snippets/internal/orchestration"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
}

// FormatResultsReport renders the results as a commented header followed
// by the step lines, in execution order.
//
// Parameters:
//   - results: The step results to render.
//   - generated: The timestamp recorded in the header.
//
// Returns:
//   - string: The report text.
func FormatResultsReport(results []orchestration.StepResult, generated time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Snippet Results\n")
	fmt.Fprintf(&b, "# Generated: %s\n", generated.Format(time.RFC3339))
	fmt.Fprintf(&b, "# Steps: %d\n", len(results))
	for _, res := range results {
		fmt.Fprintf(&b, "# %s: %s\n", res.Name, format.FormatExecutionDuration(res.Duration))
	}
	fmt.Fprintf(&b, "\n")
	for _, res := range results {
		if res.Err == nil {
			fmt.Fprintln(&b, res.Line)
		}
	}
	return b.String()
}

// WriteResultsToFile writes the results report to config.OutputFile,
// creating parent directories as needed. It is a no-op when no file is set.
//
// Returns:
//   - error: An error if the directory or file cannot be written.
func WriteResultsToFile(results []orchestration.StepResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.WrapError(err, "failed to create directory")
		}
	}

	report := FormatResultsReport(results, time.Now())
	if err := os.WriteFile(config.OutputFile, []byte(report), 0644); err != nil {
		return apperrors.WrapError(err, "failed to write output file")
	}
	return nil
}
