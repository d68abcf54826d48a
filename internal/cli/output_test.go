package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/snippets/internal/orchestration"
)

func sampleResults() []orchestration.StepResult {
	return []orchestration.StepResult{
		{Name: "fib", Line: "fib at 7 is 13", Duration: 2 * time.Microsecond},
		{Name: "conditional", Line: "number is: 5"},
		{Name: "first-word", Line: "hello", Duration: 3 * time.Millisecond},
		{Name: "area", Line: "50"},
	}
}

func TestCLIResultPresenter_PresentResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	for _, res := range sampleResults() {
		CLIResultPresenter{}.PresentResult(res, &buf)
	}

	want := "fib at 7 is 13\nnumber is: 5\nhello\n50\n"
	if buf.String() != want {
		t.Errorf("presented output = %q, want %q", buf.String(), want)
	}
}

func TestFormatResultsReport(t *testing.T) {
	t.Parallel()
	results := append(sampleResults(), orchestration.StepResult{Name: "broken", Err: errors.New("boom")})
	generated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	report := FormatResultsReport(results, generated)

	for _, want := range []string{
		"# Generated: 2026-01-02T03:04:05Z\n",
		"# Steps: 5\n",
		"# fib: 2µs\n",
		"# conditional: < 1µs\n",
		"# first-word: 3ms\n",
		"\nfib at 7 is 13\nnumber is: 5\nhello\n50\n",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report should contain %q, got:\n%s", want, report)
		}
	}
	if strings.HasSuffix(report, "boom\n") {
		t.Error("failed steps should not contribute a result line")
	}
}

func TestWriteResultsToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write results to file",
			outputFile: filepath.Join(tmpDir, "results.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				if !strings.HasSuffix(string(content), "fib at 7 is 13\nnumber is: 5\nhello\n50\n") {
					t.Errorf("File should end with the result lines, got:\n%s", content)
				}
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "results.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := WriteResultsToFile(sampleResults(), OutputConfig{OutputFile: tc.outputFile})
			if err != nil {
				t.Fatalf("WriteResultsToFile() error = %v", err)
			}
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteResultsToFile_DirectoryIsFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteResultsToFile(sampleResults(), OutputConfig{OutputFile: filepath.Join(blocker, "results.txt")})
	if err == nil {
		t.Fatal("expected error when parent path is a file")
	}
	if !strings.Contains(err.Error(), "failed to create directory") {
		t.Errorf("unexpected error: %v", err)
	}
}
