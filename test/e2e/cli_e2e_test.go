package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and verifies its observable behavior.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "snippets"
	if runtime.GOOS == "windows" {
		binName = "snippets.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in test/e2e; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/snippets")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build snippets: %v", err)
	}

	tests := []struct {
		name      string
		args      []string
		env       []string
		wantOut   string // exact stdout when exact is set, substring otherwise
		exact     bool
		wantCode  int
		wantInErr string
	}{
		{
			name:     "Default run",
			wantOut:  "fib at 7 is 13\nnumber is: 5\nhello\n50\n",
			exact:    true,
			wantCode: 0,
		},
		{
			name:     "Custom fib index",
			args:     []string{"-n", "10"},
			wantOut:  "fib at 10 is 55\n",
			wantCode: 0,
		},
		{
			name:     "Environment override",
			env:      []string{"SNIPPETS_TEXT=noSpacesHere", "SNIPPETS_CONDITION=false", "SNIPPETS_CONDITION2=true"},
			wantOut:  "number is: 7\nnoSpacesHere\n",
			wantCode: 0,
		},
		{
			name:      "Help",
			args:      []string{"--help"},
			wantCode:  0,
			wantInErr: "usage",
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "snippets",
			wantCode: 0,
		},
		{
			name:     "Version text as flag value",
			args:     []string{"-text", "--version"},
			wantOut:  "fib at 7 is 13\nnumber is: 5\n--version\n50\n",
			exact:    true,
			wantCode: 0,
		},
		{
			name:      "Fib index above limit",
			args:      []string{"-n", "90"},
			wantCode:  4,
			wantInErr: "configuration error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(cleanEnv(), tt.env...)
			var stderr strings.Builder
			cmd.Stderr = &stderr
			output, err := cmd.Output()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run binary: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", code, tt.wantCode, outStr, stderr.String())
			}

			if tt.exact && outStr != tt.wantOut {
				t.Errorf("stdout = %q, want %q", outStr, tt.wantOut)
			} else if !tt.exact && !strings.Contains(outStr, tt.wantOut) {
				t.Errorf("stdout missing %q, got:\n%s", tt.wantOut, outStr)
			}
			if tt.wantInErr != "" && !strings.Contains(strings.ToLower(stderr.String()), tt.wantInErr) {
				t.Errorf("stderr missing %q, got:\n%s", tt.wantInErr, stderr.String())
			}
		})
	}
}

// cleanEnv returns the host environment without SNIPPETS_ variables so the
// binary only sees the overrides a case sets explicitly.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "SNIPPETS_") {
			env = append(env, kv)
		}
	}
	return env
}

func TestCleanEnv(t *testing.T) {
	t.Setenv("SNIPPETS_N", "3")
	t.Setenv("SNIPPETS_TEXT", "from host")

	for _, kv := range cleanEnv() {
		if strings.HasPrefix(kv, "SNIPPETS_") {
			t.Errorf("cleanEnv() kept %q", kv)
		}
	}
}
