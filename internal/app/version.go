package app

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/snippets/internal/config"
)

// Build information, set at link time with
// -ldflags "-X github.com/agbru/snippets/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version banner. Scanning
// follows flag parsing: it stops at the first positional argument or "--",
// and the value of a non-boolean flag is never taken for a flag itself.
func HasVersionFlag(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--version", "-version", "-V":
			return true
		case "--":
			return false
		}
		if len(arg) < 2 || arg[0] != '-' {
			return false
		}
		name := strings.TrimLeft(arg, "-")
		if !strings.Contains(name, "=") && !config.IsBoolFlag(name) {
			i++
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "snippets %s (commit %s, built %s, %s %s/%s)\n",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
