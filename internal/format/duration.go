// Package format holds pure formatting helpers shared by the CLI output and
// the log fields.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a step duration for display.
// Zero renders as "< 1µs", durations under a millisecond in microseconds,
// under a second in milliseconds, and anything longer with time.Duration's
// default representation.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
