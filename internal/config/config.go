// Package config parses the command line and SNIPPETS_* environment
// variables into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "SNIPPETS_"

// Default values for the demo inputs.
const (
	DefaultCondition  = true
	DefaultCondition2 = false
	DefaultText       = "hello world"
	DefaultWidth      = 10
	DefaultHeight     = 5
	DefaultLogLevel   = "warn"
)

// AppConfig aggregates the inputs of the demo driver and the ambient
// settings of the application.
type AppConfig struct {
	// N is the Fibonacci index computed by the first step.
	N uint32
	// Condition and Condition2 feed the conditional selection step.
	Condition  bool
	Condition2 bool
	// Text is the input of the first-word step.
	Text string
	// Width and Height are the rectangle dimensions of the area step.
	Width  uint32
	Height uint32
	// OutputFile, when set, receives a copy of the result lines.
	OutputFile string
	// MetricsFile, when set, receives the step metrics in Prometheus text format.
	MetricsFile string
	// LogLevel is a zerolog level name for stderr logs.
	LogLevel string
}

// Default returns the configuration used when no flag or environment
// variable is set.
func Default() AppConfig {
	return AppConfig{
		N:          fibonacci.DefaultN,
		Condition:  DefaultCondition,
		Condition2: DefaultCondition2,
		Text:       DefaultText,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		LogLevel:   DefaultLogLevel,
	}
}

// Validate checks the configuration for values the driver cannot honor.
//
// Returns:
//   - error: A ConfigError wrapping the first violation, or nil.
func (c AppConfig) Validate() error {
	if c.N > fibonacci.MaxN {
		return apperrors.NewConfigError("%v", apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("must be at most %d for the recursive calculation, got %d", fibonacci.MaxN, c.N),
		})
	}
	if _, err := c.ParsedLogLevel(); err != nil {
		return apperrors.NewConfigError("%v", apperrors.ValidationError{
			Field:   "log-level",
			Message: err.Error(),
		})
	}
	return nil
}

// ParsedLogLevel converts LogLevel to a zerolog.Level. An empty name is
// rejected since zerolog maps it to NoLevel, which drops every entry.
func (c AppConfig) ParsedLogLevel() (zerolog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.NoLevel, errors.New("must not be empty")
	}
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// boolFlags lists the flags that take no value on the command line.
var boolFlags = map[string]bool{"condition": true, "condition2": true, "h": true, "help": true}

// IsBoolFlag reports whether the named flag is a boolean switch, so that the
// next argument is not consumed as its value.
func IsBoolFlag(name string) bool {
	return boolFlags[name]
}

// ParseConfig parses command-line arguments, applies environment overrides
// for flags that were not set explicitly, and validates the result.
// The priority is CLI flags > environment variables > defaults.
//
// Parameters:
//   - programName: The program name shown in usage output.
//   - args: The arguments without the program name.
//   - errWriter: The writer for usage and flag errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := Default()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Runs the snippet demos in order and prints one line per demo.\n")
		fmt.Fprintf(errWriter, "Every option can also be set with a %s-prefixed environment variable.\n\n", EnvPrefix)
		fs.PrintDefaults()
	}

	n := fs.Uint("n", uint(cfg.N), fmt.Sprintf("Fibonacci index for the recursive calculation (max %d).", fibonacci.MaxN))
	fs.BoolVar(&cfg.Condition, "condition", cfg.Condition, "First condition of the selection demo.")
	fs.BoolVar(&cfg.Condition2, "condition2", cfg.Condition2, "Second condition of the selection demo.")
	fs.StringVar(&cfg.Text, "text", cfg.Text, "Input text for the first-word demo.")
	width := fs.Uint("width", uint(cfg.Width), "Rectangle width.")
	height := fs.Uint("height", uint(cfg.Height), "Rectangle height.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Also write the result lines to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for -output.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write step metrics in Prometheus text format to this file.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level for stderr (debug, info, warn, error).")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	for name, v := range map[string]*uint{"n": n, "width": width, "height": height} {
		if *v > math.MaxUint32 {
			return cfg, apperrors.NewConfigError("value %d for -%s exceeds %d", *v, name, uint64(math.MaxUint32))
		}
	}
	cfg.N = uint32(*n)
	cfg.Width = uint32(*width)
	cfg.Height = uint32(*height)

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
