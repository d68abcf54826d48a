package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/snippets/internal/cli"
	"github.com/agbru/snippets/internal/config"
	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/logging"
	"github.com/agbru/snippets/internal/metrics"
	"github.com/agbru/snippets/internal/orchestration"
)

// Application represents the snippets application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Presenter orchestration.ResultPresenter
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithPresenter sets a custom ResultPresenter for the application.
func WithPresenter(p orchestration.ResultPresenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name as its first element.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Presenter == nil {
		app.Presenter = cli.CLIResultPresenter{}
	}

	programName := "snippets"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the demo steps in order, printing each result line on out,
// then writes the optional result and metrics files.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level, err := a.Config.ParsedLogLevel()
	if err != nil {
		return apperrors.HandleStepError(apperrors.NewConfigError("%v", err), a.ErrWriter)
	}
	logger := logging.NewLogger(a.ErrWriter, "snippets").WithLevel(level)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	recorder := metrics.NewRecorder()
	executor := orchestration.NewExecutor(a.Presenter,
		orchestration.WithObserver(recorder),
		orchestration.WithLogger(logger))

	logger.Info("running steps", logging.Uint32("n", a.Config.N))
	results, runErr := executor.ExecuteSteps(ctx, a.Steps(), out)
	if runErr != nil {
		logger.Debug("run stopped", logging.Err(runErr), logging.Int("completed", len(results)))
	}

	exitCode := apperrors.HandleStepError(runErr, a.ErrWriter)
	if code := a.writeArtifacts(results, recorder, logger); exitCode == apperrors.ExitSuccess {
		exitCode = code
	}
	return exitCode
}

// writeArtifacts saves the result and metrics files when configured.
func (a *Application) writeArtifacts(results []orchestration.StepResult, recorder *metrics.Recorder, logger logging.Logger) int {
	exitCode := apperrors.ExitSuccess

	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile}
	if err := cli.WriteResultsToFile(results, outputCfg); err != nil {
		logger.Error("saving results failed", err, logging.String("path", a.Config.OutputFile))
		exitCode = apperrors.HandleStepError(err, a.ErrWriter)
	}

	if a.Config.MetricsFile != "" {
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			logger.Error("writing metrics failed", err, logging.String("path", a.Config.MetricsFile))
			exitCode = apperrors.HandleStepError(apperrors.WrapError(err, "failed to write metrics file"), a.ErrWriter)
		}
	}
	return exitCode
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
