package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/bigtune/internal/cli"
	"github.com/agbru/bigtune/internal/config"
	apperrors "github.com/agbru/bigtune/internal/errors"
	"github.com/agbru/bigtune/internal/ops"
	"github.com/agbru/bigtune/internal/ui"
)

// Application represents the bigtune application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *ops.Registry
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom operation pair registry for the application.
func WithRegistry(r *ops.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = ops.NewDefaultRegistry()
	}

	programName := "bigtune"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.ListPairs {
		return a.runList(out)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return a.runTune(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runList prints the available operation pairs.
func (a *Application) runList(out io.Writer) int {
	for _, name := range a.Registry.List() {
		pair, _ := a.Registry.Get(name)
		fmt.Fprintf(out, "%-6s %s\n", name, pair.Description)
	}
	return apperrors.ExitSuccess
}

// pairsToRun resolves the configured pair selection against the registry.
func (a *Application) pairsToRun() ([]ops.Pair, error) {
	if a.Config.Pair == "all" {
		return a.Registry.GetAll(), nil
	}
	pair, ok := a.Registry.Get(a.Config.Pair)
	if !ok {
		return nil, apperrors.NewConfigError("unknown pair %q", a.Config.Pair)
	}
	return []ops.Pair{pair}, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
