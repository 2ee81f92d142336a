package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/bigtune/internal/cli"
	apperrors "github.com/agbru/bigtune/internal/errors"
	"github.com/agbru/bigtune/internal/logging"
	"github.com/agbru/bigtune/internal/ops"
	"github.com/agbru/bigtune/internal/report"
	"github.com/agbru/bigtune/internal/sysmon"
	"github.com/agbru/bigtune/internal/tuner"
)

// runTune orchestrates the crossover search for the selected pairs.
func (a *Application) runTune(ctx context.Context, out io.Writer) int {
	pairs, err := a.pairsToRun()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		report.RenderHost(out, sysmon.Capture())
	}

	var log logging.Logger = logging.NewNopLogger()
	if a.Config.Verbose {
		log = logging.NewLogger(a.ErrWriter, "tuner")
	}

	exitCode := apperrors.ExitSuccess
	for i, pair := range pairs {
		if i > 0 {
			report.Separator(out)
		}
		report.RenderHeader(out, pair)

		intervals, err := a.tunePair(ctx, out, pair, log)
		switch {
		case err == nil:
			report.RenderIntervals(out, pair, intervals)
			if len(pair.Note) > 0 {
				report.RenderNote(out, pair.Note...)
			}
		case apperrors.IsContextError(err):
			fmt.Fprintf(a.ErrWriter, "Canceled: %v\n", err)
			return apperrors.ExitErrorCanceled
		case isTuningError(err):
			report.RenderTuningFailure(out, pair, err)
			exitCode = apperrors.ExitErrorTuning
		default:
			fmt.Fprintf(a.ErrWriter, "Error tuning %s: %v\n", pair.Name, err)
			return apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// tunePair runs the full search for a single operation pair.
func (a *Application) tunePair(ctx context.Context, out io.Writer, pair ops.Pair, log logging.Logger) ([]tuner.Interval, error) {
	var reporter cli.ProbeReporter = cli.NullProbeReporter{}
	if !a.Config.Quiet {
		reporter = cli.NewSpinnerReporter(out)
	}

	cmpOpts := []tuner.ComparatorOption{
		tuner.WithMinDuration(a.Config.MinDuration),
		tuner.WithComparatorLogger(log),
	}
	if a.Config.Seed != 0 {
		seed := a.Config.Seed
		cmpOpts = append(cmpOpts, tuner.WithSeed(func() int64 { return seed }))
	}
	cmp := tuner.NewTimedComparator(cmpOpts...)

	params := tuner.Params{
		StartExp:  a.Config.StartExp,
		Accuracy:  a.Config.Accuracy,
		Margin:    pair.Margin,
		Calibrate: !a.Config.Quick,
	}
	drv := tuner.NewDriver(cmp, params,
		tuner.WithObserver(reporter.Observer()),
		tuner.WithLogger(log),
	)

	reporter.Start(pair.Name)
	defer reporter.Stop()
	return drv.Run(ctx, pair.Slow, pair.Fast)
}

func isTuningError(err error) bool {
	var tuningErr apperrors.TuningError
	return errors.As(err, &tuningErr)
}
