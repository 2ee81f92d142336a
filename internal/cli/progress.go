// Package cli provides the terminal progress surface for tuning runs. The
// original tool printed raw probe sizes as dots of progress; this renders the
// same information through a spinner suffix so a multi-minute calibrated
// search stays legible.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigtune/internal/tuner"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the probe reporter from a specific
// spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps a *spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner builds the default spinner. Overridable in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProbeReporter displays search progress for one pair run.
type ProbeReporter interface {
	// Start begins progress display for the named pair.
	Start(pairName string)
	// Observer returns the probe observer to install on the driver.
	Observer() tuner.ProbeObserver
	// Stop ends the progress display.
	Stop()
}

// SpinnerReporter renders probes through a terminal spinner, showing the
// current search phase and probe size.
type SpinnerReporter struct {
	sp   Spinner
	pair string
}

// NewSpinnerReporter creates a reporter writing to the given writer.
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{sp: newSpinner(spinner.WithWriter(out))}
}

// Start begins the spinner for a pair run.
func (r *SpinnerReporter) Start(pairName string) {
	r.pair = pairName
	r.sp.UpdateSuffix(fmt.Sprintf(" tuning %s", pairName))
	r.sp.Start()
}

// Observer returns the probe observer feeding the spinner suffix.
func (r *SpinnerReporter) Observer() tuner.ProbeObserver {
	return func(phase tuner.Phase, numBits int) {
		r.sp.UpdateSuffix(fmt.Sprintf(" tuning %s: %s at %d bits", r.pair, phase, numBits))
	}
}

// Stop halts the spinner.
func (r *SpinnerReporter) Stop() { r.sp.Stop() }

// NullProbeReporter discards all progress. Used in quiet mode and tests.
type NullProbeReporter struct{}

// Start implements ProbeReporter.
func (NullProbeReporter) Start(string) {}

// Observer implements ProbeReporter with a no-op observer.
func (NullProbeReporter) Observer() tuner.ProbeObserver {
	return func(tuner.Phase, int) {}
}

// Stop implements ProbeReporter.
func (NullProbeReporter) Stop() {}
