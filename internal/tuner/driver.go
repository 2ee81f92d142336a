package tuner

import (
	"context"
	"fmt"

	apperrors "github.com/agbru/bigtune/internal/errors"
	"github.com/agbru/bigtune/internal/logging"
)

// Default search constants, matching the values the engine has been run with
// historically. Start is an exponent: the initial frontier is 2^Start + 1 bits.
const (
	DefaultStartExp = 12
	DefaultAccuracy = 1000
)

// Phase identifies which part of the search issued a probe.
type Phase int

const (
	// PhaseBracketing probes the exponential search for an upper bound.
	PhaseBracketing Phase = iota
	// PhaseRefining probes the binary search inside a bracket.
	PhaseRefining
	// PhaseFrontierAdvance probes the single permanence check after an
	// interval has been recorded.
	PhaseFrontierAdvance
)

// String returns the phase name for logs and progress display.
func (p Phase) String() string {
	switch p {
	case PhaseBracketing:
		return "bracketing"
	case PhaseRefining:
		return "refining"
	case PhaseFrontierAdvance:
		return "frontier-advance"
	default:
		return "unknown"
	}
}

// ProbeObserver receives every comparison the driver performs, in order.
// Used by the CLI to show search progress; must not block.
type ProbeObserver func(phase Phase, numBits int)

// Params configures one crossover search.
type Params struct {
	// StartExp sets the initial frontier to 2^StartExp + 1 bits. The slow
	// operation must still be competitive there, otherwise the search fails
	// with a TuningError.
	StartExp int
	// Accuracy is the refinement resolution floor in bits: bisection stops
	// once the bracket is narrower than this.
	Accuracy int
	// Margin is the subtractive fudge applied to bracket upper bounds.
	// Division-like pairs use a larger margin to compensate for their
	// asymmetric operand sizes.
	Margin int
	// Calibrate selects calibrated comparisons for every probe. Disabled,
	// each probe is a single paired measurement: much faster, much noisier.
	Calibrate bool
}

// driverState enumerates the states of the multi-interval search.
//
// Bracketing -> Refining -> FrontierAdvance -> Done
//       ^                         |
//       +------ fast loses -------+
type driverState int

const (
	stateBracketing driverState = iota
	stateRefining
	stateFrontierAdvance
	stateDone
)

// Driver orchestrates repeated bracket-and-refine rounds to discover every
// disjoint interval in which the fast operation wins. Relative performance
// can oscillate with size (cache-line and recursion-depth effects), so after
// each interval the driver advances the frontier and checks whether the win
// is permanent before terminating.
type Driver struct {
	cmp      Comparator
	params   Params
	observer ProbeObserver
	log      logging.Logger
}

// DriverOption configures a Driver during construction.
type DriverOption func(*Driver)

// WithObserver installs a probe observer.
func WithObserver(obs ProbeObserver) DriverOption {
	return func(d *Driver) { d.observer = obs }
}

// WithLogger sets the logger for state-transition debug output.
func WithLogger(log logging.Logger) DriverOption {
	return func(d *Driver) { d.log = log }
}

// NewDriver builds a driver over the given comparator and search parameters.
func NewDriver(cmp Comparator, params Params, opts ...DriverOption) *Driver {
	if params.StartExp <= 0 {
		params.StartExp = DefaultStartExp
	}
	if params.Accuracy <= 0 {
		params.Accuracy = DefaultAccuracy
	}
	d := &Driver{
		cmp:    cmp,
		params: params,
		log:    logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logging.NewNopLogger()
	}
	return d
}

// Run searches the full size axis for intervals in which fast beats slow.
// Intervals are returned in increasing start order, disjoint, the last one
// unbounded. On error, intervals discovered so far are returned alongside it.
func (d *Driver) Run(ctx context.Context, slow, fast *Operation) ([]Interval, error) {
	minLower := (1 << d.params.StartExp) + 1
	lower := minLower

	var intervals []Interval
	var bracketUpper int

	state := stateBracketing
	for state != stateDone {
		switch state {
		case stateBracketing:
			upper, err := d.bracket(ctx, slow, fast, &lower, minLower)
			if err != nil {
				return intervals, err
			}
			bracketUpper = upper
			d.log.Debug("bracket found", logging.Int("lower", lower), logging.Int("upper", upper))
			state = stateRefining

		case stateRefining:
			start, err := d.refine(ctx, slow, fast, lower, bracketUpper)
			if err != nil {
				return intervals, err
			}
			intervals = recordInterval(intervals, Interval{Start: start, End: bracketUpper})
			d.log.Debug("interval recorded", logging.Int("start", start), logging.Int("end", bracketUpper))
			state = stateFrontierAdvance

		case stateFrontierAdvance:
			lower = 2*lower - 1
			wins, err := d.probe(ctx, PhaseFrontierAdvance, slow, fast, lower)
			if err != nil {
				return intervals, err
			}
			if wins {
				// One confirming probe, as the engine has always done:
				// a return to slow-favored behavior beyond this frontier
				// would go undetected.
				intervals[len(intervals)-1].End = Unbounded
				state = stateDone
			} else {
				state = stateBracketing
			}
		}
	}
	return intervals, nil
}

// bracket runs the exponential search: from the current frontier, probe
// upper = 2*(lower-1) - margin and double the frontier until the fast
// operation wins there. A win on the very first probe from the configured
// minimum means the slow-favored regime was never observed, which is a
// configuration error, not a crossover.
func (d *Driver) bracket(ctx context.Context, slow, fast *Operation, lower *int, minLower int) (int, error) {
	for {
		upper := 2*(*lower-1) - d.params.Margin
		wins, err := d.probe(ctx, PhaseBracketing, slow, fast, upper)
		if err != nil {
			return 0, err
		}
		if !wins {
			*lower = 2*(*lower) - 1
			continue
		}
		if *lower == minLower {
			return 0, apperrors.TuningError{
				Pair:    pairName(slow, fast),
				Bits:    upper,
				Message: "start size is too high, decrease it and try again",
			}
		}
		return upper, nil
	}
}

// refine bisects the bracket [start, end] (slow competitive at start, fast
// winning at end) until it is narrower than the accuracy floor, and returns
// the final midpoint as the interval's start boundary. The bracket width
// halves every step, so termination is guaranteed.
func (d *Driver) refine(ctx context.Context, slow, fast *Operation, start, end int) (int, error) {
	var mid int
	for {
		mid = (start + end) / 2
		wins, err := d.probe(ctx, PhaseRefining, slow, fast, mid)
		if err != nil {
			return 0, err
		}
		if wins {
			end = mid
		} else {
			start = mid
		}
		if end-start < d.params.Accuracy {
			return mid, nil
		}
	}
}

// probe performs one comparison, notifying the observer first.
func (d *Driver) probe(ctx context.Context, phase Phase, slow, fast *Operation, numBits int) (bool, error) {
	if d.observer != nil {
		d.observer(phase, numBits)
	}
	wins, err := d.cmp.Compare(ctx, slow, fast, numBits, d.params.Calibrate)
	if err != nil {
		return false, err
	}
	return wins, nil
}

// recordInterval appends iv, clamping the previous interval's provisional end
// when the new interval starts before it.
func recordInterval(intervals []Interval, iv Interval) []Interval {
	if n := len(intervals); n > 0 {
		prev := &intervals[n-1]
		if !prev.IsUnbounded() && iv.Start < prev.End {
			prev.End = iv.Start
		}
	}
	return append(intervals, iv)
}

// pairName labels a slow/fast pairing for diagnostics.
func pairName(slow, fast *Operation) string {
	return fmt.Sprintf("%s vs %s", slow.Name, fast.Name)
}
