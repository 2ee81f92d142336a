//go:generate mockgen -source=comparator.go -destination=mocks/mock_comparator.go -package=mocks

package tuner

import (
	"context"
	"math/rand"
	"time"

	apperrors "github.com/agbru/bigtune/internal/errors"
	"github.com/agbru/bigtune/internal/logging"
)

// DefaultMinDuration is the calibration floor: paired invocations are
// accumulated until at least this much wall time has elapsed, so that
// short-running operations are repeated often enough to amortize timer
// resolution and fixed overhead.
const DefaultMinDuration = 2 * time.Second

// Comparator decides, for a fixed size, whether the fast operation beats the
// slow operation. Implementations must be deterministic in their operand
// streams (identical inputs to both operations); the timing decision itself
// is inherently non-reproducible.
type Comparator interface {
	// Compare reports whether fast strictly beat slow at numBits. With
	// calibrate true the repetition count is derived from the calibration
	// floor; otherwise a single paired measurement is taken.
	Compare(ctx context.Context, slow, fast *Operation, numBits int, calibrate bool) (bool, error)
}

// TimedComparator measures real wall-clock time. One seed is drawn per
// comparison; the calibration pass, the slow batch, and the fast batch each
// restart a fresh random stream from that seed, so every phase sees the same
// operand sequence and any time difference is due to the algorithms, not the
// data.
//
// The two measurement batches run contiguously (all slow iterations, then all
// fast iterations) rather than interleaved, to keep cache and branch-predictor
// interference from skewing one side.
type TimedComparator struct {
	// MinDuration overrides DefaultMinDuration when positive.
	MinDuration time.Duration
	// Generator produces the operands. Defaults to NewOperandGenerator().
	Generator *OperandGenerator
	// Seed supplies the per-comparison seed. Defaults to a time-derived
	// fresh seed per comparison; tests and reproducible runs pin it.
	Seed func() int64

	// now is the clock, injectable for tests.
	now func() time.Time
	log logging.Logger
}

// ComparatorOption configures a TimedComparator during construction.
type ComparatorOption func(*TimedComparator)

// WithMinDuration sets the calibration floor.
func WithMinDuration(d time.Duration) ComparatorOption {
	return func(c *TimedComparator) { c.MinDuration = d }
}

// WithSeed pins the per-comparison seed source.
func WithSeed(seed func() int64) ComparatorOption {
	return func(c *TimedComparator) { c.Seed = seed }
}

// WithComparatorLogger sets the logger used for per-comparison debug output.
func WithComparatorLogger(log logging.Logger) ComparatorOption {
	return func(c *TimedComparator) { c.log = log }
}

// withClock replaces the wall clock. Test-only.
func withClock(now func() time.Time) ComparatorOption {
	return func(c *TimedComparator) { c.now = now }
}

// NewTimedComparator builds a comparator with the given options applied over
// the defaults.
func NewTimedComparator(opts ...ComparatorOption) *TimedComparator {
	c := &TimedComparator{
		MinDuration: DefaultMinDuration,
		Generator:   NewOperandGenerator(),
		now:         time.Now,
		log:         logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Generator == nil {
		c.Generator = NewOperandGenerator()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = logging.NewNopLogger()
	}
	return c
}

// nextSeed draws the seed for one comparison.
func (c *TimedComparator) nextSeed() int64 {
	if c.Seed != nil {
		return c.Seed()
	}
	return time.Now().UnixNano()
}

func (c *TimedComparator) minDuration() time.Duration {
	if c.MinDuration > 0 {
		return c.MinDuration
	}
	return DefaultMinDuration
}

// Compare implements Comparator. Ties favor the slow operation: a crossover
// is only claimed on a strict win.
func (c *TimedComparator) Compare(ctx context.Context, slow, fast *Operation, numBits int, calibrate bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	seed := c.nextSeed()
	iterations := 1
	if calibrate {
		n, err := c.calibrate(ctx, slow, fast, numBits, seed)
		if err != nil {
			return false, err
		}
		iterations = n
	}

	slowTotal, err := c.measure(ctx, slow, numBits, seed, iterations)
	if err != nil {
		return false, err
	}
	fastTotal, err := c.measure(ctx, fast, numBits, seed, iterations)
	if err != nil {
		return false, err
	}

	fastWins := fastTotal < slowTotal
	c.log.Debug("comparison",
		logging.Int("bits", numBits),
		logging.Int("iterations", iterations),
		logging.Dur("slow_total", slowTotal),
		logging.Dur("fast_total", fastTotal),
		logging.Int64("seed", seed),
	)
	return fastWins, nil
}

// calibrate performs paired invocations (slow then fast, freshly generated
// matched operands) until the accumulated elapsed time reaches the floor, and
// returns the iteration count to reuse for measurement.
func (c *TimedComparator) calibrate(ctx context.Context, slow, fast *Operation, numBits int, seed int64) (int, error) {
	rng := rand.New(rand.NewSource(seed))
	iterations := 0
	var total time.Duration
	floor := c.minDuration()

	for total < floor {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		elapsed, err := c.timeOnce(slow, numBits, rng)
		if err != nil {
			return 0, err
		}
		total += elapsed

		elapsed, err = c.timeOnce(fast, numBits, rng)
		if err != nil {
			return 0, err
		}
		total += elapsed
		iterations++
	}
	return iterations, nil
}

// measure runs all iterations of one operation back-to-back from a stream
// restarted at seed and returns the summed elapsed time.
func (c *TimedComparator) measure(ctx context.Context, op *Operation, numBits int, seed int64, iterations int) (time.Duration, error) {
	rng := rand.New(rand.NewSource(seed))
	var total time.Duration
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		elapsed, err := c.timeOnce(op, numBits, rng)
		if err != nil {
			return 0, err
		}
		total += elapsed
	}
	return total, nil
}

// timeOnce generates one argument set and times a single invocation. Operand
// generation happens outside the timed region.
func (c *TimedComparator) timeOnce(op *Operation, numBits int, rng *rand.Rand) (time.Duration, error) {
	args, err := c.Generator.GenerateArgs(op, numBits, rng)
	if err != nil {
		return 0, err
	}
	start := c.now()
	runErr := op.Run(args)
	elapsed := c.now().Sub(start)
	if runErr != nil {
		return 0, apperrors.InvocationError{Operation: op.Name, Bits: numBits, Cause: runErr}
	}
	return elapsed, nil
}
