package tuner

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	apperrors "github.com/agbru/bigtune/internal/errors"
)

// stepClock returns a fake clock that advances by step on every call,
// making each timed invocation appear to take exactly step.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

// captureOp records every operand set it is invoked with.
type captureOp struct {
	op   *Operation
	seen [][]*big.Int
}

func newCaptureOp(name string, roles []Role) *captureOp {
	c := &captureOp{}
	c.op = &Operation{
		Name:  name,
		Roles: roles,
		Run: func(a Args) error {
			operands := make([]*big.Int, len(a.Operands))
			for i, v := range a.Operands {
				operands[i] = new(big.Int).Set(v)
			}
			c.seen = append(c.seen, operands)
			return nil
		},
	}
	return c
}

// mulShape is the operand shape shared by the tests: two same-sized operands.
func mulShape() []Role { return []Role{Sized(1), Sized(1)} }

// TestCompare_IdenticalOperandStreams verifies the core invariant: under one
// comparison, the slow batch and the fast batch see bitwise-identical operand
// sequences.
func TestCompare_IdenticalOperandStreams(t *testing.T) {
	t.Parallel()
	slow := newCaptureOp("slowOp", mulShape())
	fast := newCaptureOp("fastOp", mulShape())

	cmp := NewTimedComparator(
		WithSeed(func() int64 { return 12345 }),
		WithMinDuration(time.Nanosecond),
		withClock(stepClock(time.Microsecond)),
	)

	if _, err := cmp.Compare(context.Background(), slow.op, fast.op, 256, true); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	// Calibration ran one paired iteration, measurement one batch each:
	// both operations were invoked twice, and the measurement invocations
	// (index 1) must match operand for operand.
	if len(slow.seen) != len(fast.seen) {
		t.Fatalf("invocation counts differ: slow %d, fast %d", len(slow.seen), len(fast.seen))
	}
	slowMeasured := slow.seen[len(slow.seen)-1]
	fastMeasured := fast.seen[len(fast.seen)-1]
	if len(slowMeasured) != len(fastMeasured) {
		t.Fatalf("operand counts differ: %d vs %d", len(slowMeasured), len(fastMeasured))
	}
	for i := range slowMeasured {
		if slowMeasured[i].Cmp(fastMeasured[i]) != 0 {
			t.Errorf("operand %d differs between slow and fast batches", i)
		}
	}
}

// TestCompare_CalibrationCountReused verifies that calibration iterates until
// the duration floor is met and that the measurement phase reuses the count.
func TestCompare_CalibrationCountReused(t *testing.T) {
	t.Parallel()
	slow := newCaptureOp("slowOp", mulShape())
	fast := newCaptureOp("fastOp", mulShape())

	// Every invocation appears to take 1µs; a 4µs floor therefore needs two
	// paired iterations (2µs accumulated per pair).
	cmp := NewTimedComparator(
		WithSeed(func() int64 { return 1 }),
		WithMinDuration(4*time.Microsecond),
		withClock(stepClock(time.Microsecond)),
	)

	if _, err := cmp.Compare(context.Background(), slow.op, fast.op, 64, true); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	// 2 calibration + 2 measurement invocations per operation.
	if got := len(slow.seen); got != 4 {
		t.Errorf("slow invocations = %d, want 4", got)
	}
	if got := len(fast.seen); got != 4 {
		t.Errorf("fast invocations = %d, want 4", got)
	}
}

// TestCompare_TieFavorsSlow verifies the conservative decision rule: equal
// summed times do not claim a crossover.
func TestCompare_TieFavorsSlow(t *testing.T) {
	t.Parallel()
	slow := newCaptureOp("slowOp", mulShape())
	fast := newCaptureOp("fastOp", mulShape())

	// The stepped clock makes every invocation take exactly the same time,
	// so the batch sums tie.
	cmp := NewTimedComparator(
		WithSeed(func() int64 { return 99 }),
		withClock(stepClock(time.Microsecond)),
	)

	fastWins, err := cmp.Compare(context.Background(), slow.op, fast.op, 64, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if fastWins {
		t.Error("tie must favor the slow operation")
	}
}

// TestCompare_SingleIterationWithoutCalibration verifies the degraded mode:
// calibrate=false takes exactly one paired measurement.
func TestCompare_SingleIterationWithoutCalibration(t *testing.T) {
	t.Parallel()
	slow := newCaptureOp("slowOp", mulShape())
	fast := newCaptureOp("fastOp", mulShape())

	cmp := NewTimedComparator(
		WithSeed(func() int64 { return 7 }),
		withClock(stepClock(time.Microsecond)),
	)

	if _, err := cmp.Compare(context.Background(), slow.op, fast.op, 64, false); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if len(slow.seen) != 1 || len(fast.seen) != 1 {
		t.Errorf("expected a single paired measurement, got slow=%d fast=%d", len(slow.seen), len(fast.seen))
	}
}

// TestCompare_InvocationErrorPropagates verifies a failing operation aborts
// the comparison with an InvocationError identifying the operation and size.
func TestCompare_InvocationErrorPropagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	slow := &Operation{Name: "slowOp", Roles: mulShape(), Run: func(Args) error { return boom }}
	fast := newCaptureOp("fastOp", mulShape())

	cmp := NewTimedComparator(
		WithSeed(func() int64 { return 7 }),
		withClock(stepClock(time.Microsecond)),
	)

	_, err := cmp.Compare(context.Background(), slow, fast.op, 128, false)
	if err == nil {
		t.Fatal("expected invocation error")
	}
	var invErr apperrors.InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %T: %v", err, err)
	}
	if invErr.Operation != "slowOp" || invErr.Bits != 128 {
		t.Errorf("unexpected fields: %+v", invErr)
	}
	if !errors.Is(err, boom) {
		t.Error("expected errors.Is to find the underlying cause")
	}
}

// TestCompare_CanceledContext verifies cancellation is honored between
// measurements without disturbing the decision contract.
func TestCompare_CanceledContext(t *testing.T) {
	t.Parallel()
	slow := newCaptureOp("slowOp", mulShape())
	fast := newCaptureOp("fastOp", mulShape())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmp := NewTimedComparator(WithSeed(func() int64 { return 7 }))
	_, err := cmp.Compare(ctx, slow.op, fast.op, 64, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
