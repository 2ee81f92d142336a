package tuner

import "math/big"

// RoleKind distinguishes the two kinds of operation arguments.
type RoleKind int

const (
	// RoleSized marks an argument that receives a freshly generated operand
	// whose bit length tracks the comparison size.
	RoleSized RoleKind = iota
	// RoleFixed marks a non-varying auxiliary argument (e.g. a worker-width
	// hint) supplied with the same value for every comparison.
	RoleFixed
)

// Role describes one argument of an Operation. The role list of an operation
// is fixed for its lifetime and fully determines how arguments are generated.
type Role struct {
	// Kind selects between a sized operand and a fixed constant.
	Kind RoleKind
	// SizeFactor scales the comparison bit size for sized operands. A
	// division pair declares its dividend with factor 2 so the dividend is
	// twice as wide as the divisor. Zero is treated as 1.
	SizeFactor int
	// Value is the constant supplied for fixed roles.
	Value int64
}

// Sized returns a sized-operand role whose bit length is factor times the
// comparison size.
func Sized(factor int) Role { return Role{Kind: RoleSized, SizeFactor: factor} }

// Fixed returns a fixed-constant role carrying the given value.
func Fixed(value int64) Role { return Role{Kind: RoleFixed, Value: value} }

// Args is one materialized argument set for an operation invocation.
// Operands appear in sized-role declaration order, Consts in fixed-role order.
type Args struct {
	Operands []*big.Int
	Consts   []int64
}

// Operation is an opaque, timeable unit of work. The engine never inspects
// what Run does; it only generates arguments matching Roles, invokes Run, and
// measures the elapsed wall-clock time.
type Operation struct {
	// Name identifies the operation in reports and diagnostics.
	Name string
	// Roles declares the argument shape.
	Roles []Role
	// Run executes the operation once with the given arguments. A non-nil
	// error aborts the enclosing tuning run.
	Run func(Args) error
}

// Unbounded is the End value of an open-ended interval. The final interval of
// every successful run is unbounded: past some size the fast algorithm is
// expected to win permanently.
const Unbounded = 0

// Interval is one size range, in bits, within which the fast operation beat
// the slow operation under the configured repetition count.
type Interval struct {
	// Start is the refined lower boundary in bits.
	Start int
	// End is the provisional upper boundary in bits, or Unbounded.
	End int
}

// IsUnbounded reports whether the interval is open-ended.
func (iv Interval) IsUnbounded() bool { return iv.End == Unbounded }
