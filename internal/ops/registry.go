package ops

import (
	"sort"

	"github.com/agbru/bigtune/internal/tuner"
)

// Bracketing margins per operation kind. Division pairs use a larger
// subtractive fudge to compensate for the dividend/divisor size asymmetry.
const (
	MulMargin = 0
	DivMargin = 10
)

// Pair binds a slow and a fast operation for the same arithmetic operation,
// plus the bracketing margin appropriate for the operation kind.
type Pair struct {
	// Name is the short identifier used on the command line.
	Name string
	// Description is a one-line summary for listings and report headers.
	Description string
	// Slow is the low-overhead, asymptotically slower operation.
	Slow *tuner.Operation
	// Fast is the high-overhead, asymptotically faster operation.
	Fast *tuner.Operation
	// Margin is the bracketer's subtractive fudge factor in bits.
	Margin int
	// Note holds caveat lines printed after the pair's results.
	Note []string
}

// Registry holds the available operation pairs.
type Registry struct {
	pairs map[string]Pair
}

// NewRegistry returns a registry holding the given pairs.
func NewRegistry(pairs ...Pair) *Registry {
	r := &Registry{pairs: make(map[string]Pair, len(pairs))}
	for _, p := range pairs {
		r.pairs[p.Name] = p
	}
	return r
}

// NewDefaultRegistry returns a registry with the built-in pairs.
func NewDefaultRegistry() *Registry {
	return NewRegistry(newMulPair(), newDivPair())
}

// List returns the registered pair names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.pairs))
	for name := range r.pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the pair with the given name.
func (r *Registry) Get(name string) (Pair, bool) {
	p, ok := r.pairs[name]
	return p, ok
}

// GetAll returns all pairs in name order.
func (r *Registry) GetAll() []Pair {
	pairs := make([]Pair, 0, len(r.pairs))
	for _, name := range r.List() {
		pairs = append(pairs, r.pairs[name])
	}
	return pairs
}
