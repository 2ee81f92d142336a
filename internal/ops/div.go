package ops

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"

	"github.com/agbru/bigtune/internal/tuner"
)

var one = big.NewInt(1)

// newDivPair builds the division pair: math/big's QuoRem (Knuth-style long
// division, subquadratic internally at large sizes but with low overhead)
// against Newton-Raphson reciprocal division whose multiplications run
// through the FFT. The dividend carries size factor 2 so it is twice as wide
// as the divisor, keeping the quotient width equal to the comparison size.
func newDivPair() Pair {
	return Pair{
		Name:        "div",
		Description: "big.Int division: Knuth vs Newton reciprocal",
		Margin:      DivMargin,
		Note: []string{
			"The Newton crossover depends on the multiplication backend.",
			"Re-tune division after changing multiplication thresholds.",
		},
		Slow: &tuner.Operation{
			Name:  "divideKnuth",
			Roles: []tuner.Role{tuner.Sized(2), tuner.Sized(1)},
			Run: func(a tuner.Args) error {
				new(big.Int).QuoRem(a.Operands[0], a.Operands[1], new(big.Int))
				return nil
			},
		},
		Fast: &tuner.Operation{
			Name:  "divideNewton",
			Roles: []tuner.Role{tuner.Sized(2), tuner.Sized(1)},
			Run: func(a tuner.Args) error {
				divNewton(a.Operands[0], a.Operands[1])
				return nil
			},
		},
	}
}

// seedBits is the precision of the initial reciprocal estimate, taken from
// the divisor's leading bits with a single hardware-width division.
const seedBits = 64

// divNewton computes floor(x/y) for positive x and y.
//
// It refines a fixed-point reciprocal r ~= 2^(2k)/y (k = bit length of x) by
// Newton iteration, r' = r*(2^(2k+1) - r*y) >> 2k, doubling the number of
// correct bits each step, then forms q = x*r >> 2k and corrects the result to
// the exact quotient. All large multiplications go through the FFT.
func divNewton(x, y *big.Int) *big.Int {
	if x.Cmp(y) < 0 {
		return new(big.Int)
	}

	k := uint(x.BitLen())
	scale := new(big.Int).Lsh(one, 2*k)

	yBits := uint(y.BitLen())
	var r *big.Int
	if yBits <= seedBits {
		// The divisor fits a machine word; the exact reciprocal is one
		// schoolbook division away.
		r = new(big.Int).Quo(scale, y)
	} else {
		// Seed from the divisor's top bits, then iterate. The shift keeps
		// the seed division at hardware width:
		//   r0 = 2^(2k - (yBits - seedBits)) / (y >> (yBits - seedBits))
		drop := yBits - seedBits
		yTop := new(big.Int).Rsh(y, drop)
		r = new(big.Int).Quo(new(big.Int).Lsh(one, 2*k-drop), yTop)

		doubled := new(big.Int)
		for prec := uint(seedBits) - 2; prec < 2*k; prec *= 2 {
			t := bigfft.Mul(r, y)
			t.Sub(doubled.Lsh(scale, 1), t)
			r = bigfft.Mul(r, t)
			r.Rsh(r, 2*k)
		}
	}

	q := bigfft.Mul(x, r)
	q.Rsh(q, 2*k)

	// The approximation is within a few ulps; walk to the exact quotient.
	rem := new(big.Int).Sub(x, bigfft.Mul(q, y))
	for rem.Sign() < 0 {
		q.Sub(q, one)
		rem.Add(rem, y)
	}
	for rem.Cmp(y) >= 0 {
		q.Add(q, one)
		rem.Sub(rem, y)
	}
	return q
}
