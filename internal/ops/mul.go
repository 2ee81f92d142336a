package ops

import (
	"math/big"
	"math/bits"

	"github.com/remyoudompheng/bigfft"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigtune/internal/tuner"
)

// newMulPair builds the multiplication pair: math/big's Mul (Karatsuba at the
// sizes of interest, low constant factors) against FFT-based multiplication
// (Schönhage-Strassen, O(n log n) with heavy fixed overhead).
//
// The fast operation declares a fixed worker-width role. During tuning it is
// held at 1: varying it would confound the comparison with parallelism
// effects, and the FFT crossover is only meaningful for serial execution.
func newMulPair() Pair {
	return Pair{
		Name:        "mul",
		Description: "big.Int multiplication: Karatsuba vs FFT",
		Margin:      MulMargin,
		Slow: &tuner.Operation{
			Name:  "multiplyKaratsuba",
			Roles: []tuner.Role{tuner.Sized(1), tuner.Sized(1)},
			Run: func(a tuner.Args) error {
				new(big.Int).Mul(a.Operands[0], a.Operands[1])
				return nil
			},
		},
		Fast: &tuner.Operation{
			Name:  "multiplyFFT",
			Roles: []tuner.Role{tuner.Sized(1), tuner.Sized(1), tuner.Fixed(1)},
			Run: func(a tuner.Args) error {
				mulFFT(a.Operands[0], a.Operands[1], a.Consts[0])
				return nil
			},
		},
	}
}

// mulFFT multiplies x and y with FFT, optionally splitting the work across
// the given number of workers.
func mulFFT(x, y *big.Int, workers int64) *big.Int {
	if workers <= 1 {
		return bigfft.Mul(x, y)
	}
	return mulFFTParallel(x, y, int(workers))
}

// mulFFTParallel splits x into word-aligned chunks, multiplies each chunk by
// y concurrently, and recombines the partial products by shift-add:
//
//	x*y = sum_i (chunk_i * y) << (i * chunkWords * wordBits)
//
// Only positive operands are supported; the tuner's generator never produces
// anything else.
func mulFFTParallel(x, y *big.Int, workers int) *big.Int {
	limbs := x.Bits()
	chunkWords := (len(limbs) + workers - 1) / workers
	if chunkWords == 0 {
		return bigfft.Mul(x, y)
	}

	type partial struct {
		shift uint
		prod  *big.Int
	}
	var parts []partial
	for lo := 0; lo < len(limbs); lo += chunkWords {
		hi := lo + chunkWords
		if hi > len(limbs) {
			hi = len(limbs)
		}
		seg := new(big.Int).SetBits(append([]big.Word(nil), limbs[lo:hi]...))
		parts = append(parts, partial{shift: uint(lo) * bits.UintSize, prod: seg})
	}

	var g errgroup.Group
	for i := range parts {
		p := &parts[i]
		g.Go(func() error {
			p.prod = bigfft.Mul(p.prod, y)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	result := new(big.Int)
	shifted := new(big.Int)
	for _, p := range parts {
		result.Add(result, shifted.Lsh(p.prod, p.shift))
	}
	return result
}
