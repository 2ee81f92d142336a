package tuner

import (
	"math/big"
	"math/rand"

	apperrors "github.com/agbru/bigtune/internal/errors"
)

// DefaultRetryLimit caps the rejection-sampling loop of the operand generator.
// Each draw fails the exact-length check with probability 1/2, so hitting the
// cap (probability 2^-100) means the randomness source is broken.
const DefaultRetryLimit = 100

// OperandGenerator produces random big integers of an exact minimal bit
// length. Naive generation can yield shorter values (leading zero bits), so
// the generator rejects and redraws until the leading bit is set.
//
// The generator is a pure function of the random stream passed to it: the
// same *rand.Rand state always yields the same value sequence. Callers own
// the stream and reseed it at well-defined points; no global randomness is
// consulted.
type OperandGenerator struct {
	// RetryLimit overrides DefaultRetryLimit when positive.
	RetryLimit int
}

// NewOperandGenerator returns a generator with the default retry cap.
func NewOperandGenerator() *OperandGenerator {
	return &OperandGenerator{RetryLimit: DefaultRetryLimit}
}

// Generate returns a value whose minimal bit length is exactly numBits.
//
// Parameters:
//   - numBits: The required bit length; must be at least 1.
//   - rng: The explicitly seeded random stream to draw from.
//
// Returns:
//   - *big.Int: A value v with v.BitLen() == numBits.
//   - error: A ValidationError for numBits < 1, or a GeneratorError when the
//     retry budget is exhausted.
func (g *OperandGenerator) Generate(numBits int, rng *rand.Rand) (*big.Int, error) {
	if numBits < 1 {
		return nil, apperrors.ValidationError{Field: "numBits", Message: "must be at least 1"}
	}
	limit := g.RetryLimit
	if limit <= 0 {
		limit = DefaultRetryLimit
	}

	bound := new(big.Int).Lsh(big.NewInt(1), uint(numBits))
	for attempt := 0; attempt < limit; attempt++ {
		v := new(big.Int).Rand(rng, bound)
		if v.BitLen() == numBits {
			return v, nil
		}
	}
	return nil, apperrors.GeneratorError{Bits: numBits, Attempts: limit}
}

// GenerateArgs materializes one full argument set for op at the given
// comparison size: sized roles consume the random stream in declaration
// order, fixed roles contribute their constant without touching the stream.
// Two operations declaring the same sized-role sequence therefore see
// bitwise-identical operands when driven from identically seeded streams.
func (g *OperandGenerator) GenerateArgs(op *Operation, numBits int, rng *rand.Rand) (Args, error) {
	var args Args
	for _, role := range op.Roles {
		switch role.Kind {
		case RoleSized:
			factor := role.SizeFactor
			if factor <= 0 {
				factor = 1
			}
			v, err := g.Generate(numBits*factor, rng)
			if err != nil {
				return Args{}, err
			}
			args.Operands = append(args.Operands, v)
		case RoleFixed:
			args.Consts = append(args.Consts, role.Value)
		}
	}
	return args, nil
}
