// Package format provides display formatting helpers shared by the CLI and
// report layers.
package format

import (
	"fmt"
	"math/bits"
	"time"
)

// WordBits is the number of bits in a machine word, used to convert interval
// boundaries from bits to word counts for the report.
const WordBits = bits.UintSize

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatBits renders a bit count together with the equivalent whole-word count,
// e.g. "133055 bits (2079 words)".
func FormatBits(numBits int) string {
	return fmt.Sprintf("%d bits (%d words)", numBits, numBits/WordBits)
}

// FormatBound renders one interval boundary in bits, using the given infinity
// marker for an unbounded end.
func FormatBound(numBits int, unbounded bool) string {
	if unbounded {
		return "infinity"
	}
	return fmt.Sprintf("%d", numBits)
}
