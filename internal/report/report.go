// Package report renders tuning results for the operator. No particular
// output format is part of the engine's contract; this is the CLI's rendering.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/bigtune/internal/format"
	"github.com/agbru/bigtune/internal/ops"
	"github.com/agbru/bigtune/internal/sysmon"
	"github.com/agbru/bigtune/internal/tuner"
	"github.com/agbru/bigtune/internal/ui"
)

// RenderHost prints the host snapshot header. Thresholds are only valid for
// the machine that produced them, so every report starts with one.
func RenderHost(out io.Writer, snap sysmon.Snapshot) {
	styles := ui.NewReportStyles()
	model := snap.CPUModel
	if model == "" {
		model = "unknown CPU"
	}
	fmt.Fprintln(out, styles.Dim.Render(
		fmt.Sprintf("Host: %s, %d logical CPUs, %d MB RAM, %s", model, snap.NumCPU, snap.TotalMemMB, snap.GoVersion)))
}

// RenderHeader prints the per-pair heading before the search starts.
func RenderHeader(out io.Writer, pair ops.Pair) {
	styles := ui.NewReportStyles()
	fmt.Fprintln(out, styles.Title.Render(
		fmt.Sprintf("Timing %s vs %s (%s)", pair.Slow.Name, pair.Fast.Name, pair.Description)))
}

// RenderIntervals prints the discovered intervals as a table in bits and
// words. The final interval of a successful run is open-ended and rendered
// with an infinity bound.
func RenderIntervals(out io.Writer, pair ops.Pair, intervals []tuner.Interval) {
	fmt.Fprintf(out, "\nIntervals for which %s is faster than %s:\n", pair.Fast.Name, pair.Slow.Name)
	if len(intervals) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sBits%s\t %sWords%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	for _, iv := range intervals {
		fmt.Fprintf(tw, "  %s%s..%s%s\t %s%s..%s%s\n",
			ui.ColorGreen(),
			format.FormatBound(iv.Start, false),
			format.FormatBound(iv.End, iv.IsUnbounded()),
			ui.ColorReset(),
			ui.ColorCyan(),
			format.FormatBound(iv.Start/format.WordBits, false),
			wordBound(iv),
			ui.ColorReset())
	}
	tw.Flush()
}

// wordBound converts an interval's end boundary to words.
func wordBound(iv tuner.Interval) string {
	if iv.IsUnbounded() {
		return "infinity"
	}
	return format.FormatBound(iv.End/format.WordBits, false)
}

// RenderTuningFailure prints the start-too-high diagnostic. This is a
// configuration outcome, rendered distinctly from a normal result.
func RenderTuningFailure(out io.Writer, pair ops.Pair, err error) {
	fmt.Fprintf(out, "%sTuning failed for %s:%s %v\n", ui.ColorRed(), pair.Name, ui.ColorReset(), err)
	fmt.Fprintln(out, "Decrease the start size so the slow-favored regime is observable.")
}

// RenderNote prints an operator note between pair runs, mirroring the
// dependency of later pairs on earlier results (a division threshold is only
// meaningful once the multiplication thresholds it builds on are applied).
func RenderNote(out io.Writer, lines ...string) {
	for _, line := range lines {
		fmt.Fprintf(out, "%s***** %s%s\n", ui.ColorYellow(), line, ui.ColorReset())
	}
}

// Separator prints a horizontal rule between pair reports.
func Separator(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("\u2500", 60))
}
