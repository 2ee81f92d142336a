package report

import (
	"bytes"
	"strings"
	"testing"

	apperrors "github.com/agbru/bigtune/internal/errors"
	"github.com/agbru/bigtune/internal/format"
	"github.com/agbru/bigtune/internal/ops"
	"github.com/agbru/bigtune/internal/sysmon"
	"github.com/agbru/bigtune/internal/tuner"
	"github.com/agbru/bigtune/internal/ui"
)

func withPlainTheme(t *testing.T) {
	t.Helper()
	original := ui.CurrentTheme()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}

func mulPair(t *testing.T) ops.Pair {
	t.Helper()
	pair, ok := ops.NewDefaultRegistry().Get("mul")
	if !ok {
		t.Fatal("mul pair missing")
	}
	return pair
}

func TestRenderIntervals(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	intervals := []tuner.Interval{
		{Start: 100 * format.WordBits, End: 200 * format.WordBits},
		{Start: 400 * format.WordBits, End: tuner.Unbounded},
	}
	RenderIntervals(&buf, mulPair(t), intervals)

	out := buf.String()
	for _, want := range []string{
		"multiplyFFT is faster than multiplyKaratsuba",
		"100..200",       // word bounds
		"400..infinity",  // unbounded end
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderIntervals_Empty(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer
	RenderIntervals(&buf, mulPair(t), nil)
	if !strings.Contains(buf.String(), "(none)") {
		t.Errorf("empty interval list should render (none), got:\n%s", buf.String())
	}
}

func TestRenderHeaderAndHost(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	RenderHost(&buf, sysmon.Snapshot{CPUModel: "TestCPU", NumCPU: 8, TotalMemMB: 16384, GoVersion: "go1.25.0"})
	RenderHeader(&buf, mulPair(t))

	out := buf.String()
	for _, want := range []string{"TestCPU", "8 logical CPUs", "multiplyKaratsuba vs multiplyFFT"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTuningFailure(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	err := apperrors.TuningError{Pair: "mul", Bits: 8192, Message: "start size is too high, decrease it and try again"}
	RenderTuningFailure(&buf, mulPair(t), err)

	out := buf.String()
	if !strings.Contains(out, "start size is too high") {
		t.Errorf("output missing diagnostic:\n%s", out)
	}
	if !strings.Contains(out, "Decrease the start size") {
		t.Errorf("output missing remediation:\n%s", out)
	}
}
