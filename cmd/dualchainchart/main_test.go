package main

import (
	"testing"

	"github.com/dualchainlab/ReputationCharts/src/repdata"
)

func TestChartSpec_KeepsNonContiguousTicks(t *testing.T) {
	spec := chartSpec()
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 18, 20}
	if len(spec.TickRounds) != len(want) {
		t.Fatalf("tick count %d, want %d", len(spec.TickRounds), len(want))
	}
	for i, r := range want {
		if spec.TickRounds[i] != r {
			t.Fatalf("tick %d = %d, want %d", i, spec.TickRounds[i], r)
		}
	}
}

func TestChartSpec_FinalCallouts(t *testing.T) {
	spec := chartSpec()
	if len(spec.Callouts) != 3 {
		t.Fatalf("expected 3 final callouts got %d", len(spec.Callouts))
	}
	final := repdata.DualChain.FinalIndex()
	if spec.Callouts[0].Round != 20 || spec.Callouts[0].Value != emergActive.Values[final] {
		t.Fatalf("emergency-active callout misplaced: %+v", spec.Callouts[0])
	}
	if spec.Callouts[0].Label != "0.923" {
		t.Fatalf("callout label %q", spec.Callouts[0].Label)
	}
}

func TestChartSpec_BothThresholds(t *testing.T) {
	spec := chartSpec()
	if len(spec.Thresholds) != 2 {
		t.Fatalf("expected 2 thresholds got %d", len(spec.Thresholds))
	}
	if spec.Thresholds[0].Y != 0.5 || spec.Thresholds[1].Y != 0.7 {
		t.Fatalf("threshold values %v, %v", spec.Thresholds[0].Y, spec.Thresholds[1].Y)
	}
}

func TestCompose_FullResolution(t *testing.T) {
	img, err := compose()
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	b := img.Bounds()
	// 14x8 inches at 300 DPI
	if b.Dx() != 4200 || b.Dy() != 2400 {
		t.Fatalf("composed image %dx%d, want 4200x2400", b.Dx(), b.Dy())
	}
}
