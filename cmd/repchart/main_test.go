package main

import (
	"testing"

	"github.com/dualchainlab/ReputationCharts/src/repdata"
)

func TestChartSpec_TicksMatchDataset(t *testing.T) {
	spec := chartSpec()
	if len(spec.TickRounds) != len(repdata.SingleChain.Rounds) {
		t.Fatalf("tick count %d, want %d", len(spec.TickRounds), len(repdata.SingleChain.Rounds))
	}
	for i, r := range repdata.SingleChain.Rounds {
		if spec.TickRounds[i] != r {
			t.Fatalf("tick %d = %d, want %d", i, spec.TickRounds[i], r)
		}
	}
}

func TestChartSpec_SeriesAlignedWithRounds(t *testing.T) {
	spec := chartSpec()
	if len(spec.Lines) != 2 {
		t.Fatalf("expected 2 lines got %d", len(spec.Lines))
	}
	for _, l := range spec.Lines {
		if len(l.Rounds) != len(l.Values) {
			t.Fatalf("series %q has %d x values and %d y values", l.Name, len(l.Rounds), len(l.Values))
		}
	}
	if spec.Lines[0].Values[len(spec.Lines[0].Values)-1] != 0.733346 {
		t.Fatalf("honest final value drifted: %v", spec.Lines[0].Values)
	}
}

func TestCompose_FullResolution(t *testing.T) {
	img, err := compose()
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	b := img.Bounds()
	// 12x7 inches at 300 DPI
	if b.Dx() != 3600 || b.Dy() != 2100 {
		t.Fatalf("composed image %dx%d, want 3600x2100", b.Dx(), b.Dy())
	}
}
