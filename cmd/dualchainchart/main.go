// Dual-chain reputation chart.
//
// Renders the 20-round four-profile comparison showing the effect of the
// emergency transaction weight multiplier: growth arrows over rounds 5-10,
// the validator-threshold breakthrough of the emergency-active node and a
// stats panel with growth rates and penalty ratios. Saves
// dualchain_reputation_chart.png at 300 DPI and opens a viewer window.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dualchainlab/ReputationCharts/src/repchart"
	"github.com/dualchainlab/ReputationCharts/src/repdata"
	"github.com/dualchainlab/ReputationCharts/src/repstats"
)

const (
	outputFile = "dualchain_reputation_chart.png"
	outputDPI  = 300
	widthIn    = 14
	heightIn   = 8
	// Logical canvas at 100 px/inch, upscaled to the 300 DPI raster on save.
	logicalW = widthIn * 100
	logicalH = heightIn * 100
	scale    = outputDPI / 100

	// Growth-rate comparison interval (sample indexes; rounds 5 and 10).
	growthStart = 5
	growthEnd   = 10
)

var (
	emergActive = repdata.DualChain.Series[repdata.DualEmergencyActive]
	normalOnly  = repdata.DualChain.Series[repdata.DualNormalOnly]
	emergMal    = repdata.DualChain.Series[repdata.DualEmergencyMalicious]
	normalMal   = repdata.DualChain.Series[repdata.DualNormalMalicious]
)

func seriesColor(s repdata.Series) drawing.Color { return drawing.ColorFromHex(s.Hex) }

func rgbaColor(s repdata.Series) color.RGBA {
	c := seriesColor(s)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func chartSpec() repchart.Spec {
	rounds := repdata.DualChain.RoundsFloat()
	final := repdata.DualChain.FinalIndex()
	lastRound := float64(repdata.DualChain.Rounds[final])

	line := func(s repdata.Series, width, dot float64) repchart.Line {
		return repchart.Line{Name: s.Name, Color: seriesColor(s), Width: width, DotWidth: dot, Rounds: rounds, Values: s.Values}
	}
	callout := func(s repdata.Series, idx int) repchart.Callout {
		return repchart.Callout{
			Round: float64(repdata.DualChain.Rounds[idx]),
			Value: s.Values[idx],
			Label: fmt.Sprintf("%.3f", s.Values[idx]),
			Color: seriesColor(s),
		}
	}

	return repchart.Spec{
		Title:      "Dual-Chain Reputation: Emergency Transaction Weighting Effect",
		XName:      "Consensus Round",
		YName:      "Reputation",
		TickRounds: repdata.DualChain.Rounds,
		XMin:       -0.5, XMax: lastRound + 0.5,
		YMin: 0.0, YMax: 1.0,
		Width:  logicalW,
		Height: logicalH,
		Lines: []repchart.Line{
			line(emergActive, 3.0, 6),
			line(normalOnly, 2.5, 5),
			line(emergMal, 3.0, 6),
			line(normalMal, 2.5, 5),
		},
		Thresholds: []repchart.Threshold{
			{Name: fmt.Sprintf("Reputation threshold (%.1f)", repstats.Baseline), Y: repstats.Baseline, Color: drawing.ColorFromHex("808080"), Width: 2.0, Dash: []float64{6, 4}},
			{Name: fmt.Sprintf("Validator threshold (%.1f)", repstats.ValidatorThreshold), Y: repstats.ValidatorThreshold, Color: drawing.ColorFromHex("f39c12"), Width: 2.0, Dash: []float64{2, 4}},
		},
		Callouts: []repchart.Callout{
			callout(emergActive, final),
			callout(normalOnly, final),
			callout(emergMal, final),
		},
	}
}

// growthArrow draws a double-headed arrow across the comparison interval of
// one series with its delta label beside the midpoint.
func growthArrow(rgba *image.RGBA, m repchart.Mapper, s repdata.Series, labelDrop float64) {
	col := rgbaColor(s)
	x1, y1 := m.Pt(float64(repdata.DualChain.Rounds[growthStart])+0.3, s.Values[growthStart])
	x2, y2 := m.Pt(float64(repdata.DualChain.Rounds[growthEnd])-0.3, s.Values[growthEnd])
	repchart.Arrow(rgba, x1, y1, x2, y2, col, true)

	delta := repstats.Growth(s.Values, growthStart, growthEnd)
	mid := (s.Values[growthStart]+s.Values[growthEnd])/2 - labelDrop
	lx, ly := m.Pt(float64(repdata.DualChain.Rounds[growthStart])+2.5, mid)
	repchart.TextBlock(rgba, lx, ly, fmt.Sprintf("+%.3f", delta), col, color.RGBA{R: 255, G: 255, B: 255, A: 230})
}

func compose() (image.Image, error) {
	spec := chartSpec()
	img, err := repchart.Render(spec)
	if err != nil {
		return nil, err
	}
	rgba := repchart.ToRGBA(img)
	m := repchart.NewMapper(spec)

	// Initial-value marker at round 0.
	ax, ay := m.Pt(0.5, 0.55)
	px, py := m.Pt(0, repstats.Baseline)
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	repchart.Arrow(rgba, ax, ay, px, py, gray, false)
	repchart.TextBlock(rgba, ax, ay-34, fmt.Sprintf("initial %.3f", repstats.Baseline), gray, color.RGBA{R: 255, G: 255, B: 255, A: 230})

	// Emergency-active node crossing the validator threshold at round 5.
	bCol := rgbaColor(emergActive)
	bx, by := m.Pt(6.5, emergActive.Values[growthStart]+0.08)
	px, py = m.Pt(float64(repdata.DualChain.Rounds[growthStart]), emergActive.Values[growthStart])
	repchart.Arrow(rgba, bx, by, px, py, bCol, false)
	repchart.TextBlock(rgba, bx, by-50,
		fmt.Sprintf("validator threshold crossed\n%.3f", emergActive.Values[growthStart]),
		bCol, color.RGBA{R: 220, G: 245, B: 220, A: 240})

	// Growth comparison arrows over rounds 5-10.
	growthArrow(rgba, m, emergActive, 0)
	growthArrow(rgba, m, normalOnly, 0.03)

	// Stats panel, top-left.
	stats := repstats.DualChainSummary(
		repdata.DualChain.Rounds,
		emergActive.Values, normalOnly.Values, emergMal.Values, normalMal.Values,
		growthStart, growthEnd,
	)
	sx, sy := m.Frac(0.02, 0.02)
	repchart.TextBlock(rgba, sx, sy, stats,
		color.RGBA{R: 243, G: 156, B: 18, A: 255},
		color.RGBA{R: 255, G: 255, B: 224, A: 245})

	// Watermark, bottom-right.
	wx, wy := m.Frac(0.98, 0.98)
	repchart.Watermark(rgba, wx, wy, "subjective-logic reputation + emergency transaction weighting")

	return repchart.Upscale(rgba, scale), nil
}

func main() {
	repchart.Infof("rendering dual-chain reputation chart")
	img, err := compose()
	if err != nil {
		repchart.Errorf("compose chart: %v", err)
		os.Exit(1)
	}
	if err := repchart.SavePNG(outputFile, img, outputDPI); err != nil {
		repchart.Errorf("save chart: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Chart saved to: %s\n", outputFile)
	fmt.Printf("Chart size: %dx%d in\n", widthIn, heightIn)
	fmt.Printf("Resolution: %d DPI\n", outputDPI)
	repchart.Show("Dual-Chain Reputation Comparison", img)
}
