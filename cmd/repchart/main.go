// Single-chain reputation chart.
//
// Renders the 10-round honest vs malicious trajectory comparison under plain
// subjective-logic scoring, saves it as reputation_chart.png at 300 DPI and
// opens a viewer window. No flags, no environment: the dataset and every
// styling decision are fixed.
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
	outputFile = "reputation_chart.png"
	outputDPI  = 300
	// Logical canvas is 100 px per inch of the 12x7in figure; the saved PNG
	// is upscaled to the full 300 DPI raster.
	logicalW = 1200
	logicalH = 700
	scale    = outputDPI / 100
)

var (
	honest    = repdata.SingleChain.Series[0]
	malicious = repdata.SingleChain.Series[1]

	honestColor    = drawing.ColorFromHex(honest.Hex)
	maliciousColor = drawing.ColorFromHex(malicious.Hex)
)

func chartSpec() repchart.Spec {
	rounds := repdata.SingleChain.RoundsFloat()
	mid := repdata.SingleChain.RoundIndex(5)
	final := repdata.SingleChain.FinalIndex()
	return repchart.Spec{
		Title:      "Subjective-Logic Reputation Trajectories",
		XName:      "Consensus Round",
		YName:      "Reputation",
		TickRounds: repdata.SingleChain.Rounds,
		XMin:       -0.5, XMax: 10.5,
		YMin: 0.0, YMax: 0.85,
		Width:  logicalW,
		Height: logicalH,
		Lines: []repchart.Line{
			{Name: honest.Name, Color: honestColor, Width: 2.5, DotWidth: 5, Rounds: rounds, Values: honest.Values},
			{Name: malicious.Name, Color: maliciousColor, Width: 2.5, DotWidth: 5, Rounds: rounds, Values: malicious.Values},
		},
		Thresholds: []repchart.Threshold{
			{Name: fmt.Sprintf("Reputation threshold (%.1f)", repstats.Baseline), Y: repstats.Baseline, Color: drawing.ColorFromHex("808080"), Width: 1.5, Dash: []float64{6, 4}},
		},
		Callouts: []repchart.Callout{
			{Round: 0, Value: honest.Values[0], Label: fmt.Sprintf("%.3f", honest.Values[0]), Color: honestColor},
			{Round: 5, Value: honest.Values[mid], Label: fmt.Sprintf("%.3f", honest.Values[mid]), Color: honestColor},
			{Round: 5, Value: malicious.Values[mid], Label: fmt.Sprintf("%.3f", malicious.Values[mid]), Color: maliciousColor},
			{Round: 10, Value: honest.Values[final], Label: fmt.Sprintf("%.3f", honest.Values[final]), Color: honestColor},
		},
	}
}

// compose renders the chart, draws the closing stats box and returns the
// full-resolution image.
func compose() (image.Image, error) {
	spec := chartSpec()
	img, err := repchart.Render(spec)
	if err != nil {
		return nil, err
	}
	rgba := repchart.ToRGBA(img)
	m := repchart.NewMapper(spec)

	final := repdata.SingleChain.FinalIndex()
	stats := repstats.SingleChainSummary(
		repdata.SingleChain.Rounds[final],
		honest.Values[final],
		malicious.Values[final],
	)
	x, y := m.Frac(0.98, 0.98)
	wheat := color.RGBA{R: 245, G: 222, B: 179, A: 255}
	repchart.TextBlockAnchored(rgba, x, y, true, true, stats, color.RGBA{A: 255}, wheat)

	return repchart.Upscale(rgba, scale), nil
}

func main() {
	repchart.Infof("rendering single-chain reputation chart")
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
	repchart.Show("Reputation Trajectories", img)
}
