// Package repchart renders annotated reputation-trajectory line charts and
// writes them as high-resolution PNGs. Chart assembly goes through
// go-chart; callouts, arrows and text panels that go-chart cannot place are
// drawn onto the decoded image afterwards (see overlay.go).
package repchart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Line is one plotted series: a connected stroke with a dot per sample.
// Square markers of the source data render as slightly wider dots; the
// legend label and color carry the category distinction.
type Line struct {
	Name     string
	Color    drawing.Color
	Width    float64
	DotWidth float64
	Rounds   []float64
	Values   []float64
}

// Threshold is a fixed horizontal reference line spanning the x range.
type Threshold struct {
	Name  string
	Y     float64
	Color drawing.Color
	Width float64
	Dash  []float64
}

// Callout is a small labeled box anchored at a (round, value) data point,
// rendered through go-chart's annotation series.
type Callout struct {
	Round float64
	Value float64
	Label string
	Color drawing.Color
}

// Spec describes one complete chart. Axis ranges are fixed by the caller;
// x ticks are exactly the supplied round sequence, including gaps.
type Spec struct {
	Title      string
	XName      string
	YName      string
	TickRounds []int
	XMin, XMax float64
	YMin, YMax float64
	Width      int
	Height     int
	Lines      []Line
	Thresholds []Threshold
	Callouts   []Callout
}

// RoundTicks converts the literal round sequence into axis ticks, one tick
// per sampled round.
func RoundTicks(rounds []int) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(rounds))
	for _, r := range rounds {
		ticks = append(ticks, chart.Tick{Value: float64(r), Label: strconv.Itoa(r)})
	}
	return ticks
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor:     drawing.Color{R: 0, G: 0, B: 0, A: 40},
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{1, 3},
	}
}

func (s Spec) build() chart.Chart {
	series := make([]chart.Series, 0, len(s.Lines)+len(s.Thresholds)+len(s.Callouts))
	for _, t := range s.Thresholds {
		series = append(series, chart.ContinuousSeries{
			Name:    t.Name,
			XValues: []float64{s.XMin, s.XMax},
			YValues: []float64{t.Y, t.Y},
			Style: chart.Style{
				StrokeWidth:     t.Width,
				StrokeColor:     t.Color,
				StrokeDashArray: t.Dash,
			},
		})
	}
	for _, l := range s.Lines {
		series = append(series, chart.ContinuousSeries{
			Name:    l.Name,
			XValues: l.Rounds,
			YValues: l.Values,
			Style: chart.Style{
				StrokeWidth: l.Width,
				StrokeColor: l.Color,
				DotWidth:    l.DotWidth,
				DotColor:    l.Color,
			},
		})
	}
	for _, c := range s.Callouts {
		series = append(series, chart.AnnotationSeries{
			Annotations: []chart.Value2{{XValue: c.Round, YValue: c.Value, Label: c.Label}},
			Style: chart.Style{
				StrokeColor: c.Color,
				FillColor:   drawing.ColorWhite,
				FontColor:   c.Color,
			},
		})
	}

	ch := chart.Chart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 30}},
		XAxis: chart.XAxis{
			Name:           s.XName,
			Ticks:          RoundTicks(s.TickRounds),
			Range:          &chart.ContinuousRange{Min: s.XMin, Max: s.XMax},
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           s.YName,
			Range:          &chart.ContinuousRange{Min: s.YMin, Max: s.YMax},
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// Render draws the chart and returns it as an in-memory image ready for
// overlay drawing and saving.
func Render(s Spec) (image.Image, error) {
	defer TimeTrack(time.Now(), "chart render")
	ch := s.build()
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return img, nil
}
