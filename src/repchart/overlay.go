package repchart

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Plot-area insets of the rendered charts, in pixels. go-chart does not
// expose its computed canvas box after rendering, so these were measured
// once against the fixed axis geometry used by the two charts.
const (
	insetLeft   = 70
	insetRight  = 25
	insetTop    = 55
	insetBottom = 60
)

const lineHeight = 16 // basicfont 7x13 plus leading

// Mapper translates (round, value) data coordinates into pixel positions on
// a rendered chart image. Valid only for charts built with the fixed ranges
// it was constructed from.
type Mapper struct {
	Width, Height int
	XMin, XMax    float64
	YMin, YMax    float64
}

// NewMapper builds the coordinate mapper matching a rendered Spec.
func NewMapper(s Spec) Mapper {
	return Mapper{Width: s.Width, Height: s.Height, XMin: s.XMin, XMax: s.XMax, YMin: s.YMin, YMax: s.YMax}
}

func (m Mapper) plotW() int { return m.Width - insetLeft - insetRight }
func (m Mapper) plotH() int { return m.Height - insetTop - insetBottom }

// Pt maps a data point to pixel coordinates.
func (m Mapper) Pt(round, value float64) (int, int) {
	x := insetLeft + int(math.Round((round-m.XMin)/(m.XMax-m.XMin)*float64(m.plotW())))
	y := insetTop + int(math.Round((m.YMax-value)/(m.YMax-m.YMin)*float64(m.plotH())))
	return x, y
}

// Frac returns the pixel position at a fractional offset into the plot
// area. fx runs left to right, fy top to bottom.
func (m Mapper) Frac(fx, fy float64) (int, int) {
	x := insetLeft + int(math.Round(fx*float64(m.plotW())))
	y := insetTop + int(math.Round(fy*float64(m.plotH())))
	return x, y
}

// ToRGBA returns img as a mutable RGBA, copying only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// TextBlock draws a bordered, filled box of text lines with its top-left
// corner at (x, y). Used for the stats panels and value callout labels.
func TextBlock(dst *image.RGBA, x, y int, text string, border, fill color.RGBA) {
	lines := strings.Split(text, "\n")
	face := basicfont.Face7x13
	meas := &font.Drawer{Face: face}
	w := 0
	for _, ln := range lines {
		if tw := meas.MeasureString(ln).Ceil(); tw > w {
			w = tw
		}
	}
	pad := 8
	h := len(lines) * lineHeight
	box := image.Rect(x, y, x+w+2*pad, y+h+2*pad)
	draw.Draw(dst, box, image.NewUniform(fill), image.Point{}, draw.Over)
	strokeRect(dst, box, border)

	textCol := image.NewUniform(color.RGBA{A: 255})
	for i, ln := range lines {
		d := &font.Drawer{
			Dst:  dst,
			Src:  textCol,
			Face: face,
			Dot:  fixed.P(x+pad, y+pad+i*lineHeight+face.Metrics().Ascent.Ceil()),
		}
		d.DrawString(ln)
	}
}

// TextBlockAnchored places a TextBlock by an anchor corner instead of its
// top-left, mirroring matplotlib-style corner anchoring.
func TextBlockAnchored(dst *image.RGBA, x, y int, alignRight, alignBottom bool, text string, border, fill color.RGBA) {
	w, h := measureBlock(text)
	if alignRight {
		x -= w
	}
	if alignBottom {
		y -= h
	}
	TextBlock(dst, x, y, text, border, fill)
}

func measureBlock(text string) (int, int) {
	lines := strings.Split(text, "\n")
	meas := &font.Drawer{Face: basicfont.Face7x13}
	w := 0
	for _, ln := range lines {
		if tw := meas.MeasureString(ln).Ceil(); tw > w {
			w = tw
		}
	}
	pad := 8
	return w + 2*pad, len(lines)*lineHeight + 2*pad
}

// Watermark draws a faint single-line credit ending at (x, y), so callers
// can anchor it to the bottom-right of the plot area.
func Watermark(dst *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 120, G: 120, B: 120, A: 160}),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(text).Ceil()
	d.Dot = fixed.P(x-w, y)
	d.DrawString(text)
}

// Arrow draws a straight arrow from (x1, y1) to (x2, y2) with a head at the
// destination; double adds a head at the origin as well.
func Arrow(dst *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, double bool) {
	drawLine(dst, x1, y1, x2, y2, col)
	arrowHead(dst, x2, y2, math.Atan2(float64(y2-y1), float64(x2-x1)), col)
	if double {
		arrowHead(dst, x1, y1, math.Atan2(float64(y1-y2), float64(x1-x2)), col)
	}
}

func arrowHead(dst *image.RGBA, x, y int, angle float64, col color.RGBA) {
	const length = 12.0
	for _, da := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
		ex := x + int(math.Round(length*math.Cos(angle+da)))
		ey := y + int(math.Round(length*math.Sin(angle+da)))
		drawLine(dst, x, y, ex, ey, col)
	}
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	drawLine(dst, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, col)
	drawLine(dst, r.Min.X, r.Max.Y-1, r.Max.X-1, r.Max.Y-1, col)
	drawLine(dst, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y-1, col)
	drawLine(dst, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, col)
}

// drawLine is a plain Bresenham stroke; overlays need nothing heavier.
func drawLine(dst *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		dst.SetRGBA(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
