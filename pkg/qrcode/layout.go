package qr

import "math"

const (
	DefaultSize = 400
	PreviewSize = 256

	// BadgeScale is the icon box side relative to the QR block.
	BadgeScale   = 0.18
	BadgePadding = 6.0
	BadgeStroke  = 2.0

	// BackgroundOpacity is applied to the background image layer.
	BackgroundOpacity = 0.25
)

// Spec holds the fixed layout constants of one output encoding.
type Spec struct {
	Margin    float64
	TitleBand float64
	TitleY    float64
	FontSize  float64
}

var (
	RasterSpec = Spec{Margin: 40, TitleBand: 60, TitleY: 40, FontSize: 24}
	VectorSpec = Spec{Margin: 0, TitleBand: 50, TitleY: 30, FontSize: 22}
)

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Badge is the circular logo overlay geometry.
type Badge struct {
	Center Point
	Radius float64
	Stroke float64
	Icon   Rect
}

// Layout is the resolved geometry of one export.
type Layout struct {
	Width    int
	Height   int
	HasTitle bool
	Title    Point
	FontSize float64
	QR       Rect
	Badge    Badge
}

// Compute resolves the layout for a QR block of size pixels.
func (s Spec) Compute(size int, hasTitle bool) Layout {
	band := 0.0
	if hasTitle {
		band = s.TitleBand
	}
	side := float64(size)
	width := side + 2*s.Margin
	height := width + band

	qr := Rect{X: s.Margin, Y: s.Margin + band, W: side, H: side}
	box := side * BadgeScale
	c := qr.Center()

	return Layout{
		Width:    int(math.Round(width)),
		Height:   int(math.Round(height)),
		HasTitle: hasTitle,
		Title:    Point{X: width / 2, Y: s.TitleY},
		FontSize: s.FontSize,
		QR:       qr,
		Badge: Badge{
			Center: c,
			Radius: box/2 + BadgePadding,
			Stroke: BadgeStroke,
			Icon:   Rect{X: c.X - box/2, Y: c.Y - box/2, W: box, H: box},
		},
	}
}

// CoverFit scales an iw x ih image uniformly so it covers a cw x ch
// canvas, centered.
func CoverFit(cw, ch, iw, ih float64) Rect {
	scale := math.Max(cw/iw, ch/ih)
	w, h := iw*scale, ih*scale
	return Rect{X: (cw - w) / 2, Y: (ch - h) / 2, W: w, H: h}
}
