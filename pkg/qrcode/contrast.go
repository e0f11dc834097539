package qr

import (
	"image/color"
	"math"
)

// MinContrast is the luminance difference below which scanners struggle.
const MinContrast = 0.4

// Luminance returns the perceptual brightness of c in [0, 1].
func Luminance(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Contrast returns |L(a) - L(b)|.
func Contrast(a, b color.RGBA) float64 {
	return math.Abs(Luminance(a) - Luminance(b))
}

// ContrastOK reports whether a and b are far enough apart to scan reliably.
func ContrastOK(a, b color.RGBA) bool {
	return Contrast(a, b) > MinContrast
}

// Opposite returns white for dark colors and black for light ones.
func Opposite(c color.RGBA) color.RGBA {
	if Luminance(c) > 0.5 {
		return Black
	}
	return White
}
