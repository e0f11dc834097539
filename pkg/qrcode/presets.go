package qr

import "image/color"

var Default = Style{
	Foreground:      Black,
	Background:      White,
	ErrorCorrection: LevelM,
}

var Night = Style{
	Foreground:      color.RGBA{R: 230, G: 230, B: 230, A: 255},
	Background:      color.RGBA{R: 20, G: 20, B: 20, A: 255},
	ErrorCorrection: LevelQ,
}

var Ink = Style{
	Foreground:      color.RGBA{R: 26, G: 26, B: 26, A: 255},
	Background:      color.RGBA{R: 250, G: 247, B: 240, A: 255},
	ErrorCorrection: LevelM,
}

// Presets maps preset names to their styles.
var Presets = map[string]Style{
	"default": Default,
	"night":   Night,
	"ink":     Ink,
}
