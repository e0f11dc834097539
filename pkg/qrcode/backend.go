package qr

import (
	"errors"
	"image/color"

	"github.com/Badsnus/qrage/pkg/platform"
)

// ErrBackgroundUnsupported is returned by backends that cannot draw a
// background image layer.
var ErrBackgroundUnsupported = errors.New("background image is not supported in SVG export")

// backend draws the layers of one export in paint order.
type backend interface {
	Begin(l Layout, bg color.RGBA)
	BackgroundImage(data []byte) error
	Title(text string, fg color.RGBA) error
	Modules(m *Matrix, dark, light color.RGBA)
	Badge(icon *platform.Icon, fg color.RGBA) error
	Bytes() ([]byte, error)
}
