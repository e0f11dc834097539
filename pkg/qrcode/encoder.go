package qr

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QuietZone is the number of light modules around the symbol.
const QuietZone = 2

var (
	ErrEncoding  = errors.New("qr encoding failed")
	ErrAssetLoad = errors.New("asset load failed")
)

// Matrix is a square module grid, quiet zone included. true is dark.
type Matrix struct {
	Modules [][]bool
	Level   Level
}

// Size returns the side of the grid in modules.
func (m *Matrix) Size() int {
	return len(m.Modules)
}

// Encoder turns text into a module matrix at the given level.
type Encoder interface {
	Encode(text string, level Level) (*Matrix, error)
}

type skipEncoder struct{}

// NewEncoder returns the go-qrcode backed encoder.
func NewEncoder() Encoder {
	return skipEncoder{}
}

func (skipEncoder) Encode(text string, level Level) (*Matrix, error) {
	q, err := qrcode.New(text, level.recovery())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()

	n := len(bitmap) + 2*QuietZone
	modules := make([][]bool, n)
	for y := range modules {
		modules[y] = make([]bool, n)
	}
	for y, row := range bitmap {
		copy(modules[y+QuietZone][QuietZone:], row)
	}

	return &Matrix{Modules: modules, Level: level}, nil
}
