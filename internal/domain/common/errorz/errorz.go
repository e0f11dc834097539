package errorz

import (
	"errors"

	"github.com/Badsnus/qrage/pkg/document"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEncoding     = qr.ErrEncoding
	ErrAssetLoad    = qr.ErrAssetLoad
	ErrExport       = document.ErrExport

	ErrInvalidState = errors.New("invalid state")
	ErrNoSession    = errors.New("nothing generated yet")
	ErrNotFound     = errors.New("not found")
)
