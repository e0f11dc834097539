package qr

import (
	"context"
	"io"

	"github.com/mdp/qrterminal/v3"
	rscqr "rsc.io/qr"
)

func (l Level) terminal() rscqr.Level {
	switch l {
	case LevelL:
		return rscqr.L
	case LevelQ:
		return rscqr.Q
	case LevelH:
		return rscqr.H
	default:
		return rscqr.M
	}
}

// Terminal prints a half-block preview of the symbol to w. The payload
// is validated with the renderer's encoder first so capacity errors
// surface as ErrEncoding.
func (r *Renderer) Terminal(ctx context.Context, w io.Writer, req ExportRequest) (Level, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	level := EffectiveLevel(req)
	if _, err := r.encoder.Encode(req.Payload, level); err != nil {
		return 0, err
	}

	qrterminal.GenerateWithConfig(req.Payload, qrterminal.Config{
		Level:          level.terminal(),
		Writer:         w,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      QuietZone,
	})
	return level, nil
}
