package service

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/pkg/document"
	"github.com/Badsnus/qrage/pkg/logger/types"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExportService() *ExportService {
	r := qr.NewRenderer()
	return NewExportService(r, document.NewExporter(r), types.Nop("export"))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": FormatPNG, " SVG ": FormatSVG, "pdf": FormatPDF, "": FormatPNG} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)
}

func TestExportFormats(t *testing.T) {
	ctx := context.Background()
	s := newTestExportService()
	req := qr.ExportRequest{Payload: "https://example.com", Style: qr.Style{Title: "Shop", Foreground: qr.Black, Background: qr.White, ErrorCorrection: qr.LevelM}}

	a, err := s.Export(ctx, FormatPNG, req)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(a.Data))
	require.NoError(t, err)
	assert.Equal(t, "shop.png", a.Filename)

	a, err = s.Export(ctx, FormatSVG, req)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(a.Data), "<svg"))
	assert.Equal(t, qr.MIMESVG, a.MIME)

	a, err = s.Export(ctx, FormatPDF, req)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(a.Data, []byte("%PDF-")))
	assert.Equal(t, "shop.pdf", a.Filename)

	_, err = s.Export(ctx, Format("gif"), req)
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)
}

func TestExportKeepsEncodingError(t *testing.T) {
	s := newTestExportService()
	req := qr.ExportRequest{Payload: strings.Repeat("x", 4000), Style: qr.Style{Foreground: qr.Black, Background: qr.White, ErrorCorrection: qr.LevelH}}

	_, err := s.Export(context.Background(), FormatPNG, req)
	assert.ErrorIs(t, err, errorz.ErrEncoding)
	assert.False(t, errors.Is(err, errorz.ErrExport))
}

type failingRenderer struct{ err error }

func (f failingRenderer) PNG(context.Context, qr.ExportRequest) (*qr.Artifact, error) {
	return nil, f.err
}

func (f failingRenderer) SVG(context.Context, qr.ExportRequest) (*qr.Artifact, error) {
	return nil, f.err
}

func (f failingRenderer) Preview(context.Context, qr.ExportRequest) (*qr.Artifact, error) {
	return nil, f.err
}

func TestExportWrapsOtherFailures(t *testing.T) {
	r := failingRenderer{err: errors.New("disk full")}
	s := NewExportService(r, document.NewExporter(r), types.Nop("export"))

	_, err := s.Export(context.Background(), FormatSVG, qr.ExportRequest{Payload: "x"})
	assert.ErrorIs(t, err, errorz.ErrExport)

	_, err = s.Preview(context.Background(), qr.ExportRequest{Payload: "x"})
	assert.ErrorIs(t, err, errorz.ErrExport)
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExportService().Export(ctx, FormatPNG, qr.ExportRequest{Payload: "x", Style: qr.Default})
	assert.ErrorIs(t, err, context.Canceled)
}
