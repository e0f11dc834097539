package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

type spyRenderer struct {
	got  qr.ExportRequest
	next *qr.Renderer
	err  error
}

func (s *spyRenderer) PNG(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.next.PNG(ctx, req)
}

func newExporter(spy *spyRenderer) *Exporter {
	e := NewExporter(spy)
	e.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return e
}

func TestPDF(t *testing.T) {
	spy := &spyRenderer{next: qr.NewRenderer()}
	req := qr.ExportRequest{Payload: "https://example.com", Style: qr.Default}
	req.Style.Title = "Scan me"

	a, err := newExporter(spy).PDF(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(a.Data, []byte("%PDF-")))
	assert.Equal(t, qr.MIMEPDF, a.MIME)
	assert.Equal(t, "scan-me.pdf", a.Filename)
	assert.Empty(t, spy.got.Style.Title, "bitmap is rendered without the title")
	assert.Equal(t, "Scan me", req.Style.Title, "caller's style is untouched")
}

func TestPlacement(t *testing.T) {
	tests := []struct {
		name   string
		pageW  float64
		titled bool
		want   Placement
	}{
		{name: "titled A4", pageW: 210, titled: true, want: Placement{X: 55, Y: 65, Size: 100}},
		{name: "untitled A4", pageW: 210, titled: false, want: Placement{X: 55, Y: 50, Size: 100}},
		{name: "narrow page", pageW: 150, titled: true, want: Placement{X: 25, Y: 65, Size: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placement(tt.pageW, tt.titled))
		})
	}
}

func TestHeadingX(t *testing.T) {
	assert.Equal(t, 80.0, headingX(210, 50))
	assert.Equal(t, 105.0, headingX(210, 0))
}

// a4 returns the page size and scale fpdf uses for an A4 millimetre page.
func a4(t *testing.T) (pageW, pageH, k float64) {
	t.Helper()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH = pdf.GetPageSize()
	return pageW, pageH, pdf.GetConversionRatio()
}

func pt(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

func imageOp(pageH, k float64, at Placement) string {
	return "q " + pt(at.Size*k) + " 0 0 " + pt(at.Size*k) + " " + pt(at.X*k) + " " + pt((pageH-(at.Y+at.Size))*k) + " cm /I"
}

func uncompressed(spy *spyRenderer) *Exporter {
	e := newExporter(spy)
	e.compress = false
	return e
}

func TestPDFLayoutWithTitle(t *testing.T) {
	req := qr.ExportRequest{Payload: "https://example.com", Style: qr.Default}
	req.Style.Title = "Scan me"

	a, err := uncompressed(&spyRenderer{next: qr.NewRenderer()}).PDF(context.Background(), req)
	require.NoError(t, err)

	pageW, pageH, k := a4(t)
	assert.InDelta(t, 210.0, pageW, 0.01)
	body := string(a.Data)
	assert.Contains(t, body, "/MediaBox [0 0 595.28 841.89]")

	at := placement(pageW, true)
	assert.InDelta(t, 55.0, at.X, 0.01)
	assert.Contains(t, body, imageOp(pageH, k, at))

	m := fpdf.New("P", "mm", "A4", "")
	m.SetFont("Helvetica", "B", HeadingFontSize)
	x := headingX(pageW, m.GetStringWidth("Scan me"))
	assert.Contains(t, body, fmt.Sprintf("BT %.2f %.2f Td (Scan me) Tj ET", x*k, (pageH-HeadingY)*k))
}

func TestPDFLayoutWithoutTitle(t *testing.T) {
	req := qr.ExportRequest{Payload: "https://example.com", Style: qr.Default}

	a, err := uncompressed(&spyRenderer{next: qr.NewRenderer()}).PDF(context.Background(), req)
	require.NoError(t, err)

	pageW, pageH, k := a4(t)
	body := string(a.Data)
	assert.Contains(t, body, imageOp(pageH, k, placement(pageW, false)))
	assert.Contains(t, body, " 155.90772 416.69315 cm /I")
	assert.NotContains(t, body, " Tj ET")
}

func TestPDFDeterministic(t *testing.T) {
	req := qr.ExportRequest{Payload: "https://example.com", Style: qr.Default}

	a1, err := newExporter(&spyRenderer{next: qr.NewRenderer()}).PDF(context.Background(), req)
	require.NoError(t, err)
	a2, err := newExporter(&spyRenderer{next: qr.NewRenderer()}).PDF(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "qr-code.pdf", a1.Filename)
	assert.Equal(t, a1.Data, a2.Data)
}

func TestPDFPropagatesRenderFailure(t *testing.T) {
	spy := &spyRenderer{err: qr.ErrEncoding}

	_, err := newExporter(spy).PDF(context.Background(), qr.ExportRequest{Payload: "x"})
	assert.True(t, errors.Is(err, qr.ErrEncoding))
}

func TestPDFBrokenBitmap(t *testing.T) {
	e := NewExporter(brokenRenderer{})

	_, err := e.PDF(context.Background(), qr.ExportRequest{Payload: "x"})
	assert.ErrorIs(t, err, ErrExport)
}

type brokenRenderer struct{}

func (brokenRenderer) PNG(context.Context, qr.ExportRequest) (*qr.Artifact, error) {
	return &qr.Artifact{Data: []byte("not a png")}, nil
}
