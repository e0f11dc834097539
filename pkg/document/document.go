package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

var ErrExport = errors.New("document export failed")

// Page geometry in millimetres on an A4 portrait sheet.
const (
	HeadingY        = 50.0
	HeadingFontSize = 24.0
	ImageSize       = 100.0
	ImageY          = 50.0
	ImageYTitled    = 65.0
)

type bitmapRenderer interface {
	PNG(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error)
}

// Placement is the square the code occupies on the page, in millimetres.
type Placement struct {
	X, Y, Size float64
}

// placement centers the code horizontally and pushes it below the heading
// when the page has one.
func placement(pageW float64, titled bool) Placement {
	y := ImageY
	if titled {
		y = ImageYTitled
	}
	return Placement{X: (pageW - ImageSize) / 2, Y: y, Size: ImageSize}
}

func headingX(pageW, textW float64) float64 {
	return (pageW - textW) / 2
}

// Exporter lays a bitmap export out on a single page.
type Exporter struct {
	renderer bitmapRenderer
	now      func() time.Time
	compress bool
}

func NewExporter(renderer bitmapRenderer) *Exporter {
	return &Exporter{renderer: renderer, now: time.Now, compress: true}
}

// PDF re-renders the bitmap without its title and draws the title as a
// page heading instead.
func (e *Exporter) PDF(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error) {
	title := req.Style.Title
	req.Style.Title = ""

	img, err := e.renderer.PNG(ctx, req)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetCreationDate(e.now())
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	if title != "" {
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		heading := tr(title)

		pdf.SetFont("Helvetica", "B", HeadingFontSize)
		pdf.SetTextColor(26, 26, 26)
		pdf.Text(headingX(pageW, pdf.GetStringWidth(heading)), HeadingY, heading)
	}
	at := placement(pageW, title != "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(img.Data))
	pdf.ImageOptions("qr", at.X, at.Y, at.Size, at.Size, false, opts, 0, "")

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	return &qr.Artifact{
		Data:     buf.Bytes(),
		Filename: qr.Filename(title, "pdf"),
		MIME:     qr.MIMEPDF,
		Level:    img.Level,
		Notices:  img.Notices,
	}, nil
}
