package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	_ "golang.org/x/image/webp"

	"github.com/Badsnus/qrage/pkg/platform"
)

var (
	titleFont     *opentype.Font
	titleFontErr  error
	titleFontOnce sync.Once
)

func boldFont() (*opentype.Font, error) {
	titleFontOnce.Do(func() {
		titleFont, titleFontErr = opentype.Parse(gobold.TTF)
	})
	return titleFont, titleFontErr
}

type rasterBackend struct {
	dc     *gg.Context
	layout Layout
}

func (b *rasterBackend) Begin(l Layout, bg color.RGBA) {
	b.layout = l
	b.dc = gg.NewContext(l.Width, l.Height)
	b.dc.SetColor(bg)
	b.dc.Clear()
}

func (b *rasterBackend) BackgroundImage(data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: decode background: %v", ErrAssetLoad, err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return fmt.Errorf("%w: empty background image", ErrAssetLoad)
	}

	fit := CoverFit(float64(b.layout.Width), float64(b.layout.Height), float64(bounds.Dx()), float64(bounds.Dy()))
	scaled := resize.Resize(uint(math.Ceil(fit.W)), uint(math.Ceil(fit.H)), img, resize.Lanczos3)

	at := image.Pt(int(math.Round(fit.X)), int(math.Round(fit.Y)))
	composed := imaging.Overlay(b.dc.Image(), scaled, at, BackgroundOpacity)
	b.dc = gg.NewContextForImage(composed)
	return nil
}

func (b *rasterBackend) Title(text string, fg color.RGBA) error {
	f, err := boldFont()
	if err != nil {
		return fmt.Errorf("%w: title font: %v", ErrAssetLoad, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    b.layout.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("%w: title face: %v", ErrAssetLoad, err)
	}
	defer face.Close()

	b.dc.SetFontFace(face)
	b.dc.SetColor(fg)
	b.dc.DrawStringAnchored(text, b.layout.Title.X, b.layout.Title.Y, 0.5, 0.5)
	return nil
}

// Modules draws the symbol on its own canvas so module edges land on
// whole pixels, then places it at the QR block origin.
func (b *rasterBackend) Modules(m *Matrix, dark, light color.RGBA) {
	side := int(b.layout.QR.W)
	n := m.Size()
	edge := func(i int) float64 { return float64(i * side / n) }

	block := gg.NewContext(side, side)
	block.SetColor(light)
	block.Clear()
	block.SetColor(dark)
	for y, row := range m.Modules {
		for x := 0; x < n; {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < n && row[x] {
				x++
			}
			block.DrawRectangle(edge(start), edge(y), edge(x)-edge(start), edge(y+1)-edge(y))
		}
	}
	block.Fill()

	b.dc.DrawImage(block.Image(), int(b.layout.QR.X), int(b.layout.QR.Y))
}

func (b *rasterBackend) Badge(icon *platform.Icon, fg color.RGBA) error {
	badge := b.layout.Badge
	b.dc.DrawCircle(badge.Center.X, badge.Center.Y, badge.Radius)
	b.dc.SetColor(White)
	b.dc.FillPreserve()
	b.dc.SetColor(fg)
	b.dc.SetLineWidth(badge.Stroke)
	b.dc.Stroke()

	glyph, err := rasterizeIcon(icon, fg, int(math.Round(badge.Icon.W)))
	if err != nil {
		return err
	}
	b.dc.DrawImage(glyph, int(math.Round(badge.Icon.X)), int(math.Round(badge.Icon.Y)))
	return nil
}

func (b *rasterBackend) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rasterizeIcon(icon *platform.Icon, fill color.RGBA, side int) (image.Image, error) {
	if side <= 0 {
		return nil, fmt.Errorf("%w: icon box is empty", ErrAssetLoad)
	}
	svg, err := oksvg.ReadIconStream(strings.NewReader(icon.SVG(fill)))
	if err != nil {
		return nil, fmt.Errorf("%w: parse icon: %v", ErrAssetLoad, err)
	}
	svg.SetTarget(0, 0, float64(side), float64(side))

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	svg.Draw(rasterx.NewDasher(side, side, scanner), 1)
	return img, nil
}
