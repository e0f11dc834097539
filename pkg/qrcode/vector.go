package qr

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/Badsnus/qrage/pkg/platform"
)

type vectorBackend struct {
	sb     strings.Builder
	layout Layout
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (b *vectorBackend) Begin(l Layout, bg color.RGBA) {
	b.layout = l
	b.sb.Reset()
	b.sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b.sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		l.Width, l.Height, l.Width, l.Height,
	)
	fmt.Fprintf(&b.sb, `<rect width="%d" height="%d" fill="%s"/>`+"\n", l.Width, l.Height, Hex(bg))
}

func (b *vectorBackend) BackgroundImage([]byte) error {
	return ErrBackgroundUnsupported
}

func (b *vectorBackend) Title(text string, fg color.RGBA) error {
	fmt.Fprintf(&b.sb,
		`<text x="%s" y="%s" font-family="Inter, system-ui, sans-serif" font-size="%s" font-weight="bold" text-anchor="middle" fill="%s">`,
		num(b.layout.Title.X), num(b.layout.Title.Y), num(b.layout.FontSize), Hex(fg),
	)
	if err := xml.EscapeText(&b.sb, []byte(text)); err != nil {
		return err
	}
	b.sb.WriteString("</text>\n")
	return nil
}

// Modules emits one path of horizontal runs in module units, scaled to
// the QR block.
func (b *vectorBackend) Modules(m *Matrix, dark, light color.RGBA) {
	qr := b.layout.QR
	n := m.Size()

	fmt.Fprintf(&b.sb, `<g transform="translate(%s,%s)">`+"\n", num(qr.X), num(qr.Y))
	fmt.Fprintf(&b.sb, `<rect width="%s" height="%s" fill="%s"/>`+"\n", num(qr.W), num(qr.H), Hex(light))
	fmt.Fprintf(&b.sb, `<path transform="scale(%s)" shape-rendering="crispEdges" fill="%s" d="`, num(qr.W/float64(n)), Hex(dark))
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
			fmt.Fprintf(&b.sb, "M%d %dh%dv1h-%dz", start, y, x-start, x-start)
		}
	}
	b.sb.WriteString("\"/>\n</g>\n")
}

func (b *vectorBackend) Badge(icon *platform.Icon, fg color.RGBA) error {
	badge := b.layout.Badge
	fmt.Fprintf(&b.sb,
		`<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(badge.Center.X), num(badge.Center.Y), num(badge.Radius), Hex(White), Hex(fg), num(badge.Stroke),
	)
	fmt.Fprintf(&b.sb,
		`<g transform="translate(%s,%s) scale(%s)">%s</g>`+"\n",
		num(badge.Icon.X), num(badge.Icon.Y), num(badge.Icon.W/platform.ViewBox), icon.Markup(fg),
	)
	return nil
}

func (b *vectorBackend) Bytes() ([]byte, error) {
	b.sb.WriteString("</svg>\n")
	return []byte(b.sb.String()), nil
}
