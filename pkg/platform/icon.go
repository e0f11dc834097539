package platform

import (
	"fmt"
	"image/color"
	"strings"
)

// ViewBox is the side of the square coordinate space every icon is drawn in.
const ViewBox = 24

// Icon is a monochrome vector glyph on a ViewBox x ViewBox grid.
type Icon struct {
	Paths   []string
	EvenOdd bool
}

// Markup returns the icon as <path> elements filled with fill.
func (i *Icon) Markup(fill color.RGBA) string {
	var sb strings.Builder
	rule := ""
	if i.EvenOdd {
		rule = ` fill-rule="evenodd"`
	}
	for _, d := range i.Paths {
		sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"%s/>`, d, hex(fill), rule))
	}
	return sb.String()
}

// SVG returns a standalone document of the icon, recolored to fill.
func (i *Icon) SVG(fill color.RGBA) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">%s</svg>`,
		ViewBox, ViewBox, ViewBox, ViewBox, i.Markup(fill),
	)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// circle approximates a circle with four cubic segments.
func circle(cx, cy, r float64) string {
	k := 0.5523 * r
	return fmt.Sprintf(
		"M%g %g C%g %g %g %g %g %g C%g %g %g %g %g %g C%g %g %g %g %g %g C%g %g %g %g %g %g Z",
		cx-r, cy,
		cx-r, cy-k, cx-k, cy-r, cx, cy-r,
		cx+k, cy-r, cx+r, cy-k, cx+r, cy,
		cx+r, cy+k, cx+k, cy+r, cx, cy+r,
		cx-k, cy+r, cx-r, cy+k, cx-r, cy,
	)
}

func roundRect(x, y, w, h, r float64) string {
	k := 0.5523 * r
	return fmt.Sprintf(
		"M%g %g H%g C%g %g %g %g %g %g V%g C%g %g %g %g %g %g H%g C%g %g %g %g %g %g V%g C%g %g %g %g %g %g Z",
		x+r, y, x+w-r,
		x+w-r+k, y, x+w, y+r-k, x+w, y+r,
		y+h-r,
		x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h,
		x+r,
		x+r-k, y+h, x, y+h-r+k, x, y+h-r,
		y+r,
		x, y+r-k, x+r-k, y, x+r, y,
	)
}

var (
	instagramIcon = &Icon{
		EvenOdd: true,
		Paths: []string{
			roundRect(2, 2, 20, 20, 5.5) + " " +
				roundRect(4, 4, 16, 16, 4) + " " +
				circle(12, 12, 5) + " " +
				circle(12, 12, 3.2) + " " +
				circle(17.5, 6.5, 1.2),
		},
	}

	xIcon = &Icon{
		Paths: []string{
			"M3 3 H8.5 L21 21 H15.5 Z",
			"M18.8 3 H21 L13.4 11.7 L12.3 10.2 Z",
			"M5.2 21 H3 L10.6 12.3 L11.7 13.8 Z",
		},
	}

	facebookIcon = &Icon{
		Paths: []string{
			"M14 8 V6.5 C14 5.7 14.4 5.5 15 5.5 H17 V2 H14 C11.2 2 10 3.8 10 6.2 V8 H7.5 V11.5 H10 V22 H14 V11.5 H16.8 L17.3 8 Z",
		},
	}

	linkedinIcon = &Icon{
		EvenOdd: true,
		Paths: []string{
			roundRect(2, 2, 20, 20, 2) + " " +
				"M6 9.5 H8.7 V18 H6 Z " +
				circle(7.35, 6.6, 1.5) + " " +
				"M11 9.5 H13.5 V10.7 C14 9.9 15 9.3 16.3 9.3 C18.3 9.3 19 10.6 19 12.8 V18 H16.4 V13.4 " +
				"C16.4 12.3 16.1 11.6 15.1 11.6 C14 11.6 13.6 12.4 13.6 13.5 V18 H11 Z",
		},
	}

	tiktokIcon = &Icon{
		Paths: []string{
			"M16.5 2 H13.2 V15.4 C13.2 16.9 12 18.1 10.5 18.1 C9 18.1 7.8 16.9 7.8 15.4 C7.8 13.9 9 12.7 10.5 12.7 " +
				"C10.8 12.7 11.1 12.8 11.4 12.9 V9.5 C11.1 9.5 10.8 9.4 10.5 9.4 C7.2 9.4 4.5 12.1 4.5 15.4 " +
				"C4.5 18.7 7.2 21.4 10.5 21.4 C13.8 21.4 16.5 18.7 16.5 15.4 V8.6 C17.8 9.5 19.3 10 21 10 V6.7 " +
				"C18.5 6.7 16.5 4.6 16.5 2 Z",
		},
	}

	youtubeIcon = &Icon{
		EvenOdd: true,
		Paths: []string{
			roundRect(2, 5, 20, 14, 4) + " M10 9 V15 L15.2 12 Z",
		},
	}

	githubIcon = &Icon{
		EvenOdd: true,
		Paths: []string{
			circle(12, 12, 10) + " " +
				"M9 20.5 V17.8 C6.8 18.3 6.3 16.9 6.3 16.9 C5.9 16 5.4 15.7 5.4 15.7 C4.7 15.2 5.5 15.2 5.5 15.2 " +
				"C6.3 15.3 6.7 16 6.7 16 C7.4 17.2 8.5 16.9 9 16.7 C9.1 16.2 9.3 15.8 9.5 15.6 C7.7 15.4 5.9 14.7 5.9 11.6 " +
				"C5.9 10.7 6.2 10 6.7 9.4 C6.6 9.2 6.4 8.4 6.8 7.3 C6.8 7.3 7.5 7.1 9 8.1 C9.7 7.9 10.4 7.8 11.1 7.8 H12.9 " +
				"C13.6 7.8 14.3 7.9 15 8.1 C16.5 7.1 17.2 7.3 17.2 7.3 C17.6 8.4 17.4 9.2 17.3 9.4 C17.8 10 18.1 10.7 18.1 11.6 " +
				"C18.1 14.7 16.3 15.4 14.5 15.6 C14.8 15.9 15 16.4 15 17.1 V20.5 Z",
		},
	}
)
