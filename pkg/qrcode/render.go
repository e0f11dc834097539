package qr

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Badsnus/qrage/pkg/logger/types"
	"github.com/Badsnus/qrage/pkg/platform"
)

const (
	MIMEPNG = "image/png"
	MIMESVG = "image/svg+xml"
	MIMEPDF = "application/pdf"
)

// ExportRequest is everything a single export depends on.
type ExportRequest struct {
	Payload  string
	Style    Style
	Platform *platform.Descriptor
	Size     int
}

// Artifact is a finished export ready for delivery.
type Artifact struct {
	Data     []byte
	Filename string
	MIME     string
	Level    Level
	Notices  []string
}

// Renderer composes exports. It holds no mutable state and is safe for
// concurrent use.
type Renderer struct {
	encoder Encoder
	logger  *types.Logger
}

type Option func(*Renderer)

func WithEncoder(e Encoder) Option {
	return func(r *Renderer) { r.encoder = e }
}

func WithLogger(l *types.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		encoder: NewEncoder(),
		logger:  types.Nop("qr"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EffectiveLevel is H whenever a logo badge or a background image will
// cover modules, otherwise the configured level.
func EffectiveLevel(req ExportRequest) Level {
	if req.Platform.HasLogo() || req.Style.HasBackgroundImage() {
		return LevelH
	}
	return req.Style.ErrorCorrection
}

// PNG renders the bitmap export.
func (r *Renderer) PNG(ctx context.Context, req ExportRequest) (*Artifact, error) {
	a, err := r.compose(ctx, &rasterBackend{}, RasterSpec, req)
	if err != nil {
		return nil, err
	}
	a.MIME = MIMEPNG
	a.Filename = Filename(req.Style.Title, "png")
	return a, nil
}

// SVG renders the vector export. The background image layer is never
// drawn; when one is set the artifact carries a notice instead.
func (r *Renderer) SVG(ctx context.Context, req ExportRequest) (*Artifact, error) {
	a, err := r.compose(ctx, &vectorBackend{}, VectorSpec, req)
	if err != nil {
		return nil, err
	}
	a.MIME = MIMESVG
	a.Filename = Filename(req.Style.Title, "svg")
	return a, nil
}

// Preview renders the bitmap path at PreviewSize.
func (r *Renderer) Preview(ctx context.Context, req ExportRequest) (*Artifact, error) {
	req.Size = PreviewSize
	return r.PNG(ctx, req)
}

func (r *Renderer) compose(ctx context.Context, b backend, spec Spec, req ExportRequest) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	size := req.Size
	if size <= 0 {
		size = DefaultSize
	}
	style := req.Style
	level := EffectiveLevel(req)

	matrix, err := r.encoder.Encode(req.Payload, level)
	if err != nil {
		return nil, err
	}

	a := &Artifact{Level: level}
	b.Begin(spec.Compute(size, style.Title != ""), style.Background)

	light := style.Background
	if style.HasBackgroundImage() {
		switch err = b.BackgroundImage(style.BackgroundImage); {
		case err == nil:
			light = White
		case errors.Is(err, ErrBackgroundUnsupported):
			a.Notices = append(a.Notices, err.Error())
		default:
			r.logger.Warnf("background image skipped: %v", err)
			a.Notices = append(a.Notices, "background image could not be loaded and was skipped")
		}
	}

	if style.Title != "" {
		if err = b.Title(style.Title, style.Foreground); err != nil {
			r.logger.Warnf("title skipped: %v", err)
			a.Notices = append(a.Notices, "title could not be drawn and was skipped")
		}
	}

	b.Modules(matrix, style.Foreground, light)

	if req.Platform.HasLogo() {
		if err = b.Badge(req.Platform.Icon, style.Foreground); err != nil {
			r.logger.Warnf("%s logo skipped: %v", req.Platform.Key, err)
			a.Notices = append(a.Notices, "platform logo could not be drawn and was skipped")
		}
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if a.Data, err = b.Bytes(); err != nil {
		return nil, err
	}
	return a, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]`)

// Filename derives a download name from the title, qr-code.<ext> without one.
func Filename(title, ext string) string {
	if title == "" {
		return "qr-code." + ext
	}
	return nonSlug.ReplaceAllString(strings.ToLower(title), "-") + "." + ext
}
