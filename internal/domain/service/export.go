package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/pkg/logger/types"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG, FormatPDF:
		return f, nil
	case "":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: unknown format %q, use png, svg or pdf", errorz.ErrInvalidInput, s)
}

type renderer interface {
	PNG(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error)
	SVG(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error)
	Preview(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error)
}

type documentExporter interface {
	PDF(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error)
}

type ExportService struct {
	renderer renderer
	document documentExporter
	logger   *types.Logger
}

func NewExportService(renderer renderer, document documentExporter, logger *types.Logger) *ExportService {
	return &ExportService{
		renderer: renderer,
		document: document,
		logger:   logger,
	}
}

// Export renders req in the given format.
func (s *ExportService) Export(ctx context.Context, format Format, req qr.ExportRequest) (*qr.Artifact, error) {
	var (
		a   *qr.Artifact
		err error
	)
	switch format {
	case FormatPNG:
		a, err = s.renderer.PNG(ctx, req)
	case FormatSVG:
		a, err = s.renderer.SVG(ctx, req)
	case FormatPDF:
		a, err = s.document.PDF(ctx, req)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", errorz.ErrInvalidInput, format)
	}
	if err != nil {
		return nil, s.classify(ctx, err)
	}

	for _, notice := range a.Notices {
		s.logger.Infof("%s export degraded: %s", format, notice)
	}
	s.logger.Debugf("%s export done (%d bytes, level %s)", format, len(a.Data), a.Level)
	return a, nil
}

// Preview renders the on-screen bitmap.
func (s *ExportService) Preview(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error) {
	a, err := s.renderer.Preview(ctx, req)
	if err != nil {
		return nil, s.classify(ctx, err)
	}
	return a, nil
}

// classify keeps encoding and cancellation errors as they are and folds
// every other failure into ErrExport.
func (s *ExportService) classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, errorz.ErrEncoding), errors.Is(err, errorz.ErrExport), errors.Is(err, errorz.ErrInvalidInput):
		return err
	case ctx.Err() != nil:
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", errorz.ErrExport, err)
}
