package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/service"
	"github.com/Badsnus/qrage/internal/domain/utils/validator"
	"github.com/Badsnus/qrage/pkg/document"
	"github.com/Badsnus/qrage/pkg/logger"
	"github.com/Badsnus/qrage/pkg/logger/types"
	"github.com/Badsnus/qrage/pkg/platform"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

// Flag keys, shared by cobra and viper.
const (
	keyFormat  = "format"
	keyOut     = "out"
	keyTitle   = "title"
	keyFg      = "fg"
	keyBg      = "bg"
	keyBgImage = "bg-image"
	keyEC      = "ec"
	keySize    = "size"
	keyPreview = "preview"
	keyVerbose = "verbose"
	keyConfig  = "config"
)

// CLI renders QR codes from the command line. Artifacts go to stdout or
// files, logs go to stderr.
type CLI struct {
	stdout io.Writer
	stderr io.Writer
	v      *viper.Viper
	logger *types.Logger
}

func New(stdout, stderr io.Writer) *CLI {
	return &CLI{
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
		logger: types.Nop("cli"),
	}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "qrage",
		Short:         "qrage renders QR codes for links, Wi-Fi networks and social profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringP(keyFormat, "f", "png", "output format: png, svg or pdf")
	flags.StringP(keyOut, "o", "", "output file, - for stdout (default: derived from the title)")
	flags.StringP(keyTitle, "t", "", "title printed above the code")
	flags.String(keyFg, "#000000", "module color")
	flags.String(keyBg, "#FFFFFF", "background color")
	flags.String(keyBgImage, "", "background image file (PNG and PDF only)")
	flags.String(keyEC, "M", "error correction level: L, M, Q or H")
	flags.Int(keySize, qr.DefaultSize, "code size in pixels")
	flags.Bool(keyPreview, false, "print a terminal preview instead of writing a file")
	flags.BoolP(keyVerbose, "v", false, "enable verbose logging")
	flags.String(keyConfig, "", "config file with flag defaults")

	_ = c.v.BindPFlags(flags)
	c.v.SetEnvPrefix("QRAGE")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(c.newURLCmd())
	root.AddCommand(c.newWiFiCmd())
	root.AddCommand(c.newSocialCmd())
	root.AddCommand(c.newPlatformsCmd())
	return root
}

func (c *CLI) init() error {
	if path := c.v.GetString(keyConfig); path != "" {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	err := logger.Init(logger.Config{
		Debug:  c.v.GetBool(keyVerbose),
		Output: c.stderr,
		Prefix: "qrage",
	})
	if err != nil {
		return err
	}
	c.logger, err = logger.Named("cli")
	return err
}

// style assembles the style from flags and fixes unscannable colors.
func (c *CLI) style() (qr.Style, error) {
	st := qr.Default
	st.Title = c.v.GetString(keyTitle)
	if !validator.Title(st.Title, nil) {
		return st, fmt.Errorf("%w: title must be at most %d characters", errorz.ErrInvalidInput, validator.MaxTitleLength)
	}

	var err error
	if st.Foreground, err = qr.ParseHexColor(c.v.GetString(keyFg)); err != nil {
		return st, err
	}
	if st.Background, err = qr.ParseHexColor(c.v.GetString(keyBg)); err != nil {
		return st, err
	}
	if st.ErrorCorrection, err = qr.ParseLevel(c.v.GetString(keyEC)); err != nil {
		return st, err
	}

	var adjusted bool
	if st, adjusted = service.Normalize(st); adjusted {
		c.logger.Warnf("colors adjusted for contrast: fg %s, bg %s", qr.Hex(st.Foreground), qr.Hex(st.Background))
	}

	if path := c.v.GetString(keyBgImage); path != "" {
		if st.BackgroundImage, err = os.ReadFile(path); err != nil {
			return st, fmt.Errorf("read background image: %w", err)
		}
	}
	return st, nil
}

// emit renders payload with the flag style and writes the result.
func (c *CLI) emit(ctx context.Context, payload string, d *platform.Descriptor) error {
	st, err := c.style()
	if err != nil {
		return err
	}
	req := qr.ExportRequest{
		Payload:  payload,
		Style:    st,
		Platform: d,
		Size:     c.v.GetInt(keySize),
	}

	renderer := qr.NewRenderer(qr.WithLogger(c.logger))
	if c.v.GetBool(keyPreview) {
		level, err := renderer.Terminal(ctx, c.stdout, req)
		if err != nil {
			return err
		}
		c.logger.Debugf("preview printed at level %s", level)
		return nil
	}

	format, err := service.ParseFormat(c.v.GetString(keyFormat))
	if err != nil {
		return err
	}
	exporter := service.NewExportService(renderer, document.NewExporter(renderer), c.logger)
	a, err := exporter.Export(ctx, format, req)
	if err != nil {
		return err
	}
	for _, notice := range a.Notices {
		c.logger.Warn(notice)
	}
	return c.write(a)
}

func (c *CLI) write(a *qr.Artifact) error {
	out := c.v.GetString(keyOut)
	if out == "-" {
		_, err := c.stdout.Write(a.Data)
		return err
	}
	if out == "" {
		out = a.Filename
	}
	if err := os.WriteFile(out, a.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	c.logger.Infof("wrote %s (%d bytes, error correction %s)", out, len(a.Data), a.Level)
	return nil
}
