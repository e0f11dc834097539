package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/utils/formatter"
	"github.com/Badsnus/qrage/internal/domain/utils/validator"
	"github.com/Badsnus/qrage/pkg/platform"
)

func (c *CLI) newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <link>",
		Short: "Encode a web link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := formatter.URL(args[0])
			if err != nil {
				return err
			}
			return c.emit(cmd.Context(), payload, nil)
		},
	}
}

func (c *CLI) newWiFiCmd() *cobra.Command {
	var (
		password string
		security string
		hidden   bool
	)
	cmd := &cobra.Command{
		Use:   "wifi <ssid>",
		Short: "Encode Wi-Fi credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validator.SSID(args[0], nil) {
				return fmt.Errorf("%w: the network name must be 1 to %d bytes", errorz.ErrInvalidInput, validator.MaxSSIDLength)
			}
			sec, err := formatter.ParseSecurity(security)
			if err != nil {
				return err
			}
			payload, err := formatter.WiFiPayload(formatter.WiFi{
				SSID:     args[0],
				Password: password,
				Security: sec,
				Hidden:   hidden,
			})
			if err != nil {
				return err
			}
			return c.emit(cmd.Context(), payload, nil)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "network password")
	cmd.Flags().StringVarP(&security, "security", "s", "WPA", "WPA, WEP or nopass")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "the network does not broadcast its SSID")
	return cmd
}

func (c *CLI) newSocialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "social <platform> <handle>",
		Short: "Encode a social profile link with the platform logo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, d, err := formatter.Social(args[0], args[1])
			if err != nil {
				return err
			}
			return c.emit(cmd.Context(), payload, d)
		},
	}
}

func (c *CLI) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported social platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
			for _, d := range platform.All() {
				link := d.BaseURL + "<handle>"
				if d.Key == platform.Custom {
					link = "any link"
				}
				logo := "logo"
				if !d.HasLogo() {
					logo = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Key, d.Name, strings.TrimSpace(link), logo)
			}
			return w.Flush()
		},
	}
}
