package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squiggly/pkg/render/styles"
)

// themeCommand prints the default theme or checks a theme file.
func (c *CLI) themeCommand() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the default theme as TOML, or check a theme file",
		Long: `Print the default theme as TOML.

Redirect the output to a file, edit it and pass it to 'squiggly render --theme'.
Keys left out of a theme file keep their default values. With --check, the
given file is decoded and validated instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if check == "" {
				return styles.EncodeTheme(out, styles.DefaultTheme())
			}

			th, err := loadTheme(check)
			if err != nil {
				return fmt.Errorf("%s: %w", check, err)
			}
			printSuccess(out, "%s is a valid theme", check)
			printKeyValue(out, "font", fmt.Sprintf("%s %v/%v", th.FontFamily, th.LabelSize, th.TitleSize))
			printKeyValue(out, "palette", fmt.Sprintf("%d colors", len(th.Palette)))
			if th.Background == th.TextColor {
				printWarning(out, "text color matches the background (%s)", th.Background)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "validate a TOML theme file")
	return cmd
}
