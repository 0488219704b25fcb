package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/squiggly/pkg/pipeline"
	"github.com/matzehuels/squiggly/pkg/squiggle"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	demo        string  // built-in demo figure
	interactive bool    // pick the demo from a list
	output      string  // output file (single format) or base path (multiple)
	formats     string  // comma-separated output formats
	title       string  // figure title, "-" for none
	seed        uint64  // noise seed
	noise       float64 // line noise strength
	width       float64 // canvas width in pixels
	height      float64 // canvas height in pixels
	scale       float64 // PNG scale factor
	legend      bool    // draw a legend for labelled lines
	themePath   string  // optional TOML theme file
}

// renderCommand creates the render command for drawing demo figures.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		demo:   "sine",
		seed:   pipeline.DefaultSeed,
		noise:  squiggle.DefaultNoiseStrength,
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		scale:  pipeline.DefaultScale,
		legend: true,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a demo figure to SVG, PNG, PDF, EPS, TIFF or JPEG",
		Long: `Render one of the built-in demo figures.

Output files are named after the demo unless --output is given. With a single
format, --output is used as the file name; with several formats it is a base
path and the format is appended as the extension.`,
		Example: `  squiggly render --demo dates -f svg,png
  squiggly render --demo linear --title "Quarterly plan" -o plan.pdf -f pdf
  squiggly render --theme solarized.toml --seed 7
  squiggly render -i -f png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.demo, "demo", opts.demo, "demo figure: "+strings.Join(demoNames(), ", "))
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the demo from an interactive list")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, eps, tif, jpg (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", `figure title (defaults to the demo title, "-" for none)`)
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for reproducible noise")
	cmd.Flags().Float64Var(&opts.noise, "noise", opts.noise, "line noise strength (0 for straight lines)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.legend, "legend", opts.legend, "draw a legend for labelled lines")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file (see 'squiggly theme')")

	_ = cmd.RegisterFlagCompletionFunc("demo", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return demoNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return slices.Sorted(maps.Keys(pipeline.ValidFormats)), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagFilename("theme", "toml")

	return cmd
}

// runRender composes the selected demo, renders every format and writes the files.
func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.interactive {
		name, err := pickDemo(cmd, opts.demo)
		if err != nil {
			return err
		}
		if name == "" {
			printWarning(cmd.OutOrStdout(), "No selection made")
			return nil
		}
		opts.demo = name
	}

	d, err := lookupDemo(opts.demo)
	if err != nil {
		return err
	}
	theme, err := loadTheme(opts.themePath)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	popts := pipeline.Options{
		Name:    opts.demo,
		Width:   opts.width,
		Height:  opts.height,
		Seed:    opts.seed,
		SeedSet: true,
		Formats: parseFormats(opts.formats),
		Scale:   opts.scale,
		Theme:   theme,
		Logger:  logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	cfg := demoConfig{title: d.title, noise: opts.noise, legend: opts.legend}
	switch opts.title {
	case "":
	case "-":
		cfg.title = ""
	default:
		cfg.title = opts.title
	}

	st := startStep(logger, "render")
	result, err := c.newRunner().Execute(ctx, popts, d.compose(cfg))
	if err != nil {
		return err
	}
	st.finish("demo", opts.demo, "formats", len(popts.Formats), "cached", result.Stats.Cached)

	paths := outputPaths(opts.output, opts.demo, popts.Formats)
	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %s", StyleTitle.Render(opts.demo))
	for _, format := range popts.Formats {
		path, ok := paths[format]
		if !ok {
			continue
		}
		delete(paths, format)
		if err := writeArtifact(ctx, path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(out, path, len(result.Artifacts[format]))
	}
	printStats(out, result.Stats)
	if theme == nil {
		printNextStep(out, "Customize colors", appName+" theme > theme.toml")
	}
	return nil
}

// pickDemo runs the interactive demo list and returns the chosen name,
// or "" when the user quits without choosing.
func pickDemo(cmd *cobra.Command, current string) (string, error) {
	p := tea.NewProgram(NewDemoListModel(current),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("demo picker: %w", err)
	}
	fm, ok := finalModel.(DemoListModel)
	if !ok {
		return "", nil
	}
	return fm.Selected, nil
}

// outputPaths maps each format to its output file.
// A single format uses output verbatim when it carries an extension;
// otherwise output (or the demo name) is a base path.
func outputPaths(output, demoName string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}

	base := basePath(output, demoName)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output.
// An empty output falls back to the demo name.
func basePath(output, demoName string) string {
	if output == "" {
		return demoName
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path unless ctx is already done.
func writeArtifact(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("wrote artifact", "path", path, "bytes", len(data))
	return nil
}
