package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/squiggly/pkg/buildinfo"
	"github.com/matzehuels/squiggly/pkg/observability"
	"github.com/matzehuels/squiggly/pkg/pipeline"
	"github.com/matzehuels/squiggly/pkg/render/styles"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for output prefixes and display.
	appName = "squiggly"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent --verbose flag switches the logger to debug level before
// any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Squiggly draws charts that look sketched by hand",
		Long:          `Squiggly turns line data into xkcd-style charts: wobbly lines, hand-drawn grids, annotations and legends, rendered to SVG, PNG, PDF and more.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
				observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, including per-draw events")

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Each CLI invocation
// renders once, so no artifact cache is attached.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(nil, nil, c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadTheme reads a TOML theme file. An empty path means the default theme.
func loadTheme(path string) (*styles.Theme, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	th, err := styles.DecodeTheme(f)
	if err != nil {
		return nil, err
	}
	return &th, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
