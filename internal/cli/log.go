// Package cli implements the squiggly command-line interface.
//
// The CLI renders the built-in demo figures through [pipeline.Runner] and
// writes the artifacts to disk. It is the only part of squiggly that touches
// the file system.
//
// # Commands
//
//   - render: draw a demo figure (optionally picked from an interactive list)
//   - theme: print the default theme as TOML or check a theme file
//   - completion: generate shell completion scripts
//
// # Logging
//
// Log lines go to stderr through charmbracelet/log; command output goes to
// stdout. --verbose (-v) lowers the level to debug, which also surfaces the
// figure's per-draw events. The logger travels in the command context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a leveled logger with millisecond timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
		Prefix:          appName,
	})
}

// step times one unit of CLI work and logs it when finished.
type step struct {
	logger *log.Logger
	name   string
	start  time.Time
}

// startStep logs the beginning of name at debug level.
func startStep(l *log.Logger, name string) *step {
	l.Debug("start", "step", name)
	return &step{logger: l, name: name, start: time.Now()}
}

// finish logs the step at info level with its elapsed time and keyvals.
func (s *step) finish(keyvals ...any) time.Duration {
	elapsed := time.Since(s.start).Round(time.Millisecond)
	s.logger.Info(s.name, append(keyvals, "took", elapsed)...)
	return elapsed
}

type loggerKey struct{}

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && l != nil {
		return l
	}
	return log.Default()
}
