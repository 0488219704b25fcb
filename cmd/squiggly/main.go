package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/squiggly/internal/cli"
	errs "github.com/matzehuels/squiggly/pkg/errors"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitBadInput = 2
	exitSignal   = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	c := cli.New(os.Stderr, cli.LogInfo)
	code := exitCode(c.RootCommand().ExecuteContext(ctx), c)
	cancel()
	os.Exit(code)
}

// exitCode maps err to a process status and logs it. Errors the user can
// fix by changing flags or the theme file exit with 2.
func exitCode(err error, c *cli.CLI) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitSignal
	case errs.GetCode(err).IsInput():
		c.Logger.Error(errs.UserMessage(err), "code", errs.GetCode(err))
		return exitBadInput
	default:
		c.Logger.Error(errs.UserMessage(err))
		return exitFailure
	}
}
