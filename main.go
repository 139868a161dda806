package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/giantswarm/kubectl-scalex/commands"
	"github.com/giantswarm/kubectl-scalex/commands/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := commands.RootCommand.ExecuteContext(ctx)
	if err != nil {
		cancel()
		errors.HandleError(err)
	}
}
