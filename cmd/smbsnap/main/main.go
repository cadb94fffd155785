package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/smbsnap/cmd/smbsnap"
)

func main() {
	// An interrupted run stops the running sync and still reports its result.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := smbsnap.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		smbsnap.ReportError(os.Stderr, err)
		os.Exit(smbsnap.ExitCode(err))
	}
}
