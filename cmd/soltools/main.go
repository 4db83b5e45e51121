package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/EbonJaeger/soltools/internal/cli"
	"github.com/EbonJaeger/soltools/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		renderer := style.NewRenderer(os.Stderr, style.FormatAuto)
		fmt.Fprintln(os.Stderr, renderer.Error(err))
		os.Exit(1)
	}
}
