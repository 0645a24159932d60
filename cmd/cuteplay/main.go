package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/llehouerou/cuteplay/internal/stderr"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:    "cuteplay",
		Usage:   "Browse your music library by artist and play it",
		Version: version,
		Action:  runTUI,
		Commands: []*cli.Command{
			scanCommand(),
			listCommand(),
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("cuteplay: %v\n", err))
		os.Exit(1)
	}
}
