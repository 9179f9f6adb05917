package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kedare/metro/cmd"
	"github.com/kedare/metro/internal/logger"
	"github.com/kedare/metro/internal/output"
)

func main() {
	// Diagnostics go to stderr so stdout only carries the report
	logger.InitPterm()
	output.ConfigureColor(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
