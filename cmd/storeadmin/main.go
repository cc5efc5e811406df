package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/storekeeper/internal/admin"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	err := admin.Run(ctx, os.Args[1:], admin.IO{In: os.Stdin, Out: os.Stdout, StdinFD: int(os.Stdin.Fd())}, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "storeadmin:", err)
		os.Exit(1)
	}
}
