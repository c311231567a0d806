package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rext-dev/Uno-Game/internal/config"
	"github.com/Rext-dev/Uno-Game/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	gs, err := server.NewGameServer(cfg)
	if err != nil {
		slog.Error("Failed to setup GameServer", slog.String("error", err.Error()))
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := gs.Run(ctx); err != nil {
		slog.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
