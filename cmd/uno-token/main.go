// Command uno-token prints a bearer token for a player id, signed with the
// server's configured secret. It is meant for local testing.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Rext-dev/Uno-Game/internal/auth"
	"github.com/Rext-dev/Uno-Game/internal/config"
)

func main() {
	player := flag.Int64("player", 0, "player id to issue the token for")
	flag.Parse()
	if *player <= 0 {
		fmt.Fprintln(os.Stderr, "usage: uno-token -player <id>")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	token, err := auth.NewTokens(cfg.TokenSecret, cfg.TokenTTL).Issue(*player)
	if err != nil {
		slog.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
