// Package main is the entry point for the rocket simulator.
//
// Usage:
//
//	rocket-sim [rocket|study]
//
// The dialogue runs on stdin and stdout; logs go to stderr.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/rocket-sim/config"
	"github.com/guttosm/rocket-sim/internal/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	mode := app.ModeRocket
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, mode, os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatal().Err(err).Msg("Run failed")
	}
}
