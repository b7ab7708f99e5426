// main.go
//
// Entry point for the wordsmith CLI: a Wordle game and solver.
// Responsibilities:
//   - Load configuration (.env, YAML, env) and apply flag overrides.
//   - Configure zerolog.
//   - Load the word list once and dispatch to a command.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newCommand(&app{}).Run(ctx, os.Args)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("wordsmith failed")
	}
}
