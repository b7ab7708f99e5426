// logger.go
//
// Global zerolog setup for the wordsmith binary.
// Level and format come from config.LogConfig (LOG_LEVEL / LOG_FORMAT).
// Logs go to stderr so command output on stdout stays clean.

package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsmith/internal/config"
)

func setupLogger(cfg config.LogConfig, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if strings.EqualFold(cfg.Format, "json") {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
}
