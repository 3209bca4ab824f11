// Command base16384 encodes files as base16384 text and decodes them back.
//
//	base16384 photo.jpg            # writes photo.jpg.b16384
//	base16384 -d photo.jpg.b16384  # writes photo.jpg
//	echo hello | base16384 | base16384 -d
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	cfg, inputs, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("invalid arguments")
		os.Exit(2)
	}
	log.Logger = log.Logger.Level(cfg.logLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := newRunner(cfg, log.Logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := r.run(ctx, inputs); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatal().Err(err).Msg("failed")
	}
}
