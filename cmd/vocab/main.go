package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mapazajec/mapazajec-backend/internal/cli"
	"github.com/mapazajec/mapazajec-backend/internal/config"
	"github.com/mapazajec/mapazajec-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Logs go to stderr, dump and convert output to stdout.
	logger.Configure(cfg, os.Stderr)

	if err := cli.NewApp(cfg, os.Stdout).Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("vocab failed")
	}
}
