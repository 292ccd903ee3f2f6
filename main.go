package main

import (
	"flag"
	"os"

	"uct/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to an experiment config YAML file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment config")
		}
	}

	if err := experiments.Run(config); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
