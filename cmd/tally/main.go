package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/tallyhq/tally/config"
)

func main() {
	var (
		configFile string
		debug      bool
	)

	flag.StringVar(&configFile, "config", "", "Scenario config file (defaults to 42 plus Some(12))")
	flag.BoolVar(&debug, "debug", false, "Debug mode")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	if debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Sugar().Fatalf("Error loading config: %v", err)
	}

	runner := cfg.NewRunner()
	runner.Output = os.Stdout
	runner.Logger = logger

	_, err = runner.Run(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("Error running: %v", err)
	}
}
