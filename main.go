package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal(err)
		}
		log.Printf("Using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := run(ctx, config)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Final stats: %d generations in %.1f seconds", stats.TotalGenerations, stats.Runtime().Seconds())
	log.Printf("Average: %.1f gen/sec, %.1f avg population", stats.GenerationsPerSecond, stats.AveragePopulation)
}
