package main

import (
	"context"
	"fmt"
	"mytwitter/console"
	"mytwitter/internal"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps deferred cleanup reachable before main decides the exit code.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Journal, index, service and default profiles
	app, err := internal.NewApp(ctx, config, log)
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}
	defer app.Close()

	// 4. Menu loop
	c := console.New(os.Stdin, os.Stdout, app.Service, app.Index, app.Journal, app.IDs,
		console.Config{
			Colours:       config.Colours,
			SearchLimit:   config.SearchLimit,
			ActivityLimit: config.ActivityLimit,
		}, log)
	if err = c.Run(ctx); err != nil {
		return fmt.Errorf("console stopped: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
